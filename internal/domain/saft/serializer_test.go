package saft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiskal/internal/core/apperror"
)

func TestSerializeRejectsControlCharacters(t *testing.T) {
	store := newTestStore()
	store.org.Name = "Демо\x01ЕООД"

	svc := NewService(store).WithClock(fixedClock())

	_, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeEncoding))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "Name", appErr.Details["field"])
}

func TestSerializeEscapesMarkup(t *testing.T) {
	store := newTestStore()
	store.org.Name = `Демо <&> "ЕООД"`

	svc := NewService(store).WithClock(fixedClock())

	file, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	require.NoError(t, err)

	xml := string(file.Data)
	assert.Contains(t, xml, "Демо &lt;&amp;&gt;")
	assert.NotContains(t, xml, "<&>")
}

func TestSerializeEmptyLedgerPlaceholder(t *testing.T) {
	store := newTestStore()

	svc := NewService(store).WithClock(fixedClock())

	file, err := svc.Generate(context.Background(), monthlyRequest(store.org.ID))
	require.NoError(t, err)

	xml := string(file.Data)
	assert.Contains(t, xml, "<nsSAFT:NumberOfEntries>0</nsSAFT:NumberOfEntries>")
	assert.Contains(t, xml, "<nsSAFT:Description>Няма записи за периода</nsSAFT:Description>")
	assert.Contains(t, xml, "<nsSAFT:TotalDebit>0.00</nsSAFT:TotalDebit>")
}

func TestValidXMLText(t *testing.T) {
	assert.True(t, validXMLText("обычен текст"))
	assert.True(t, validXMLText(""))
	assert.True(t, validXMLText("tab\tand newline\n"))
	assert.False(t, validXMLText("null\x00byte"))
	assert.False(t, validXMLText("escape\x1bchar"))
	assert.False(t, validXMLText(string([]byte{0xff, 0xfe})))
}

func TestSplitName(t *testing.T) {
	first, last := splitName("Иван Петров")
	assert.Equal(t, "Иван", first)
	assert.Equal(t, "Петров", last)

	first, last = splitName("Иван Георгиев Петров")
	assert.Equal(t, "Иван", first)
	assert.Equal(t, "Георгиев Петров", last)

	first, last = splitName("")
	assert.Empty(t, first)
	assert.Empty(t, last)
}
