package inventory

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiskal/internal/core/id"
)

func TestMovementTypeDirection(t *testing.T) {
	assert.True(t, MovementPurchase.IsIncoming())
	assert.True(t, MovementAdjustment.IsIncoming())
	assert.False(t, MovementSale.IsIncoming())
	assert.False(t, MovementTransfer.IsIncoming())

	assert.True(t, MovementSale.IsOutgoing())
	assert.True(t, MovementTransfer.IsOutgoing())
	assert.False(t, MovementPurchase.IsOutgoing())
}

func TestMovementTypeRoundTrip(t *testing.T) {
	for _, mt := range []MovementType{MovementPurchase, MovementSale, MovementAdjustment, MovementTransfer} {
		parsed, err := ParseMovementType(mt.String())
		require.NoError(t, err)
		assert.Equal(t, mt, parsed)
	}

	_, err := ParseMovementType("borrow")
	assert.Error(t, err)

	var mt MovementType
	require.NoError(t, json.Unmarshal([]byte(`"sale"`), &mt))
	assert.Equal(t, MovementSale, mt)
}

func TestStockMovementValidate(t *testing.T) {
	m := NewStockMovement(id.New(), id.New(), MovementPurchase,
		decimal.RequireFromString("10"), time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, m.Validate(context.Background()))

	m.Quantity = decimal.RequireFromString("-1")
	assert.Error(t, m.Validate(context.Background()))

	m.Quantity = decimal.Zero
	m.MovementType = MovementType(99)
	assert.Error(t, m.Validate(context.Background()))
}
