package organization

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/id"
	"fiskal/internal/domain"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	byID        map[string]*Organization
	defaultOrg  *Organization
	getDefaults int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]*Organization{}}
}

func (r *fakeRepo) Create(ctx context.Context, org *Organization) error {
	r.byID[org.ID.String()] = org
	if org.IsDefault {
		r.defaultOrg = org
	}
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, entityID id.ID) (*Organization, error) {
	org, ok := r.byID[entityID.String()]
	if !ok {
		return nil, apperror.NewNotFound("organization", entityID.String())
	}
	return org, nil
}

func (r *fakeRepo) GetByCode(ctx context.Context, code string) (*Organization, error) {
	for _, org := range r.byID {
		if org.Code == code {
			return org, nil
		}
	}
	return nil, apperror.NewNotFound("organization", code)
}

func (r *fakeRepo) Update(ctx context.Context, org *Organization) error {
	r.byID[org.ID.String()] = org
	if org.IsDefault {
		r.defaultOrg = org
	}
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, entityID id.ID) error {
	delete(r.byID, entityID.String())
	return nil
}

func (r *fakeRepo) SetDeletionMark(ctx context.Context, entityID id.ID, marked bool) error {
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Organization], error) {
	return domain.ListResult[*Organization]{}, nil
}

func (r *fakeRepo) Exists(ctx context.Context, entityID id.ID) (bool, error) {
	_, ok := r.byID[entityID.String()]
	return ok, nil
}

func (r *fakeRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := r.GetByCode(ctx, code)
	return err == nil, nil
}

func (r *fakeRepo) GetDefault(ctx context.Context) (*Organization, error) {
	r.getDefaults++
	if r.defaultOrg == nil {
		return nil, apperror.NewNotFound("organization", "default")
	}
	return r.defaultOrg, nil
}

func testOrg(code string) *Organization {
	return NewOrganization(code, "Демо ЕООД", "123456789", "София", "BG")
}

func TestCreateFirstDefaultOrganization(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeTxManager{})

	org := testOrg("ORG-001")
	org.IsDefault = true

	require.NoError(t, svc.Create(context.Background(), org))
	assert.Equal(t, 1, repo.getDefaults)
}

func TestCreateSecondDefaultOrganizationConflicts(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeTxManager{})

	first := testOrg("ORG-001")
	first.IsDefault = true
	require.NoError(t, svc.Create(context.Background(), first))

	second := testOrg("ORG-002")
	second.IsDefault = true

	err := svc.Create(context.Background(), second)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)

	// The before-create hook must reject the write before it reaches storage.
	assert.NotContains(t, repo.byID, second.ID.String())
}

func TestUpdateDefaultOrganizationKeepsFlag(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeTxManager{})

	org := testOrg("ORG-001")
	org.IsDefault = true
	require.NoError(t, svc.Create(context.Background(), org))

	org.Name = "Демо Трейд ЕООД"
	require.NoError(t, svc.Update(context.Background(), org))
}

func TestCreateNonDefaultSkipsDefaultLookup(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeTxManager{})

	require.NoError(t, svc.Create(context.Background(), testOrg("ORG-001")))
	assert.Zero(t, repo.getDefaults)
}
