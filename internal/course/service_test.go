package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/courses-api/internal/apperr"
	"github.com/redmonkez12/courses-api/internal/database/dbtest"
	"github.com/redmonkez12/courses-api/internal/user"
	"github.com/redmonkez12/courses-api/internal/validation"
)

func ptr(s string) *string { return &s }

type fixture struct {
	svc   *Service
	repo  *Repository
	owner *user.User
	other *user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.New(t)
	users := user.NewRepository(db)

	owner, err := users.Create(t.Context(), "Joe", "Smith", "joe@x.com", "hash")
	require.NoError(t, err)
	other, err := users.Create(t.Context(), "Sally", "Jones", "sally@jones.com", "hash")
	require.NoError(t, err)

	repo := NewRepository(db)
	return &fixture{
		svc:   NewService(repo, validation.New()),
		repo:  repo,
		owner: owner,
		other: other,
	}
}

func (f *fixture) create(t *testing.T, title string) *Course {
	t.Helper()
	c, err := f.svc.Create(t.Context(), f.owner.ID, CreateRequest{
		Title:           ptr(title),
		Description:     ptr("Learn things"),
		EstimatedTime:   ptr("10 hours"),
		MaterialsNeeded: ptr("A laptop"),
	})
	require.NoError(t, err)
	return c
}

func requireKind(t *testing.T, err error, kind apperr.Kind) *apperr.Error {
	t.Helper()
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, kind, appErr.Kind)
	return appErr
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	created := f.create(t, "Build a Basic Bookcase")
	assert.NotZero(t, created.ID)
	assert.Equal(t, f.owner.ID, created.UserID)

	got, err := f.svc.Get(t.Context(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Build a Basic Bookcase", got.Title)
	assert.Equal(t, "Learn things", got.Description)
	assert.Equal(t, ptr("10 hours"), got.EstimatedTime)
	assert.Equal(t, ptr("A laptop"), got.MaterialsNeeded)
	require.NotNil(t, got.Owner)
	assert.Equal(t, f.owner.Profile(), *got.Owner)
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.svc.Create(t.Context(), f.owner.ID, CreateRequest{Description: ptr("")})
	appErr := requireKind(t, err, apperr.KindValidation)
	assert.Equal(t, []string{"A title is required", "Please provide a description"}, appErr.Messages)

	_, err = f.svc.Create(t.Context(), f.owner.ID, CreateRequest{Title: ptr("   "), Description: ptr("\n\t")})
	appErr = requireKind(t, err, apperr.KindValidation)
	assert.Equal(t, []string{"Please provide a title", "Please provide a description"}, appErr.Messages)

	assert.Zero(t, f.repo.count(t))
}

func TestCreateStoresEmptyOptionalsAsNull(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	c, err := f.svc.Create(t.Context(), f.owner.ID, CreateRequest{
		Title:         ptr("T"),
		Description:   ptr("D"),
		EstimatedTime: ptr(""),
	})
	require.NoError(t, err)

	got, err := f.svc.Get(t.Context(), c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.EstimatedTime)
	assert.Nil(t, got.MaterialsNeeded)
}

func TestListOrderedWithOwners(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	empty, err := f.svc.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := f.create(t, "First")
	second := f.create(t, "Second")

	list, err := f.svc.List(t.Context())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	for _, c := range list {
		require.NotNil(t, c.Owner)
		assert.Equal(t, f.owner.ID, c.Owner.ID)
		assert.Equal(t, "joe@x.com", c.Owner.EmailAddress)
	}
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.svc.Get(t.Context(), 999)
	appErr := requireKind(t, err, apperr.KindNotFound)
	assert.Equal(t, NotFoundMessage, appErr.Message())
}

func TestGetOwned(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	c := f.create(t, "Mine")

	got, err := f.svc.GetOwned(t.Context(), f.owner.ID, c.ID, ActionUpdate)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = f.svc.GetOwned(t.Context(), f.other.ID, c.ID, ActionUpdate)
	appErr := requireKind(t, err, apperr.KindForbidden)
	assert.Equal(t, "You do not own this course and cannot update it", appErr.Message())

	_, err = f.svc.GetOwned(t.Context(), f.other.ID, c.ID, ActionDelete)
	appErr = requireKind(t, err, apperr.KindForbidden)
	assert.Equal(t, "You do not own this course and cannot delete it", appErr.Message())

	_, err = f.svc.GetOwned(t.Context(), f.other.ID, c.ID+1, ActionDelete)
	requireKind(t, err, apperr.KindNotFound)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	c := f.create(t, "Old title")

	owned, err := f.svc.GetOwned(t.Context(), f.owner.ID, c.ID, ActionUpdate)
	require.NoError(t, err)

	err = f.svc.Update(t.Context(), owned, UpdateRequest{
		Title:         ptr("New title"),
		Description:   ptr("New description"),
		EstimatedTime: ptr(""),
	})
	require.NoError(t, err)

	got, err := f.svc.Get(t.Context(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, "New description", got.Description)
	assert.Nil(t, got.EstimatedTime, "present empty value clears the field")
	assert.Equal(t, ptr("A laptop"), got.MaterialsNeeded, "absent field keeps its value")
	assert.Equal(t, f.owner.ID, got.UserID)
}

func TestUpdateValidationPersistsNothing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	c := f.create(t, "Old title")

	tests := []struct {
		name string
		req  UpdateRequest
		want []string
	}{
		{
			name: "description missing",
			req:  UpdateRequest{Title: ptr("New"), MaterialsNeeded: ptr("Glue")},
			want: []string{`Please provide a value for "description"`},
		},
		{
			name: "both empty",
			req:  UpdateRequest{Title: ptr(""), Description: ptr("")},
			want: []string{`Please provide a value for "title"`, `Please provide a value for "description"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owned, err := f.svc.GetOwned(t.Context(), f.owner.ID, c.ID, ActionUpdate)
			require.NoError(t, err)

			err = f.svc.Update(t.Context(), owned, tt.req)
			appErr := requireKind(t, err, apperr.KindValidation)
			assert.Equal(t, tt.want, appErr.Messages)

			got, err := f.svc.Get(t.Context(), c.ID)
			require.NoError(t, err)
			assert.Equal(t, "Old title", got.Title)
			assert.Equal(t, ptr("A laptop"), got.MaterialsNeeded)
		})
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	c := f.create(t, "Doomed")

	owned, err := f.svc.GetOwned(t.Context(), f.owner.ID, c.ID, ActionDelete)
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(t.Context(), owned))

	_, err = f.svc.Get(t.Context(), c.ID)
	requireKind(t, err, apperr.KindNotFound)

	err = f.svc.Delete(t.Context(), owned)
	requireKind(t, err, apperr.KindNotFound)
}
