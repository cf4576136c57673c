package academicservice

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAcademicRepository struct {
	mock.Mock
}

func (m *MockAcademicRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.AcademicRecord, error) {
	args := m.Called(ctx, ownerID)
	recs, _ := args.Get(0).([]*models.AcademicRecord)
	return recs, args.Error(1)
}

func (m *MockAcademicRepository) Insert(ctx context.Context, rec *models.AcademicRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockAcademicRepository) Update(ctx context.Context, rec *models.AcademicRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockAcademicRepository) Delete(ctx context.Context, id string, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func newTestService() (*AcademicService, *MockAcademicRepository) {
	repo := new(MockAcademicRepository)
	return New(slog.Default(), repo), repo
}

func owner() *models.User {
	return &models.User{ID: "user1", Role: models.RoleApplicant}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestAddRecord_Success(t *testing.T) {
	t.Parallel()

	service, repo := newTestService()

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(rec *models.AcademicRecord) bool {
		return rec.OwnerID == "user1" && rec.InstitutionName == "Universite de Ouagadougou"
	})).Return(nil)

	rec, err := service.AddRecord(context.Background(), owner(), "Universite de Ouagadougou", "Physics",
		date(2023, time.September, 1), datePtr(2024, time.June, 30))
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	repo.AssertExpectations(t)
}

func TestAddRecord_OngoingPeriod(t *testing.T) {
	t.Parallel()

	service, repo := newTestService()

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(rec *models.AcademicRecord) bool {
		return rec.EndDate == nil
	})).Return(nil)

	rec, err := service.AddRecord(context.Background(), owner(), "Universite de Ouagadougou", "Physics",
		date(2024, time.September, 1), nil)
	require.NoError(t, err)
	assert.Nil(t, rec.EndDate)
}

func TestAddRecord_MissingFields(t *testing.T) {
	t.Parallel()

	service, repo := newTestService()

	_, err := service.AddRecord(context.Background(), owner(), "", "Physics",
		date(2023, time.September, 1), nil)
	assert.ErrorIs(t, err, models.ErrInvalidParams)

	_, err = service.AddRecord(context.Background(), owner(), "Universite", "",
		date(2023, time.September, 1), nil)
	assert.ErrorIs(t, err, models.ErrInvalidParams)

	_, err = service.AddRecord(context.Background(), owner(), "Universite", "Physics",
		time.Time{}, nil)
	assert.ErrorIs(t, err, models.ErrInvalidParams)

	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAddRecord_EndBeforeStart(t *testing.T) {
	t.Parallel()

	service, repo := newTestService()

	_, err := service.AddRecord(context.Background(), owner(), "Universite", "Physics",
		date(2024, time.September, 1), datePtr(2023, time.June, 30))
	assert.ErrorIs(t, err, models.ErrInvalidDateRange)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAddRecord_Overlap(t *testing.T) {
	t.Parallel()

	service, repo := newTestService()

	repo.On("Insert", mock.Anything, mock.Anything).
		Return(&models.OverlapError{ConflictingID: "rec9"})

	_, err := service.AddRecord(context.Background(), owner(), "Universite", "Physics",
		date(2023, time.September, 1), datePtr(2024, time.June, 30))

	var overlap *models.OverlapError
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, "rec9", overlap.ConflictingID)
}

func TestUpdateRecord_NotFound(t *testing.T) {
	t.Parallel()

	service, repo := newTestService()

	repo.On("Update", mock.Anything, mock.Anything).Return(models.ErrAcademicRecordNotFound)

	_, err := service.UpdateRecord(context.Background(), owner(), "ghost", "Universite", "Physics",
		date(2023, time.September, 1), nil)
	assert.ErrorIs(t, err, models.ErrAcademicRecordNotFound)
}

func TestUpdateRecord_Success(t *testing.T) {
	t.Parallel()

	service, repo := newTestService()

	repo.On("Update", mock.Anything, mock.MatchedBy(func(rec *models.AcademicRecord) bool {
		return rec.ID == "rec1" && rec.OwnerID == "user1" && rec.InstitutionName == "New Name"
	})).Return(nil)

	rec, err := service.UpdateRecord(context.Background(), owner(), "rec1", "New Name", "Physics",
		date(2023, time.September, 1), datePtr(2024, time.June, 30))
	require.NoError(t, err)
	assert.Equal(t, "rec1", rec.ID)
	repo.AssertExpectations(t)
}

func TestDeleteRecord(t *testing.T) {
	t.Parallel()

	service, repo := newTestService()

	repo.On("Delete", mock.Anything, "rec1", "user1").Return(nil)

	err := service.DeleteRecord(context.Background(), owner(), "rec1")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteRecord_NotFound(t *testing.T) {
	t.Parallel()

	service, repo := newTestService()

	repo.On("Delete", mock.Anything, "ghost", "user1").Return(models.ErrAcademicRecordNotFound)

	err := service.DeleteRecord(context.Background(), owner(), "ghost")
	assert.ErrorIs(t, err, models.ErrAcademicRecordNotFound)
}

func TestListRecords_InternalError(t *testing.T) {
	t.Parallel()

	service, repo := newTestService()

	repo.On("ListByOwner", mock.Anything, "user1").Return(nil, errors.New("db down"))

	recs, err := service.ListRecords(context.Background(), "user1")
	assert.Nil(t, recs)
	assert.ErrorIs(t, err, models.ErrInternal)
}
