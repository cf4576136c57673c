package userrepo

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, *repository) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	repo := NewRepository(sqlxDB)
	return sqlxDB, mock, repo
}

func userRows(user *models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "first_name", "last_name", "pass_hash",
		"role", "application_status", "created_at", "updated_at",
	}).AddRow(user.ID, user.Email, user.FirstName, user.LastName, user.PassHash,
		string(user.Role), string(user.ApplicationStatus), user.CreatedAt, user.UpdatedAt)
}

func TestAddUser_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	now := time.Now()
	user := models.User{
		ID:                "user1",
		Email:             "applicant@example.com",
		FirstName:         "Awa",
		LastName:          "Ouedraogo",
		PassHash:          []byte("hash"),
		Role:              models.RoleApplicant,
		ApplicationStatus: models.ApplicationPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Email, user.FirstName, user.LastName, user.PassHash,
			user.Role, user.ApplicationStatus, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AddUser(context.Background(), user)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddUser_UniqueConstraint(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	err := repo.AddUser(context.Background(), models.User{ID: "user1"})

	var uniqueErr *models.UniqueConstraintError
	require.ErrorAs(t, err, &uniqueErr)
	assert.Equal(t, "users_email_key", uniqueErr.Constraint)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserByEmail_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.UserByEmail(context.Background(), "ghost@example.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateApplicationStatus_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	user := &models.User{
		ID:                "user1",
		Email:             "applicant@example.com",
		Role:              models.RoleApplicant,
		ApplicationStatus: models.ApplicationPending,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs("user1").
		WillReturnRows(userRows(user))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET application_status = $1, updated_at = $2 WHERE id = $3`)).
		WithArgs(models.ApplicationApproved, sqlmock.AnyArg(), "user1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, changed, err := repo.UpdateApplicationStatus(context.Background(), "user1", models.ApplicationApproved)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, models.ApplicationApproved, updated.ApplicationStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateApplicationStatus_SameStatusIsNoOp(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	updatedAt := time.Now().Add(-time.Hour)
	user := &models.User{
		ID:                "user1",
		Role:              models.RoleApplicant,
		ApplicationStatus: models.ApplicationApproved,
		CreatedAt:         time.Now().Add(-2 * time.Hour),
		UpdatedAt:         updatedAt,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs("user1").
		WillReturnRows(userRows(user))
	mock.ExpectRollback()

	updated, changed, err := repo.UpdateApplicationStatus(context.Background(), "user1", models.ApplicationApproved)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, models.ApplicationApproved, updated.ApplicationStatus)
	assert.WithinDuration(t, updatedAt, updated.UpdatedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateApplicationStatus_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	updated, _, err := repo.UpdateApplicationStatus(context.Background(), "ghost", models.ApplicationApproved)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApplicants_WithLimit(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	user := &models.User{
		ID:                "user1",
		Role:              models.RoleApplicant,
		ApplicationStatus: models.ApplicationPending,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	mock.ExpectQuery("LIMIT").
		WithArgs(models.RoleApplicant, 10, 5).
		WillReturnRows(userRows(user))

	users, err := repo.ListApplicants(context.Background(), 5, 10)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "user1", users[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApplicants_NoLimit(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery("OFFSET").
		WithArgs(models.RoleApplicant, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "first_name", "last_name", "pass_hash",
			"role", "application_status", "created_at", "updated_at",
		}))

	users, err := repo.ListApplicants(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountApplicantsByStatusUpdatedAfter(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	cutoff := time.Now().AddDate(0, 0, -30)

	mock.ExpectQuery("COUNT").
		WithArgs(models.RoleApplicant, models.ApplicationApproved, cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.CountApplicantsByStatusUpdatedAfter(context.Background(), models.ApplicationApproved, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
