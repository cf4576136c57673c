package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/entities"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pkg = "userRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) AddUser(ctx context.Context, user models.User) error {
	op := pkg + "AddUser"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users(id, email, first_name, last_name, pass_hash, role, application_status, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.FirstName, user.LastName, user.PassHash,
		user.Role, user.ApplicationStatus, user.CreatedAt, user.UpdatedAt)

	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok {
			if pgErr.Code == "23505" {
				return &models.UniqueConstraintError{
					Constraint: pgErr.Constraint,
					Err:        models.ErrUNIQUEConstraintFailed,
				}
			}
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) UserByID(ctx context.Context, id string) (*models.User, error) {
	op := pkg + "UserByID"

	rawUser := entities.User{}

	err := r.db.GetContext(ctx, &rawUser,
		`SELECT
			u.id AS id,
			u.email AS email,
			u.first_name AS first_name,
			u.last_name AS last_name,
			u.pass_hash AS pass_hash,
			u.role AS role,
			u.application_status AS application_status,
			u.created_at AS created_at,
			u.updated_at AS updated_at
		FROM users u
		WHERE u.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapUser(rawUser), nil
}

func (r *repository) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	op := pkg + "UserByEmail"

	rawUser := entities.User{}

	err := r.db.GetContext(ctx, &rawUser,
		`SELECT
			u.id AS id,
			u.email AS email,
			u.first_name AS first_name,
			u.last_name AS last_name,
			u.pass_hash AS pass_hash,
			u.role AS role,
			u.application_status AS application_status,
			u.created_at AS created_at,
			u.updated_at AS updated_at
		FROM users u
		WHERE u.email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapUser(rawUser), nil
}

// UpdateApplicationStatus moves an applicant to newStatus. The row is locked
// for the duration of the transaction so two concurrent admin decisions
// cannot interleave. Setting the current status again is a no-op that leaves
// updated_at untouched and reports changed=false.
func (r *repository) UpdateApplicationStatus(ctx context.Context, userID string, newStatus models.ApplicationStatus) (*models.User, bool, error) {
	op := pkg + "UpdateApplicationStatus"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	rawUser := entities.User{}

	err = tx.GetContext(ctx, &rawUser,
		`SELECT
			u.id AS id,
			u.email AS email,
			u.first_name AS first_name,
			u.last_name AS last_name,
			u.pass_hash AS pass_hash,
			u.role AS role,
			u.application_status AS application_status,
			u.created_at AS created_at,
			u.updated_at AS updated_at
		FROM users u
		WHERE u.id = $1
		FOR UPDATE`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, models.ErrUserNotFound
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	if rawUser.ApplicationStatus == string(newStatus) {
		return mapUser(rawUser), false, nil
	}

	now := time.Now()

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET application_status = $1, updated_at = $2 WHERE id = $3`,
		newStatus, now, userID)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	rawUser.ApplicationStatus = string(newStatus)
	rawUser.UpdatedAt = now

	return mapUser(rawUser), true, nil
}

func (r *repository) ListApplicants(ctx context.Context, limit int, offset int) ([]*models.User, error) {
	op := pkg + "ListApplicants"

	rawUsers := make([]entities.User, 0)

	query := `SELECT
			u.id AS id,
			u.email AS email,
			u.first_name AS first_name,
			u.last_name AS last_name,
			u.pass_hash AS pass_hash,
			u.role AS role,
			u.application_status AS application_status,
			u.created_at AS created_at,
			u.updated_at AS updated_at
		FROM users u
		WHERE u.role = $1
		ORDER BY u.created_at DESC
		OFFSET $2`

	args := []any{models.RoleApplicant, offset}

	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT $3`
	}

	err := r.db.SelectContext(ctx, &rawUsers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users := make([]*models.User, 0, len(rawUsers))
	for _, rawUser := range rawUsers {
		users = append(users, mapUser(rawUser))
	}

	return users, nil
}

func (r *repository) CountApplicants(ctx context.Context) (int64, error) {
	op := pkg + "CountApplicants"

	var count int64

	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM users u WHERE u.role = $1`, models.RoleApplicant)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (r *repository) CountApplicantsByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	op := pkg + "CountApplicantsByStatus"

	var count int64

	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM users u WHERE u.role = $1 AND u.application_status = $2`,
		models.RoleApplicant, status)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// CountApplicantsByStatusUpdatedAfter backs the 30-day approval rate. Only
// the latest transition time is retained, so the count reflects the current
// status of rows touched since the cutoff, not a transition log.
func (r *repository) CountApplicantsByStatusUpdatedAfter(ctx context.Context, status models.ApplicationStatus, after time.Time) (int64, error) {
	op := pkg + "CountApplicantsByStatusUpdatedAfter"

	var count int64

	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM users u WHERE u.role = $1 AND u.application_status = $2 AND u.updated_at > $3`,
		models.RoleApplicant, status, after)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func mapUser(rawUser entities.User) *models.User {
	return &models.User{
		ID:                rawUser.ID,
		Email:             rawUser.Email,
		FirstName:         rawUser.FirstName,
		LastName:          rawUser.LastName,
		PassHash:          rawUser.PassHash,
		Role:              models.Role(rawUser.Role),
		ApplicationStatus: models.ApplicationStatus(rawUser.ApplicationStatus),
		CreatedAt:         rawUser.CreatedAt,
		UpdatedAt:         rawUser.UpdatedAt,
	}
}
