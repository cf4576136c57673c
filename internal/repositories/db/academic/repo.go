package academicrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/entities"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	"github.com/jmoiron/sqlx"
)

const pkg = "academicRepo/"

const academicColumns = `
			a.id AS id,
			a.owner_id AS owner_id,
			a.institution_name AS institution_name,
			a.specialization AS specialization,
			a.start_date AS start_date,
			a.end_date AS end_date,
			a.created_at AS created_at,
			a.updated_at AS updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]*models.AcademicRecord, error) {
	op := pkg + "ListByOwner"

	rawRecs := make([]entities.AcademicRecord, 0)

	err := r.db.SelectContext(ctx, &rawRecs,
		`SELECT `+academicColumns+`
		FROM academic_history a
		WHERE a.owner_id = $1
		ORDER BY a.start_date DESC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	recs := make([]*models.AcademicRecord, 0, len(rawRecs))
	for _, rawRec := range rawRecs {
		recs = append(recs, mapRecord(rawRec))
	}

	return recs, nil
}

// Insert re-validates the candidate period against the owner's full record
// set inside the same transaction, with the owner's users row locked. Two
// concurrent additions therefore cannot both pass validation against a
// stale snapshot, even when the history starts out empty.
func (r *repository) Insert(ctx context.Context, rec *models.AcademicRecord) error {
	op := pkg + "Insert"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	existing, err := lockOwnerRecords(ctx, tx, rec.OwnerID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := models.ValidateAcademicPeriod(rec.StartDate, rec.EndDate, existing, ""); err != nil {
		return err
	}

	var endDate any
	if rec.EndDate != nil {
		endDate = *rec.EndDate
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO academic_history (id, owner_id, institution_name, specialization, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.OwnerID, rec.InstitutionName, rec.Specialization,
		rec.StartDate, endDate, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Update re-validates against every other record of the owner (the record
// itself is excluded) within the same locked transaction as the write.
func (r *repository) Update(ctx context.Context, rec *models.AcademicRecord) error {
	op := pkg + "Update"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	existing, err := lockOwnerRecords(ctx, tx, rec.OwnerID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var found bool
	for _, e := range existing {
		if e.ID == rec.ID {
			found = true
			break
		}
	}
	if !found {
		return models.ErrAcademicRecordNotFound
	}

	if err := models.ValidateAcademicPeriod(rec.StartDate, rec.EndDate, existing, rec.ID); err != nil {
		return err
	}

	var endDate any
	if rec.EndDate != nil {
		endDate = *rec.EndDate
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE academic_history
		SET institution_name = $1, specialization = $2, start_date = $3, end_date = $4, updated_at = $5
		WHERE id = $6 AND owner_id = $7`,
		rec.InstitutionName, rec.Specialization, rec.StartDate, endDate,
		time.Now(), rec.ID, rec.OwnerID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string, ownerID string) error {
	op := pkg + "Delete"

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM academic_history WHERE id = $1 AND owner_id = $2`,
		id, ownerID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrAcademicRecordNotFound)
	}

	return nil
}

// lockOwnerRecords serializes concurrent writes per owner by locking the
// owner's users row first. Locking only the existing history rows is not
// enough: two first-time inserts would each see an empty set and both pass
// validation, since row locks do not cover rows that do not exist yet.
func lockOwnerRecords(ctx context.Context, tx *sqlx.Tx, ownerID string) ([]*models.AcademicRecord, error) {
	var lockedOwner string

	err := tx.GetContext(ctx, &lockedOwner,
		`SELECT id FROM users WHERE id = $1 FOR UPDATE`,
		ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}

	rawRecs := make([]entities.AcademicRecord, 0)

	err = tx.SelectContext(ctx, &rawRecs,
		`SELECT `+academicColumns+`
		FROM academic_history a
		WHERE a.owner_id = $1`,
		ownerID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	recs := make([]*models.AcademicRecord, 0, len(rawRecs))
	for _, rawRec := range rawRecs {
		recs = append(recs, mapRecord(rawRec))
	}

	return recs, nil
}

func mapRecord(rawRec entities.AcademicRecord) *models.AcademicRecord {
	rec := &models.AcademicRecord{
		ID:              rawRec.ID,
		OwnerID:         rawRec.OwnerID,
		InstitutionName: rawRec.InstitutionName,
		Specialization:  rawRec.Specialization,
		StartDate:       rawRec.StartDate,
		CreatedAt:       rawRec.CreatedAt,
		UpdatedAt:       rawRec.UpdatedAt,
	}

	if rawRec.EndDate.Valid {
		endDate := rawRec.EndDate.Time
		rec.EndDate = &endDate
	}

	return rec
}
