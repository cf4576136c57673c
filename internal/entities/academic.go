package entities

import (
	"database/sql"
	"time"
)

type AcademicRecord struct {
	ID              string       `db:"id"`
	OwnerID         string       `db:"owner_id"`
	InstitutionName string       `db:"institution_name"`
	Specialization  string       `db:"specialization"`
	StartDate       time.Time    `db:"start_date"`
	EndDate         sql.NullTime `db:"end_date"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at"`
}
