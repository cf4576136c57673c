package entities

import "time"

type User struct {
	ID                string    `db:"id"`
	Email             string    `db:"email"`
	FirstName         string    `db:"first_name"`
	LastName          string    `db:"last_name"`
	PassHash          []byte    `db:"pass_hash"`
	Role              string    `db:"role"`
	ApplicationStatus string    `db:"application_status"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}
