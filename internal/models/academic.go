package models

import "time"

type AcademicRecord struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"owner_id"`
	InstitutionName string     `json:"institution_name"`
	Specialization  string     `json:"specialization"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ValidateAcademicPeriod checks a candidate [start, end] period against the
// owner's existing records. A nil end date means the period is ongoing and
// extends to +infinity. Boundaries are inclusive: a record ending on day X
// conflicts with one starting on day X. The record identified by excludeID
// is skipped, which lets an update be validated against its own prior state.
func ValidateAcademicPeriod(start time.Time, end *time.Time, records []*AcademicRecord, excludeID string) error {
	if end != nil && end.Before(start) {
		return ErrInvalidDateRange
	}

	for _, rec := range records {
		if rec.ID == excludeID {
			continue
		}
		if periodsOverlap(start, end, rec.StartDate, rec.EndDate) {
			return &OverlapError{ConflictingID: rec.ID}
		}
	}

	return nil
}

// periodsOverlap: [s1,e1] and [s2,e2] overlap iff s1 <= e2 && e1 >= s2,
// with nil ends treated as unbounded.
func periodsOverlap(s1 time.Time, e1 *time.Time, s2 time.Time, e2 *time.Time) bool {
	if e2 != nil && s1.After(*e2) {
		return false
	}
	if e1 != nil && e1.Before(s2) {
		return false
	}
	return true
}
