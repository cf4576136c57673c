package dto

import (
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

type AcademicRecordRequest struct {
	InstitutionName string     `json:"institution_name"`
	Specialization  string     `json:"specialization"`
	StartDate       civilDate  `json:"start_date"`
	EndDate         *civilDate `json:"end_date,omitempty"`
}

func (r AcademicRecordRequest) Start() time.Time { return time.Time(r.StartDate) }

func (r AcademicRecordRequest) End() *time.Time {
	if r.EndDate == nil {
		return nil
	}
	t := time.Time(*r.EndDate)
	return &t
}

type AcademicRecordResponse struct {
	ID              string     `json:"id"`
	InstitutionName string     `json:"institution_name"`
	Specialization  string     `json:"specialization"`
	StartDate       civilDate  `json:"start_date"`
	EndDate         *civilDate `json:"end_date,omitempty"`
}

func AcademicRecordResponseFrom(rec *models.AcademicRecord) AcademicRecordResponse {
	resp := AcademicRecordResponse{
		ID:              rec.ID,
		InstitutionName: rec.InstitutionName,
		Specialization:  rec.Specialization,
		StartDate:       civilDate(rec.StartDate),
	}
	if rec.EndDate != nil {
		d := civilDate(*rec.EndDate)
		resp.EndDate = &d
	}
	return resp
}

// civilDate marshals as "2006-01-02", the wire format for academic periods.
type civilDate time.Time

const civilDateLayout = "2006-01-02"

func (d civilDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(civilDateLayout) + `"`), nil
}

func (d *civilDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse(civilDateLayout, s)
	if err != nil {
		return err
	}
	*d = civilDate(t)
	return nil
}
