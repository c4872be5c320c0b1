package domain

import (
	"strings"
	"time"
)

// Patient is the master record identified by a stable patient id within
// a clinic. Read-only in this service: bookings never upsert it, they
// only guard against the same id being reused by a different person.
type Patient struct {
	ID          int64
	ClinicID    int64
	PatientID   string
	FirstName   string
	LastName    string
	Sex         string
	DateOfBirth time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ConflictsWith reports whether the identity fields of a booking request
// contradict the master record. Name comparison is case-insensitive.
func (p *Patient) ConflictsWith(firstName, lastName, sex string, dateOfBirth time.Time) bool {
	if !strings.EqualFold(strings.TrimSpace(p.FirstName), strings.TrimSpace(firstName)) {
		return true
	}
	if !strings.EqualFold(strings.TrimSpace(p.LastName), strings.TrimSpace(lastName)) {
		return true
	}
	if !strings.EqualFold(strings.TrimSpace(p.Sex), strings.TrimSpace(sex)) {
		return true
	}

	py, pm, pd := p.DateOfBirth.Date()
	by, bm, bd := dateOfBirth.Date()
	return py != by || pm != bm || pd != bd
}
