package domain

import (
	"fmt"
	"time"
)

// AgeAtDate formats the calendar age at the given date as "N ans M mois"
// (years and months, floor-rounded: a month is subtracted when the
// day-of-month of at precedes the day-of-month of the birth date).
func AgeAtDate(dateOfBirth, at time.Time) string {
	years := at.Year() - dateOfBirth.Year()
	months := int(at.Month()) - int(dateOfBirth.Month())

	if at.Day() < dateOfBirth.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}
	if years < 0 {
		years, months = 0, 0
	}

	return fmt.Sprintf("%d ans %d mois", years, months)
}
