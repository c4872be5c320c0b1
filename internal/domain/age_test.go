package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAtDate(t *testing.T) {
	tests := []struct {
		name string
		dob  time.Time
		at   time.Time
		want string
	}{
		{
			name: "exact birthday",
			dob:  date(2000, time.March, 15),
			at:   date(2024, time.March, 15),
			want: "24 ans 0 mois",
		},
		{
			name: "day before birthday borrows a month",
			dob:  date(2000, time.March, 15),
			at:   date(2024, time.March, 14),
			want: "23 ans 11 mois",
		},
		{
			name: "mid year",
			dob:  date(1990, time.January, 10),
			at:   date(2024, time.May, 20),
			want: "34 ans 4 mois",
		},
		{
			name: "month not yet reached borrows from years",
			dob:  date(1990, time.November, 20),
			at:   date(2024, time.February, 10),
			want: "33 ans 2 mois",
		},
		{
			name: "infant",
			dob:  date(2024, time.January, 5),
			at:   date(2024, time.March, 5),
			want: "0 ans 2 mois",
		},
		{
			name: "born today",
			dob:  date(2024, time.June, 1),
			at:   date(2024, time.June, 1),
			want: "0 ans 0 mois",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeAtDate(tt.dob, tt.at))
		})
	}
}
