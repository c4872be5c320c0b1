package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/MCS-BookingService/pkg/types"
)

func TestOrderNumber(t *testing.T) {
	start := types.TimeString("09:00")
	end := types.TimeString("12:00")

	tests := []struct {
		name     string
		label    types.TimeString
		interval int
		wantNum  int
		wantOK   bool
	}{
		{name: "first slot", label: "09:00", interval: 30, wantNum: 1, wantOK: true},
		{name: "second slot", label: "09:30", interval: 30, wantNum: 2, wantOK: true},
		{name: "last slot that fits", label: "11:30", interval: 30, wantNum: 6, wantOK: true},
		{name: "end of day label", label: "12:00", interval: 30, wantOK: false},
		{name: "slot would overrun day end", label: "11:45", interval: 30, wantOK: false},
		{name: "before day start", label: "08:30", interval: 30, wantOK: false},
		{name: "not aligned to interval", label: "09:10", interval: 30, wantOK: false},
		{name: "zero interval", label: "09:00", interval: 0, wantOK: false},
		{name: "negative interval", label: "09:00", interval: -15, wantOK: false},
		{name: "garbage label", label: "9h00", interval: 30, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, ok := OrderNumber(tt.label, start, end, tt.interval)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantNum, num)
			}
		})
	}
}

func TestOrderNumberShortWindow(t *testing.T) {
	// Сетка 08:00-09:00 с шагом 15: четыре слота, последний 08:45
	start := types.TimeString("08:00")
	end := types.TimeString("09:00")

	num, ok := OrderNumber("08:45", start, end, 15)
	assert.True(t, ok)
	assert.Equal(t, 4, num)

	_, ok = OrderNumber("09:00", start, end, 15)
	assert.False(t, ok)
}
