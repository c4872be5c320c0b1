package domain

import "github.com/m04kA/MCS-BookingService/pkg/types"

// DaySlot represents one bookable time label within a day's grid,
// annotated with its availability
type DaySlot struct {
	StartTime   types.TimeString
	OrderNumber int // 1-based position within the grid
	Reserved    bool
}

// OrderNumber maps a time label to its 1-based position within the grid
// defined by (start, end, intervalMinutes). Returns ok=false when the
// label lies outside the day window or is not aligned to the interval;
// callers must treat that as display-only "not applicable", never an error.
func OrderNumber(label, start, end types.TimeString, intervalMinutes int) (int, bool) {
	if intervalMinutes <= 0 {
		return 0, false
	}

	labelMin, err := label.Minutes()
	if err != nil {
		return 0, false
	}
	startMin, err := start.Minutes()
	if err != nil {
		return 0, false
	}
	endMin, err := end.Minutes()
	if err != nil {
		return 0, false
	}

	offset := labelMin - startMin
	if offset < 0 || offset%intervalMinutes != 0 {
		return 0, false
	}
	// Слот валиден, только если его интервал целиком помещается до конца дня
	if labelMin+intervalMinutes > endMin {
		return 0, false
	}

	return offset/intervalMinutes + 1, true
}
