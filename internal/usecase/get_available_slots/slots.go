package get_available_slots

import (
	"fmt"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	"github.com/m04kA/MCS-BookingService/pkg/types"
)

// generateTimeSlots генерирует упорядоченную сетку слотов дня.
// Слоты идут от начала дня с фиксированным шагом interval; слот попадает
// в сетку, только если его интервал целиком помещается до конца дня
// (сетка 08:00-09:00 с шагом 15 -> 08:00, 08:15, 08:30, 08:45).
//
// Вырожденная конфигурация (interval <= 0, конец не позже начала) -
// это ошибка конфигурации, а не пустая сетка: цикл с нулевым шагом
// не должен обойтись молчаливым возвратом.
func generateTimeSlots(start, end types.TimeString, intervalMinutes int) ([]types.TimeString, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %d", ErrInvalidScheduleConfig, intervalMinutes)
	}
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: bad day start: %v", ErrInvalidScheduleConfig, err)
	}
	if err := end.Validate(); err != nil {
		return nil, fmt.Errorf("%w: bad day end: %v", ErrInvalidScheduleConfig, err)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: day end %s must be after day start %s", ErrInvalidScheduleConfig, end, start)
	}

	slots := make([]types.TimeString, 0)
	current := start

	for current.IsBefore(end) {
		slotEnd, err := current.AddMinutes(intervalMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(end) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots, nil
}

// annotateSlots размечает сетку: порядковые номера, занятость по активным
// записям и сплошная блокировка дня
func annotateSlots(grid []types.TimeString, bookings []*domain.Booking, dayBlocked bool) []Slot {
	reserved := make(map[types.TimeString]bool, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		reserved[b.StartTime] = true
	}

	slots := make([]Slot, len(grid))
	for i, label := range grid {
		slots[i] = Slot{
			StartTime:   label,
			OrderNumber: i + 1,
			Reserved:    dayBlocked || reserved[label],
		}
	}

	return slots
}
