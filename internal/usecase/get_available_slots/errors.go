package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidScheduleConfig возвращается при некорректной конфигурации сетки
	// (неположительный интервал, конец дня не позже начала). Ошибка конфигурации
	// фатальна для запроса и никогда не превращается в пустую сетку.
	ErrInvalidScheduleConfig = errors.New("get_available_slots: invalid schedule configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
