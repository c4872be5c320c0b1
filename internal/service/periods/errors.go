package periods

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало периода позже конца
	ErrInvalidRange = errors.New("periods: invalid range")

	// ErrPeriodNotFound возвращается, когда период блокировки не найден
	ErrPeriodNotFound = errors.New("periods: disabled period not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("periods: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("periods: internal error")
)
