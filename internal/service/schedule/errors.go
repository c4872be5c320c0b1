package schedule

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("service.schedule: invalid input")
	// ErrInvalidScheduleConfig невалидная конфигурация сетки приема
	ErrInvalidScheduleConfig = errors.New("service.schedule: invalid schedule configuration")
	// ErrScheduleNotFound конфигурация не найдена
	ErrScheduleNotFound = errors.New("service.schedule: schedule not found")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service.schedule: internal error")
)
