package create_booking

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнены обязательные поля
	ErrMissingFields = errors.New("create_booking: missing required fields")

	// ErrInvalidPhone возвращается при телефоне, не подходящем под формат
	// (ведущий "+" или "0", затем 6-14 цифр)
	ErrInvalidPhone = errors.New("create_booking: invalid phone format")

	// ErrInvalidBirthDate возвращается, когда дата рождения не парсится
	// или находится в будущем
	ErrInvalidBirthDate = errors.New("create_booking: invalid birth date")

	// ErrDateUnavailable возвращается, когда дата попадает в период блокировки
	ErrDateUnavailable = errors.New("create_booking: date unavailable")

	// ErrInvalidTimeSlot возвращается, когда время не является меткой сетки врача
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotTaken возвращается, когда слот уже занят другой записью
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrDuplicateBooking возвращается, когда у пациента уже есть запись
	// к этому врачу на эту дату
	ErrDuplicateBooking = errors.New("create_booking: one appointment per day already exists")

	// ErrPatientIDConflict возвращается, когда идентификатор пациента уже
	// принадлежит человеку с другими ФИО/полом/датой рождения
	ErrPatientIDConflict = errors.New("create_booking: patient id conflict")

	// ErrInvalidScheduleConfig возвращается при некорректной конфигурации сетки
	ErrInvalidScheduleConfig = errors.New("create_booking: invalid schedule configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
