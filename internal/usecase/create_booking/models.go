package create_booking

import (
	"time"

	"github.com/m04kA/MCS-BookingService/pkg/types"
)

// Request модель запроса на создание записи на прием.
// DateOfBirth передается строкой "YYYY-MM-DD": её разбор - часть
// бизнес-валидации (шаг "invalid birth date"), а не HTTP-слоя.
type Request struct {
	ClinicID       int64            // ID клиники (тенант)
	PractitionerID string           // Идентификатор врача
	PatientID      string           // Стабильный идентификатор пациента
	FirstName      string           // Имя
	LastName       string           // Фамилия
	Sex            string           // Пол
	DateOfBirth    string           // Дата рождения, "YYYY-MM-DD"
	Phone          string           // Телефон
	MedicalHistory *string          // Анамнез (опционально)
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Метка слота (например, "10:00")
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64            // ID созданной записи
	ClinicID       int64            // ID клиники
	PractitionerID string           // Идентификатор врача
	PatientID      string           // Идентификатор пациента
	FirstName      string           // Имя
	LastName       string           // Фамилия
	Sex            string           // Пол
	DateOfBirth    time.Time        // Дата рождения
	AgeAtBooking   string           // Возраст на момент записи ("34 ans 2 mois")
	Phone          string           // Телефон
	MedicalHistory *string          // Анамнез
	BookingDate    time.Time        // Дата записи
	StartTime      types.TimeString // Метка слота
	OrderNumber    int              // Порядковый номер слота в сетке
	Status         string           // Статус записи

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
