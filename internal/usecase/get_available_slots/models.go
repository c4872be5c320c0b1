package get_available_slots

import (
	"time"

	"github.com/m04kA/MCS-BookingService/pkg/types"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	ClinicID       int64     // ID клиники (тенант)
	PractitionerID string    // Идентификатор врача
	Date           time.Time // Дата, на которую запрашивается сетка (без времени)
}

// Response модель ответа с аннотированной сеткой дня
type Response struct {
	Date           time.Time // Дата, на которую запрашивались слоты
	ClinicID       int64     // ID клиники
	PractitionerID string    // Идентификатор врача
	DayBlocked     bool      // Весь день закрыт периодом блокировки
	BlockReason    *string   // Причина блокировки (если день закрыт)
	Slots          []Slot    // Сетка дня в порядке следования слотов
}

// Slot модель одного слота сетки
type Slot struct {
	StartTime   types.TimeString // Метка начала слота (например, "10:00")
	OrderNumber int              // Порядковый номер в сетке, начиная с 1
	Reserved    bool             // Слот занят записью или блокировкой дня
}
