package domain

import "time"

// DisabledDay день, закрытый администратором для бронирования (праздник, закрытое мероприятие)
type DisabledDay struct {
	ID        string
	Day       time.Time // Календарный день, время не учитывается
	Reason    *string
	CreatedAt time.Time
}
