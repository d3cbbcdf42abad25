package domain

type TicketType string

const (
	TicketFlexible    TicketType = "Flexible"
	TicketNonFlexible TicketType = "NonFlexible"
)

func (t TicketType) Valid() bool {
	return t == TicketFlexible || t == TicketNonFlexible
}

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationCancelled ReservationStatus = "Cancelled"
)

func (s ReservationStatus) Valid() bool {
	return s == ReservationConfirmed || s == ReservationCancelled
}

// Reservation binds a client to a seat. ClientID and SeatID never change
// after creation; Status only moves Confirmed -> Cancelled.
type Reservation struct {
	ID         int64
	ClientID   int64
	SeatID     int64
	TicketType TicketType
	Status     ReservationStatus
}

// ReservationDetail is a reservation joined with the train its seat
// belongs to. TrainID is derived through the seat at read time, never
// stored on the reservation row.
type ReservationDetail struct {
	Reservation
	TrainID int64
}
