package domain

import "errors"

// Domain outcomes surfaced to callers. Anything else coming out of a
// repository is a store fault and must not be classified as one of these.
var (
	ErrTrainNotFound = errors.New("train not found")

	// ErrSeatNotFound is also what the reserve path returns for a seat
	// that exists but is taken: callers cannot tell the two apart.
	ErrSeatNotFound = errors.New("seat not found")

	ErrClientNotFound      = errors.New("client not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrNoTrainsFound / ErrNoSeatsAvailable / ErrNoReservations signal an
	// empty filtered result set, not a system fault.
	ErrNoTrainsFound    = errors.New("no available trains found")
	ErrNoSeatsAvailable = errors.New("no available seats found for the specified train")
	ErrNoReservations   = errors.New("no reservations found for the specified client")

	ErrInvalidTicketType = errors.New("invalid ticket type: must be Flexible or NonFlexible")
	ErrInvalidSeatClass  = errors.New("invalid seat class: must be First, Business or Standard")
	ErrInvalidStatus     = errors.New("invalid reservation status: must be Confirmed or Cancelled")

	ErrAlreadyCancelled = errors.New("reservation is already cancelled")

	ErrInvalidRegistration = errors.New("username and password are required")
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrInvalidCredentials  = errors.New("invalid username or password")
)
