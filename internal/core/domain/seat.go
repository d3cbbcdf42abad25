package domain

type SeatClass string

const (
	ClassFirst    SeatClass = "First"
	ClassBusiness SeatClass = "Business"
	ClassStandard SeatClass = "Standard"
)

// SeatClasses lists every class in fare-tier order.
var SeatClasses = []SeatClass{ClassFirst, ClassBusiness, ClassStandard}

func (c SeatClass) Valid() bool {
	switch c {
	case ClassFirst, ClassBusiness, ClassStandard:
		return true
	}
	return false
}

type SeatStatus string

const (
	SeatAvailable SeatStatus = "Available"
	SeatReserved  SeatStatus = "Reserved"
)

type Seat struct {
	ID      int64
	TrainID int64
	Class   SeatClass
	Fare    float64
	Status  SeatStatus
}

func (s *Seat) IsAvailable() bool {
	return s.Status == SeatAvailable
}
