package domain

import "time"

type Train struct {
	ID               int64
	DepartureStation string
	ArrivalStation   string
	DepartureTime    time.Time
	ArrivalTime      time.Time
}

// TrainSummary is a train row decorated with its live per-class
// availability, as returned by the filter query.
type TrainSummary struct {
	Train
	AvailableSeatsFirst    int
	AvailableSeatsBusiness int
	AvailableSeatsStandard int
}

func (t *TrainSummary) AvailableSeats(class SeatClass) int {
	switch class {
	case ClassFirst:
		return t.AvailableSeatsFirst
	case ClassBusiness:
		return t.AvailableSeatsBusiness
	case ClassStandard:
		return t.AvailableSeatsStandard
	}
	return 0
}

// TrainFilter carries the criteria accepted by the filter operation.
// OutboundDate and ReturnDate both bound DepartureTime (inclusive lower
// and upper bound respectively); there is no return-leg modeling.
type TrainFilter struct {
	DepartureStation  string
	ArrivalStation    string
	OutboundDate      *time.Time
	ReturnDate        *time.Time
	MinAvailableSeats *int
	SeatClass         *SeatClass
}
