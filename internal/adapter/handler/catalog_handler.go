package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/devmarta/railbook/internal/core/domain"
	"github.com/devmarta/railbook/internal/core/services"
)

type CatalogHandler struct {
	svc *services.CatalogService
}

func NewCatalogHandler(svc *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

type trainSummaryResponse struct {
	TrainID                int64     `json:"train_id"`
	DepartureStation       string    `json:"departure_station"`
	ArrivalStation         string    `json:"arrival_station"`
	DepartureDate          time.Time `json:"departure_date"`
	ArrivalDate            time.Time `json:"arrival_date"`
	AvailableSeatsFirst    int       `json:"available_seats_first"`
	AvailableSeatsBusiness int       `json:"available_seats_business"`
	AvailableSeatsStandard int       `json:"available_seats_standard"`
}

type trainResponse struct {
	TrainID          int64     `json:"train_id"`
	DepartureStation string    `json:"departure_station"`
	ArrivalStation   string    `json:"arrival_station"`
	DepartureTime    time.Time `json:"departure_datetime"`
	ArrivalTime      time.Time `json:"arrival_datetime"`
}

type seatResponse struct {
	SeatID    int64   `json:"seat_id"`
	TrainID   int64   `json:"train_id"`
	SeatClass string  `json:"seat_class"`
	Fare      float64 `json:"fare"`
	Status    string  `json:"status"`
}

type groupedSeatsResponse struct {
	TrainID int64                     `json:"train_id"`
	Seats   map[string][]seatResponse `json:"seats"`
}

func toSeatResponse(seat domain.Seat) seatResponse {
	return seatResponse{
		SeatID:    seat.ID,
		TrainID:   seat.TrainID,
		SeatClass: string(seat.Class),
		Fare:      seat.Fare,
		Status:    string(seat.Status),
	}
}

// FilterTrains handles GET /trains/filter.
func (h *CatalogHandler) FilterTrains(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.TrainFilter{
		DepartureStation: q.Get("departure_station"),
		ArrivalStation:   q.Get("arrival_station"),
	}

	if filter.DepartureStation == "" || filter.ArrivalStation == "" {
		badRequest(w, "departure_station and arrival_station are required")
		return
	}

	if raw := q.Get("outbound_date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			badRequest(w, "invalid outbound_date")
			return
		}
		filter.OutboundDate = &t
	}

	if raw := q.Get("return_date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			badRequest(w, "invalid return_date")
			return
		}
		filter.ReturnDate = &t
	}

	if raw := q.Get("min_available_seats"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			badRequest(w, "invalid min_available_seats")
			return
		}
		filter.MinAvailableSeats = &n
	}

	if raw := q.Get("seat_class"); raw != "" {
		class := domain.SeatClass(raw)
		filter.SeatClass = &class
	}

	trains, err := h.svc.FilterTrains(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]trainSummaryResponse, 0, len(trains))
	for _, t := range trains {
		resp = append(resp, trainSummaryResponse{
			TrainID:                t.ID,
			DepartureStation:       t.DepartureStation,
			ArrivalStation:         t.ArrivalStation,
			DepartureDate:          t.DepartureTime,
			ArrivalDate:            t.ArrivalTime,
			AvailableSeatsFirst:    t.AvailableSeatsFirst,
			AvailableSeatsBusiness: t.AvailableSeatsBusiness,
			AvailableSeatsStandard: t.AvailableSeatsStandard,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetTrain handles GET /trains/{id}.
func (h *CatalogHandler) GetTrain(w http.ResponseWriter, r *http.Request) {
	trainID, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid train id")
		return
	}

	train, err := h.svc.GetTrain(r.Context(), trainID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, trainResponse{
		TrainID:          train.ID,
		DepartureStation: train.DepartureStation,
		ArrivalStation:   train.ArrivalStation,
		DepartureTime:    train.DepartureTime,
		ArrivalTime:      train.ArrivalTime,
	})
}

// GetTrainSeats handles GET /trains/{id}/seats.
func (h *CatalogHandler) GetTrainSeats(w http.ResponseWriter, r *http.Request) {
	trainID, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid train id")
		return
	}

	var seatClass *domain.SeatClass
	if raw := r.URL.Query().Get("seat_class"); raw != "" {
		class := domain.SeatClass(raw)
		seatClass = &class
	}

	grouped, err := h.svc.GetTrainSeats(r.Context(), trainID, seatClass)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := groupedSeatsResponse{
		TrainID: trainID,
		Seats:   make(map[string][]seatResponse, len(grouped)),
	}

	for class, seats := range grouped {
		bucket := make([]seatResponse, 0, len(seats))
		for _, seat := range seats {
			bucket = append(bucket, toSeatResponse(seat))
		}
		resp.Seats[string(class)] = bucket
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetSeat handles GET /seats/{id}.
func (h *CatalogHandler) GetSeat(w http.ResponseWriter, r *http.Request) {
	seatID, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid seat id")
		return
	}

	seat, err := h.svc.GetSeat(r.Context(), seatID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSeatResponse(*seat))
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

// parseDate accepts an RFC 3339 timestamp or a bare date.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", raw)
}
