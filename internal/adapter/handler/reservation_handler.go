package handler

import (
	"encoding/json"
	"net/http"

	"github.com/devmarta/railbook/internal/core/domain"
	"github.com/devmarta/railbook/internal/core/services"
)

type ReservationHandler struct {
	svc *services.ReservationService
}

func NewReservationHandler(svc *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

type createReservationRequest struct {
	ClientID   int64  `json:"client_id"`
	SeatID     int64  `json:"seat_id"`
	TicketType string `json:"ticket_type"`
}

type reservationResponse struct {
	ReservationID int64  `json:"reservation_id"`
	ClientID      int64  `json:"client_id"`
	SeatID        int64  `json:"seat_id"`
	TrainID       int64  `json:"train_id"`
	TicketType    string `json:"ticket_type"`
	Status        string `json:"status"`
}

type clientReservationResponse struct {
	ReservationID int64  `json:"reservation_id"`
	SeatID        int64  `json:"seat_id"`
	TrainID       int64  `json:"train_id"`
	TicketType    string `json:"ticket_type"`
	Status        string `json:"status"`
}

func toReservationResponse(detail *domain.ReservationDetail) reservationResponse {
	return reservationResponse{
		ReservationID: detail.ID,
		ClientID:      detail.ClientID,
		SeatID:        detail.SeatID,
		TrainID:       detail.TrainID,
		TicketType:    string(detail.TicketType),
		Status:        string(detail.Status),
	}
}

// CreateReservation handles POST /reservations.
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	detail, err := h.svc.CreateReservation(r.Context(), req.ClientID, req.SeatID, domain.TicketType(req.TicketType))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReservationResponse(detail))
}

// CancelReservation handles PUT /reservations/{id}/cancel.
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	reservationID, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid reservation id")
		return
	}

	detail, err := h.svc.CancelReservation(r.Context(), reservationID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReservationResponse(detail))
}

// GetClientReservations handles GET /clients/{id}/reservations.
func (h *ReservationHandler) GetClientReservations(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid client id")
		return
	}

	var status *domain.ReservationStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.ReservationStatus(raw)
		status = &s
	}

	reservations, err := h.svc.GetClientReservations(r.Context(), clientID, status)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]clientReservationResponse, 0, len(reservations))
	for _, detail := range reservations {
		resp = append(resp, clientReservationResponse{
			ReservationID: detail.ID,
			SeatID:        detail.SeatID,
			TrainID:       detail.TrainID,
			TicketType:    string(detail.TicketType),
			Status:        string(detail.Status),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
