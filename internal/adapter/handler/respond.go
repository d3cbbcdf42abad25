package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/devmarta/railbook/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeError maps the domain taxonomy onto HTTP statuses: NotFound
// outcomes to 404, invalid arguments to 400, state conflicts to 409.
// Anything unclassified is a store fault and surfaces as a bare 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrTrainNotFound),
		errors.Is(err, domain.ErrSeatNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrNoTrainsFound),
		errors.Is(err, domain.ErrNoSeatsAvailable),
		errors.Is(err, domain.ErrNoReservations):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTicketType),
		errors.Is(err, domain.ErrInvalidSeatClass),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidRegistration):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrUsernameTaken):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		log.Printf("Request failed: %v", err)
		writeJSON(w, status, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": message})
}
