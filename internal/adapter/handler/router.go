package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// NewRouter wires every route behind the request-id middleware.
func NewRouter(catalog *CatalogHandler, reservation *ReservationHandler, auth *AuthHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /trains/filter", catalog.FilterTrains)
	mux.HandleFunc("GET /trains/{id}", catalog.GetTrain)
	mux.HandleFunc("GET /trains/{id}/seats", catalog.GetTrainSeats)
	mux.HandleFunc("GET /seats/{id}", catalog.GetSeat)

	mux.HandleFunc("POST /reservations", reservation.CreateReservation)
	mux.HandleFunc("PUT /reservations/{id}/cancel", reservation.CancelReservation)
	mux.HandleFunc("GET /clients/{id}/reservations", reservation.GetClientReservations)

	mux.HandleFunc("POST /clients/register", auth.Register)
	mux.HandleFunc("POST /clients/login", auth.Login)

	return withRequestID(mux)
}

// withRequestID tags every request with a generated id, echoes it back
// in X-Request-ID and logs the request once served.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s (%s)", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}
