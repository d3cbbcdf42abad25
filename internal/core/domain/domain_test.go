package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devmarta/railbook/internal/core/domain"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, domain.ClassFirst.Valid())
	assert.True(t, domain.ClassBusiness.Valid())
	assert.True(t, domain.ClassStandard.Valid())
	assert.False(t, domain.SeatClass("Economy").Valid())

	assert.True(t, domain.TicketFlexible.Valid())
	assert.True(t, domain.TicketNonFlexible.Valid())
	assert.False(t, domain.TicketType("Refundable").Valid())

	assert.True(t, domain.ReservationConfirmed.Valid())
	assert.True(t, domain.ReservationCancelled.Valid())
	assert.False(t, domain.ReservationStatus("Pending").Valid())
}

func TestTrainSummaryAvailableSeats(t *testing.T) {
	summary := domain.TrainSummary{
		AvailableSeatsFirst:    1,
		AvailableSeatsBusiness: 2,
		AvailableSeatsStandard: 3,
	}

	assert.Equal(t, 1, summary.AvailableSeats(domain.ClassFirst))
	assert.Equal(t, 2, summary.AvailableSeats(domain.ClassBusiness))
	assert.Equal(t, 3, summary.AvailableSeats(domain.ClassStandard))
	assert.Zero(t, summary.AvailableSeats(domain.SeatClass("Economy")))
}
