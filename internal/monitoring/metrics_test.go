package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTrackBookingTransition(t *testing.T) {
	before := testutil.ToFloat64(bookingTransitions.WithLabelValues("PENDING", "ACCEPTED"))

	TrackBookingTransition("PENDING", "ACCEPTED")
	TrackBookingTransition("PENDING", "ACCEPTED")

	after := testutil.ToFloat64(bookingTransitions.WithLabelValues("PENDING", "ACCEPTED"))
	assert.Equal(t, before+2, after)
}

func TestTrackEmail(t *testing.T) {
	before := testutil.ToFloat64(emailsDispatched.WithLabelValues("failed"))
	TrackEmail("failed")
	assert.Equal(t, before+1, testutil.ToFloat64(emailsDispatched.WithLabelValues("failed")))
}

func TestCounters(t *testing.T) {
	b := testutil.ToFloat64(bookingsCreated)
	m := testutil.ToFloat64(messagesSent)

	TrackBookingCreated()
	TrackMessageSent()

	assert.Equal(t, b+1, testutil.ToFloat64(bookingsCreated))
	assert.Equal(t, m+1, testutil.ToFloat64(messagesSent))
}
