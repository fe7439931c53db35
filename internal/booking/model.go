package booking

import (
	"net/http"
	"strings"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/calendar"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "booking not found")
	ErrAlreadyExists = apperror.New(http.StatusConflict, "booking already exists")
)

// Booking is a stay in the single room. CheckIn and CheckOut are both occupied dates.
type Booking struct {
	ID        string
	CheckIn   time.Time
	CheckOut  time.Time
	CreatedAt time.Time
}

// normalize strips storage artifacts (time of day, driver locations) from b.
func normalize(b *Booking) *Booking {
	b.CheckIn = calendar.DateOf(b.CheckIn)
	b.CheckOut = calendar.DateOf(b.CheckOut)
	b.CreatedAt = b.CreatedAt.UTC()
	return b
}

// ValidationError carries every business rule a request broke.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "booking validation failed: " + strings.Join(e.Messages, "; ")
}
