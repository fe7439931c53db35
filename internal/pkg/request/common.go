package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
// Booking IDs are opaque: clients may choose their own when they PUT a booking.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,max=64"`
}
