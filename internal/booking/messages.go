package booking

// Messages returned to clients. The %s dates are rendered as "2006-01-02".
const (
	MsgCheckInNotNull       = "CheckIn must be not null"
	MsgCheckOutNotNull      = "CheckOut must be not null"
	MsgCheckInAfterCheckOut = "CheckIn cannot at the same date or after CheckOut"
	MsgStayTooLong          = "Stay cannot be longer than %d days"
	MsgTooEarly             = "%s must be after or at %s"
	MsgTooLate              = "%s must be before or at %s"
	MsgAlreadyBooked        = "One or more days of your desired period are already booked"
	MsgNoBookingFoundForID  = "No booking found with id : %s"
)

const (
	fieldCheckIn  = "CheckIn"
	fieldCheckOut = "CheckOut"
)
