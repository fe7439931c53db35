package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/calendar"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	response.Data(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			response.Errors(c, http.StatusNotFound, fmt.Sprintf(booking.MsgNoBookingFoundForID, req.ID))
			return
		}
		response.Error(c, err)
		return
	}

	response.Data(c, http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Booked(c *gin.Context) {
	dates, err := h.service.BookedDates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, newDateList(dates))
}

func (h *Handler) Available(c *gin.Context) {
	dates, err := h.service.AvailableDates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, newDateList(dates))
}

func (h *Handler) Create(c *gin.Context) {
	var body BookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Errors(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	checkIn, checkOut, err := body.Dates()
	if err != nil {
		response.Errors(c, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		writeSaveError(c, err)
		return
	}

	response.Data(c, http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Errors(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	var body BookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Errors(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	checkIn, checkOut, err := body.Dates()
	if err != nil {
		response.Errors(c, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.service.Update(c.Request.Context(), uri.ID, booking.UpdateRequest{
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		writeSaveError(c, err)
		return
	}

	// Replacing a booking answers 201 like creating one.
	response.Data(c, http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	if err := h.service.Cancel(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			response.Errors(c, http.StatusNotFound, fmt.Sprintf(booking.MsgNoBookingFoundForID, req.ID))
			return
		}
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// writeSaveError maps create/update failures: rule violations and missing dates are the
// client's fault, storage conflicts carry their own status, the rest is a server error.
func writeSaveError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.Errors(c, http.StatusBadRequest, vErr.Messages...)
	case errors.Is(err, calendar.ErrInvalidArgument):
		response.Errors(c, http.StatusBadRequest, err.Error())
	default:
		response.Error(c, err)
	}
}
