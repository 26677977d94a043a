package booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Synquic/zenyourlife-sub004/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Create a booking
// @Description  Books a time slot on a civil date. Rejections carry 422 for
// @Description  malformed or past dates and 409 for slot conflicts.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body booking.CreateBookingRequest true "Booking payload"
// @Success      201 {object} booking.Booking
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      422 {object} api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDateFormat), errors.Is(err, ErrDateInPast):
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrSlotNotOffered), errors.Is(err, ErrSlotBlocked), errors.Is(err, ErrSlotAlreadyBooked):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      Booked slots of a date
// @Description  Lists the time slots occupied by active bookings, without
// @Description  exposing who booked them.
// @Tags         bookings
// @Produce      json
// @Param        date query string true "Civil date (YYYY-MM-DD)"
// @Success      200 {object} booking.BookedSlotsResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings/booked-slots [get]
func (h *Handler) BookedSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date query param is required"})
		return
	}

	slots, err := h.service.BookedSlots(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch booked slots"})
		return
	}

	if slots == nil {
		slots = []string{}
	}

	c.JSON(http.StatusOK, BookedSlotsResponse{Date: date, BookedSlots: slots})
}

// @Summary      Get a booking
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Booking ID"
// @Success      200 {object} booking.Booking
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/bookings/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch booking"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// @Summary      List bookings
// @Description  Filters by date or by status. One of the two is required.
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Param        date   query string false "Civil date (YYYY-MM-DD)"
// @Param        status query string false "Booking status"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Page offset"
// @Success      200 {array} booking.BookingWithTreatment
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/bookings [get]
func (h *Handler) List(c *gin.Context) {
	date := c.Query("date")
	status := c.Query("status")

	var (
		bookings []BookingWithTreatment
		err      error
	)
	switch {
	case date != "":
		bookings, err = h.service.ListByDate(c.Request.Context(), date)
	case status != "":
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		bookings, err = h.service.ListByStatus(c.Request.Context(), Status(status), limit, offset)
	default:
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date or status query param is required"})
		return
	}

	if err != nil {
		if errors.Is(err, ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	if bookings == nil {
		bookings = []BookingWithTreatment{}
	}

	c.JSON(http.StatusOK, bookings)
}

// @Summary      Confirm a booking
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Booking ID"
// @Success      200 {object} booking.Booking
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/bookings/{id}/confirm [post]
func (h *Handler) Confirm(c *gin.Context) {
	h.transition(c, h.service.Confirm)
}

// @Summary      Cancel a booking
// @Description  Frees the slot for new bookings and emails the customer.
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Booking ID"
// @Success      200 {object} booking.Booking
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/bookings/{id}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel)
}

// @Summary      Complete a booking
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Booking ID"
// @Success      200 {object} booking.Booking
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/bookings/{id}/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	h.transition(c, h.service.Complete)
}

func (h *Handler) transition(c *gin.Context, fn func(ctx context.Context, id int) (*Booking, error)) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	b, err := fn(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		case errors.Is(err, ErrInvalidStatusTransition):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update booking"})
		}
		return
	}

	c.JSON(http.StatusOK, b)
}
