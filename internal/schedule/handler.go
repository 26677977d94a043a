package schedule

import (
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

// @Summary      Get weekly schedule
// @Tags         admin,schedule
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} schedule.DaySchedule
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/schedule [get]
func (h *Handler) GetWeek(c *gin.Context) {
	days, err := h.service.GetWeek(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch schedule"})
		return
	}

	c.JSON(http.StatusOK, days)
}

// @Summary      Update one weekday of the schedule
// @Tags         admin,schedule
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        weekday path int true "Weekday (0=Sunday..6=Saturday)"
// @Param        request body schedule.UpdateDayRequest true "Day payload"
// @Success      200 {object} schedule.DaySchedule
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/schedule/{weekday} [put]
func (h *Handler) UpdateDay(c *gin.Context) {
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid weekday"})
		return
	}

	var req UpdateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	day, err := h.service.UpdateDay(c.Request.Context(), weekday, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidWeekday), errors.Is(err, ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update schedule"})
		}
		return
	}

	c.JSON(http.StatusOK, day)
}

// @Summary      Block a date
// @Description  Blocks the whole date when blocked_time_slots is empty, otherwise only the listed slots.
// @Tags         admin,schedule
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body schedule.CreateBlockedDateRequest true "Blocked date payload"
// @Success      201 {object} schedule.BlockedDate
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/blocked-dates [post]
func (h *Handler) CreateBlockedDate(c *gin.Context) {
	var req CreateBlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	bd, err := h.service.CreateBlockedDate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create blocked date"})
		}
		return
	}

	c.JSON(http.StatusCreated, bd)
}

// @Summary      Get a blocked date
// @Tags         admin,schedule
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Blocked date ID"
// @Success      200 {object} schedule.BlockedDate
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/blocked-dates/{id} [get]
func (h *Handler) GetBlockedDate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid blocked date ID"})
		return
	}

	bd, err := h.service.GetBlockedDate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBlockedDateNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Blocked date not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch blocked date"})
		return
	}

	c.JSON(http.StatusOK, bd)
}

// @Summary      List blocked dates in a range
// @Tags         admin,schedule
// @Produce      json
// @Security     BearerAuth
// @Param        from query string true "Start civil date (YYYY-MM-DD)"
// @Param        to   query string true "End civil date (YYYY-MM-DD)"
// @Success      200 {array} schedule.BlockedDate
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/blocked-dates [get]
func (h *Handler) ListBlockedDates(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "from and to query params are required"})
		return
	}

	dates, err := h.service.ListBlockedDates(c.Request.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch blocked dates"})
		}
		return
	}

	c.JSON(http.StatusOK, dates)
}

// @Summary      Update a blocked date
// @Tags         admin,schedule
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Blocked date ID"
// @Param        request body schedule.UpdateBlockedDateRequest true "Blocked date payload"
// @Success      200 {object} schedule.BlockedDate
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/blocked-dates/{id} [put]
func (h *Handler) UpdateBlockedDate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid blocked date ID"})
		return
	}

	var req UpdateBlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	bd, err := h.service.UpdateBlockedDate(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrBlockedDateNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Blocked date not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update blocked date"})
		}
		return
	}

	c.JSON(http.StatusOK, bd)
}

// @Summary      Remove a blocked date
// @Description  Soft delete: the record is deactivated, not removed.
// @Tags         admin,schedule
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Blocked date ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/blocked-dates/{id} [delete]
func (h *Handler) DeactivateBlockedDate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid blocked date ID"})
		return
	}

	if err := h.service.DeactivateBlockedDate(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrBlockedDateNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Blocked date not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to remove blocked date"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Blocked date removed"})
}
