package availability

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Synquic/zenyourlife-sub004/internal/api"
	"github.com/Synquic/zenyourlife-sub004/internal/civildate"
)

type Handler struct {
	resolver *Resolver
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{
		resolver: resolver,
	}
}

// @Summary      Day availability
// @Description  Resolves the bookable, booked and blocked slots of a civil date.
// @Tags         availability
// @Produce      json
// @Param        date query string true "Civil date (YYYY-MM-DD)"
// @Success      200 {object} availability.DayStatus
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /availability [get]
func (h *Handler) GetDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date query param is required"})
		return
	}

	day, err := h.resolver.Resolve(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, civildate.ErrInvalidFormat) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to resolve availability"})
		return
	}

	c.JSON(http.StatusOK, day)
}

// @Summary      Month availability
// @Description  Resolves every day of a month for calendar rendering.
// @Tags         availability
// @Produce      json
// @Param        month query string true "Month (YYYY-MM)"
// @Success      200 {array} availability.DayStatus
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /availability/range [get]
func (h *Handler) GetRange(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "month query param is required"})
		return
	}

	days, err := h.resolver.ResolveMonth(c.Request.Context(), month)
	if err != nil {
		if errors.Is(err, civildate.ErrInvalidFormat) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid month, expected YYYY-MM"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to resolve availability"})
		return
	}

	c.JSON(http.StatusOK, days)
}
