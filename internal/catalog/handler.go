package catalog

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

// @Summary      List active treatments
// @Tags         treatments
// @Produce      json
// @Success      200 {array} catalog.Treatment
// @Failure      500 {object} api.ErrorResponse
// @Router       /treatments [get]
func (h *Handler) ListActive(c *gin.Context) {
	treatments, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch treatments"})
		return
	}

	if treatments == nil {
		treatments = []Treatment{}
	}

	c.JSON(http.StatusOK, treatments)
}

// @Summary      Get a treatment
// @Tags         treatments
// @Produce      json
// @Param        id path int true "Treatment ID"
// @Success      200 {object} catalog.Treatment
// @Failure      404 {object} api.ErrorResponse
// @Router       /treatments/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid treatment ID"})
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTreatmentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Treatment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch treatment"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// @Summary      List all treatments
// @Tags         admin,treatments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} catalog.Treatment
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/treatments [get]
func (h *Handler) ListAll(c *gin.Context) {
	treatments, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch treatments"})
		return
	}

	if treatments == nil {
		treatments = []Treatment{}
	}

	c.JSON(http.StatusOK, treatments)
}

// @Summary      Create a treatment
// @Tags         admin,treatments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body catalog.CreateTreatmentRequest true "Treatment payload"
// @Success      201 {object} catalog.Treatment
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/treatments [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create treatment"})
		return
	}

	c.JSON(http.StatusCreated, t)
}

// @Summary      Update a treatment
// @Tags         admin,treatments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Treatment ID"
// @Param        request body catalog.UpdateTreatmentRequest true "Treatment payload"
// @Success      200 {object} catalog.Treatment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/treatments/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid treatment ID"})
		return
	}

	var req UpdateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrTreatmentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Treatment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update treatment"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// @Summary      Delete a treatment
// @Tags         admin,treatments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Treatment ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/treatments/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid treatment ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTreatmentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Treatment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete treatment"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Treatment deleted"})
}
