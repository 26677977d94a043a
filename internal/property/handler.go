package property

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

// @Summary      List active properties
// @Tags         properties
// @Produce      json
// @Success      200 {array} property.Property
// @Failure      500 {object} api.ErrorResponse
// @Router       /properties [get]
func (h *Handler) ListActive(c *gin.Context) {
	properties, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch properties"})
		return
	}

	if properties == nil {
		properties = []Property{}
	}

	c.JSON(http.StatusOK, properties)
}

// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Param        id path int true "Property ID"
// @Success      200 {object} property.Property
// @Failure      404 {object} api.ErrorResponse
// @Router       /properties/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid property ID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch property"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      List all properties
// @Tags         admin,properties
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} property.Property
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/properties [get]
func (h *Handler) ListAll(c *gin.Context) {
	properties, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch properties"})
		return
	}

	if properties == nil {
		properties = []Property{}
	}

	c.JSON(http.StatusOK, properties)
}

// @Summary      Create a property
// @Tags         admin,properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body property.CreatePropertyRequest true "Property payload"
// @Success      201 {object} property.Property
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/properties [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// @Summary      Update a property
// @Tags         admin,properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Property ID"
// @Param        request body property.UpdatePropertyRequest true "Property payload"
// @Success      200 {object} property.Property
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/properties/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid property ID"})
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update property"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      Delete a property
// @Tags         admin,properties
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Property ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/properties/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid property ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete property"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Property deleted"})
}
