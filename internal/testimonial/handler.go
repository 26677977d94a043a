package testimonial

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Synquic/zenyourlife-sub004/internal/api"
)

// Testimonials are thin CRUD with no business rules beyond the approval
// flag, so the handler talks to the repository directly.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo: repo,
	}
}

// @Summary      Submit a testimonial
// @Description  Submissions await staff approval before appearing publicly.
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        request body testimonial.CreateTestimonialRequest true "Testimonial payload"
// @Success      201 {object} testimonial.Testimonial
// @Failure      400 {object} api.ErrorResponse
// @Router       /testimonials [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.repo.Create(c.Request.Context(), &Testimonial{
		AuthorName: req.AuthorName,
		Content:    req.Content,
		Rating:     req.Rating,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to submit testimonial"})
		return
	}

	c.JSON(http.StatusCreated, t)
}

// @Summary      List approved testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200 {array} testimonial.Testimonial
// @Failure      500 {object} api.ErrorResponse
// @Router       /testimonials [get]
func (h *Handler) ListApproved(c *gin.Context) {
	testimonials, err := h.repo.ListApproved(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch testimonials"})
		return
	}

	if testimonials == nil {
		testimonials = []Testimonial{}
	}

	c.JSON(http.StatusOK, testimonials)
}

// @Summary      List all testimonials
// @Tags         admin,testimonials
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} testimonial.Testimonial
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/testimonials [get]
func (h *Handler) ListAll(c *gin.Context) {
	testimonials, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch testimonials"})
		return
	}

	if testimonials == nil {
		testimonials = []Testimonial{}
	}

	c.JSON(http.StatusOK, testimonials)
}

// @Summary      Approve a testimonial
// @Tags         admin,testimonials
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Testimonial ID"
// @Success      200 {object} testimonial.Testimonial
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/testimonials/{id}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid testimonial ID"})
		return
	}

	t, err := h.repo.Approve(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTestimonialNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to approve testimonial"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// @Summary      Delete a testimonial
// @Tags         admin,testimonials
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Testimonial ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/testimonials/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid testimonial ID"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTestimonialNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete testimonial"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Testimonial deleted"})
}
