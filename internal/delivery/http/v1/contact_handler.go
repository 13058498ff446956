package v1

import (
	"errors"
	"net/http"

	"go-contact-form/internal/delivery/http/response"
	"go-contact-form/internal/domain"
	"go-contact-form/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactFormUsecase
}

// ContactFormResponse is the data of every form API response
type ContactFormResponse struct {
	ID   string      `json:"id"`
	View domain.View `json:"view"`
}

// ChangeFieldRequest carries the new text of one field; any string is accepted
type ChangeFieldRequest struct {
	Value string `json:"value"`
}

// NewContactHandler registers the contact form API routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactFormUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	forms := public.Group("/forms")
	forms.POST("", handler.Mount)
	forms.GET("/:id", handler.View)
	forms.PUT("/:id/fields/:field", handler.ChangeField)
	forms.POST("/:id/submit", handler.Submit)
	forms.POST("/:id/reset", handler.Reset)
	forms.DELETE("/:id", handler.Unmount)
}

// Mount godoc
// @Summary      Mount a contact form
// @Description  Creates a new form instance with empty fields and returns its initial view.
// @Tags         contact
// @Produce      json
// @Success      201      {object}  response.Response{data=ContactFormResponse}
// @Failure      429      {object}  response.Response
// @Router       /forms [post]
func (h *ContactHandler) Mount(c *gin.Context) {
	id, view, err := h.contactUC.Mount(c.Request.Context())
	if err != nil {
		c.Error(formError(err))
		return
	}
	response.Success(c, http.StatusCreated, "Form mounted", ContactFormResponse{ID: id, View: view})
}

// View godoc
// @Summary      Get a contact form
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Form ID"
// @Success      200  {object}  response.Response{data=ContactFormResponse}
// @Failure      404  {object}  response.Response
// @Router       /forms/{id} [get]
func (h *ContactHandler) View(c *gin.Context) {
	id := c.Param("id")
	view, err := h.contactUC.View(c.Request.Context(), id)
	if err != nil {
		c.Error(formError(err))
		return
	}
	response.Success(c, http.StatusOK, "Form retrieved", ContactFormResponse{ID: id, View: view})
}

// ChangeField godoc
// @Summary      Change a field
// @Description  Stores the new text of one field and re-validates that field only.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        id     path      string              true  "Form ID"
// @Param        field  path      string              true  "firstName, lastName, email or message"
// @Param        body   body      ChangeFieldRequest  true  "New value"
// @Success      200    {object}  response.Response{data=ContactFormResponse}
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /forms/{id}/fields/{field} [put]
func (h *ContactHandler) ChangeField(c *gin.Context) {
	var req ChangeFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	id := c.Param("id")
	view, err := h.contactUC.ChangeField(c.Request.Context(), id, c.Param("field"), req.Value)
	if err != nil {
		c.Error(formError(err))
		return
	}
	response.Success(c, http.StatusOK, "Field updated", ContactFormResponse{ID: id, View: view})
}

// Submit godoc
// @Summary      Submit a contact form
// @Description  Validates every field. A rejected submit is not an error: the view carries the field errors and status "rejected".
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Form ID"
// @Success      200  {object}  response.Response{data=ContactFormResponse}
// @Failure      404  {object}  response.Response
// @Router       /forms/{id}/submit [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	id := c.Param("id")
	view, err := h.contactUC.Submit(c.Request.Context(), id, nil)
	if err != nil {
		c.Error(formError(err))
		return
	}

	message := "Form submitted"
	if view.Status == domain.SubmitRejected {
		message = "Form has validation errors"
	}
	response.Success(c, http.StatusOK, message, ContactFormResponse{ID: id, View: view})
}

// Reset godoc
// @Summary      Reset a contact form
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Form ID"
// @Success      200  {object}  response.Response{data=ContactFormResponse}
// @Failure      404  {object}  response.Response
// @Router       /forms/{id}/reset [post]
func (h *ContactHandler) Reset(c *gin.Context) {
	id := c.Param("id")
	view, err := h.contactUC.Reset(c.Request.Context(), id)
	if err != nil {
		c.Error(formError(err))
		return
	}
	response.Success(c, http.StatusOK, "Form reset", ContactFormResponse{ID: id, View: view})
}

// Unmount godoc
// @Summary      Unmount a contact form
// @Description  Discards the form instance and its submitted values.
// @Tags         contact
// @Param        id   path  string  true  "Form ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Router       /forms/{id} [delete]
func (h *ContactHandler) Unmount(c *gin.Context) {
	if err := h.contactUC.Unmount(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(formError(err))
		return
	}
	response.NoContent(c)
}

// formError maps usecase errors to HTTP errors
func formError(err error) error {
	switch {
	case errors.Is(err, domain.ErrFormNotFound):
		return apperror.NotFound("Form not found")
	case errors.Is(err, domain.ErrUnknownField):
		return apperror.BadRequest("Unknown field")
	case errors.Is(err, domain.ErrTooManyForms):
		return apperror.TooManyRequests("Too many active forms. Please try again later.")
	}
	return apperror.Internal(err)
}
