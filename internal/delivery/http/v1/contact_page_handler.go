package v1

import (
	"net/http"

	"go-contact-form/internal/delivery/http/web"
	"go-contact-form/internal/domain"
	"go-contact-form/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactPageHandler struct {
	contactUC domain.ContactFormUsecase
}

// NewContactPageHandler registers the server-rendered contact page
func NewContactPageHandler(r gin.IRoutes, contactUC domain.ContactFormUsecase) {
	handler := &ContactPageHandler{
		contactUC: contactUC,
	}

	r.GET("/contact", handler.Show)
	r.POST("/contact/:id", handler.Submit)
	r.POST("/contact/:id/fields/:field", handler.ChangeField)
}

// Show mounts a new form and renders it
func (h *ContactPageHandler) Show(c *gin.Context) {
	id, view, err := h.contactUC.Mount(c.Request.Context())
	if err != nil {
		c.Error(formError(err))
		return
	}
	h.render(c, id, view)
}

// ChangeField handles a change event posted with a single "value"
func (h *ContactPageHandler) ChangeField(c *gin.Context) {
	id := c.Param("id")
	view, err := h.contactUC.ChangeField(c.Request.Context(), id, c.Param("field"), c.PostForm("value"))
	if err != nil {
		c.Error(formError(err))
		return
	}
	h.render(c, id, view)
}

// Submit handles the browser post of the whole form
func (h *ContactPageHandler) Submit(c *gin.Context) {
	var values domain.FieldValues
	if err := c.ShouldBind(&values); err != nil {
		c.Error(apperror.BadRequest("Invalid form data"))
		return
	}

	id := c.Param("id")
	view, err := h.contactUC.Submit(c.Request.Context(), id, &values)
	if err != nil {
		c.Error(formError(err))
		return
	}
	h.render(c, id, view)
}

func (h *ContactPageHandler) render(c *gin.Context, id string, view domain.View) {
	c.HTML(http.StatusOK, web.ContactFormTemplate, web.ContactFormPage{ID: id, View: view})
}
