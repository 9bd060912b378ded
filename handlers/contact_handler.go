package handlers

import (
	"context"
	"net/http"

	"github.com/tupelotree/contact-backend/models"
	"github.com/tupelotree/contact-backend/utils"
	"go.uber.org/zap"
)

const thankYouMessage = "Thank you for your message. We will get back to you soon."

// ContactPipeline defines the interface for processing a submission
type ContactPipeline interface {
	Process(ctx context.Context, form models.ContactForm) (*models.Submission, error)
}

// ContactHandler handles contact-form HTTP requests
type ContactHandler struct {
	pipeline ContactPipeline
	logger   *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(pipeline ContactPipeline, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{pipeline: pipeline, logger: logger}
}

// HandleSubmit handles POST /contact
// Thin handler: parses the form, runs the pipeline, maps the outcome.
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("malformed form body", zap.Error(err))
		_ = utils.WriteBadRequest(w, "Malformed form body", nil)
		return
	}

	form := models.ContactForm{
		Name:    r.PostFormValue(models.FieldName),
		Email:   r.PostFormValue(models.FieldEmail),
		Message: r.PostFormValue(models.FieldMessage),
		Token:   r.PostFormValue(models.FieldToken),
	}

	if _, err := h.pipeline.Process(r.Context(), form); err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, thankYouMessage)
}
