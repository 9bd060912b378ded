package handlers

import (
	"net/http"

	"github.com/tupelotree/contact-backend/services"
	"github.com/tupelotree/contact-backend/utils"
	"go.uber.org/zap"
)

// opaqueFailureMessage is what callers see for any downstream or local I/O
// failure; the full detail stays in the operator-visible logs.
const opaqueFailureMessage = "Something went wrong."

// HandleServiceError maps domain errors to HTTP responses
func HandleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if err == nil {
		return
	}

	details := services.GetErrorDetails(err)

	switch {
	case services.IsValidationError(err):
		if err := utils.WriteUnprocessableEntity(w, "Validation failed", details["fields"]); err != nil {
			logger.Error("failed to write validation response", zap.Error(err))
		}

	case services.IsChallengeRejectedError(err):
		if err := utils.WriteBadRequest(w, "Challenge verification failed", nil); err != nil {
			logger.Error("failed to write challenge rejection response", zap.Error(err))
		}

	case services.IsDownstreamError(err), services.IsLocalIOError(err):
		logger.Error("pipeline stage failed",
			zap.String("error_type", string(services.GetErrorType(err))),
			zap.Error(err))
		if err := utils.WriteInternalServerError(w, opaqueFailureMessage); err != nil {
			logger.Error("failed to write internal error response", zap.Error(err))
		}

	default:
		logger.Error("unhandled error type",
			zap.Error(err),
			zap.String("error_type", string(services.GetErrorType(err))))
		if err := utils.WriteInternalServerError(w, opaqueFailureMessage); err != nil {
			logger.Error("failed to write internal error response", zap.Error(err))
		}
	}
}
