package http

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"generative-media-agent/internal/generation"
	"generative-media-agent/pkg/response"
)

// respondError translates use-case errors into the standard response shapes.
// Input problems stay 400 with the domain message verbatim, a disabled
// backend is 503, everything else is an opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, generation.ErrTaskNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, generation.ErrBackendNotConfigured):
		response.ServiceUnavailable(c, err.Error())
	case errors.Is(err, generation.ErrEmptyMessage),
		errors.Is(err, generation.ErrEmptyPrompt),
		errors.Is(err, generation.ErrMissingImage),
		errors.Is(err, generation.ErrMissingFrames),
		errors.Is(err, generation.ErrUnknownTaskType):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

// respondBindError reports request binding failures. Per-field rule
// violations surface as 422 with one message per rule; anything else
// (malformed JSON, bad base64) stays 400.
func (h *handler) respondBindError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s failed on the %q rule", fe.Field(), fe.Tag()))
		}
		response.ValidationFailed(c, msgs)
		return
	}
	response.Error(c, err, nil)
}
