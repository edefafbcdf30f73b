package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/medichq/medic-api/pkg/errors"
)

// ErrorBody is the error payload every failure returns.
type ErrorBody struct {
	Error string `json:"error"`
}

// RespondWithError renders err to the client. AppError codes map to their
// HTTP status; anything else is logged and rendered as a generic 500.
func RespondWithError(c *gin.Context, err error) {
	if appErr, ok := errors.AsAppError(err); ok {
		if appErr.Code == errors.ErrInternal {
			log.Error().Err(appErr).Str("path", c.Request.URL.Path).Msg("internal error")
			c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error. Please try again later."})
			return
		}
		c.JSON(appErr.HTTPStatus(), ErrorBody{Error: appErr.Message})
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error. Please try again later."})
}
