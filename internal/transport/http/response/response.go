package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"store-visit/internal/domain"
)

// ErrBody is the error payload shape: a human message plus a stable
// machine-readable code.
type ErrBody struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

func statusOf(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindAccessDenied:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// WriteError maps a domain error to its transport status and body;
// anything unrecognized becomes an opaque 500.
func WriteError(c *gin.Context, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		c.JSON(statusOf(de.Kind), ErrBody{Message: de.Message, ErrorCode: de.Code()})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrBody{Message: "internal error", ErrorCode: "UndefinedHTTPError"})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrBody{Message: msg, ErrorCode: "IncorrectDataError"})
}
