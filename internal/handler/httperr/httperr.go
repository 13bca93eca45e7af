package httperr

import (
	"log/slog"
	"net/http"

	"cafe-menu-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps a Problem to its status and exposes the details.
// Any other error is an internal failure and its text is not returned.
func AbortWithDomainError(c *gin.Context, err error) {
	p, ok := errs.AsProblem(err)
	if !ok {
		slog.Error("request failed", "path", c.Request.URL.Path, "error", err.Error())
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, StatusOf(p.Kind), err, MessageOf(p.Kind), p.Details)
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func MessageOf(kind errs.Kind) string {
	switch kind {
	case errs.KindValidation:
		return "Validation failed"
	case errs.KindNotFound:
		return "Not found"
	case errs.KindConflict:
		return "Conflict"
	default:
		return "Internal server error"
	}
}
