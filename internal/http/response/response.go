package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnify-backend/internal/platform/apierr"
)

// ErrorBody is the error envelope. Clients read "detail".
type ErrorBody struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorBody{Detail: msg, Code: code})
}

func AbortError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorBody{Detail: msg, Code: code})
}

// RespondServiceError maps an *apierr.Error to its status and code. Anything
// else is a 500 with a generic message; the cause is attached to the gin
// context for the request logger.
func RespondServiceError(c *gin.Context, err error) {
	if ae, ok := apierr.As(err); ok {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		RespondError(c, status, ae.Code, ae.Err)
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorBody{Detail: "Internal server error", Code: "internal_error"})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
