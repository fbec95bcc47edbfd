package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error envelope of the donation endpoints. Unexpected failures
// collapse to a fixed vocabulary; internal detail is logged, never returned.
type Err struct {
	StatusCode int    `json:"-"`
	OK         bool   `json:"ok"`
	Error      string `json:"error"`
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Error:      err.Error(),
	}
}

func ErrUnauthorized() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Error:      "UNAUTHORIZED",
	}
}

func ErrForbidden() *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Error:      "FORBIDDEN",
	}
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Error:      "INTERNAL_ERROR",
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.JSON(err.StatusCode, err)
}
