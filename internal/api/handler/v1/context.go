package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/mealbridge/mealbridge-api/internal/api/handler/v1/response"
	"github.com/mealbridge/mealbridge-api/internal/api/middleware"
	"github.com/mealbridge/mealbridge-api/internal/domain"
)

// session is the authenticated identity the JWT middleware stored on the
// request context.
type session struct {
	UserID uint
	Email  string
	Role   domain.Role
}

func sessionFromContext(ctx *gin.Context) (session, *response.Err) {
	email := ctx.GetString(middleware.CtxKeyEmail)
	if email == "" {
		return session{}, response.ErrUnauthorized()
	}

	return session{
		UserID: ctx.GetUint(middleware.CtxKeyUserID),
		Email:  email,
		Role:   domain.Role(ctx.GetString(middleware.CtxKeyRole)),
	}, nil
}
