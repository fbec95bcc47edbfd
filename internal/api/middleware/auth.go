package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mealbridge/mealbridge-api/internal/api/handler/v1/response"
	"github.com/mealbridge/mealbridge-api/internal/pkg/jwthelper"
)

// Context keys populated by VerifyJWT for downstream handlers.
const (
	CtxKeyUserID = "userID"
	CtxKeyEmail  = "email"
	CtxKeyRole   = "role"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT requires a valid bearer token and exposes its identity claims on
// the request context. Requests without an authenticated user email never
// reach the handlers behind it.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(ctx)

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, strings.TrimPrefix(header, "Bearer "))
		if err != nil || claims.Email == "" {
			abortUnauthorized(ctx)

			return
		}

		ctx.Set(CtxKeyUserID, claims.UserID)
		ctx.Set(CtxKeyEmail, claims.Email)
		ctx.Set(CtxKeyRole, string(claims.Role))

		ctx.Next()
	}
}

func abortUnauthorized(ctx *gin.Context) {
	e := response.ErrUnauthorized()
	ctx.AbortWithStatusJSON(e.StatusCode, e)
}
