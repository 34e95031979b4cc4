package middleware

import (
	"errors"
	"strings"

	"quizz_backend/internal/model"
	"quizz_backend/internal/service"
	"quizz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// AuthMiddleware is the request gate: bearer token in, resolved user out.
// A request ends up either Resolved (user in context) or Rejected; token
// parsing happens here and nowhere else.
func AuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := auth.ResolveToken(tokenString)
		if err != nil {
			if errors.Is(err, util.ErrInactiveAccount) {
				// identity resolved, access still refused
				util.Forbidden(c, "Inactive user")
			} else {
				util.Unauthorized(c)
			}
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *model.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}
