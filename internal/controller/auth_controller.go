package controller

import (
	"quizz_backend/internal/middleware"
	"quizz_backend/internal/model"
	"quizz_backend/internal/service"
	"quizz_backend/internal/util"
	"quizz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	FullName string `json:"fullName"`
	Password string `json:"password" binding:"required,min=8"`
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	}

	if err := c.AuthService.Register(user, req.Password); err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// TokenRequest binds both the OAuth2-style form post and a JSON body.
type TokenRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Token exchanges credentials for a bearer token.
func (c *AuthController) Token(ctx *gin.Context) {
	var req TokenRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Authenticate(req.Username, req.Password)
	if err != nil {
		monitoring.LoginCounter.WithLabelValues("failure").Inc()
		util.FromError(ctx, err)
		return
	}

	monitoring.LoginCounter.WithLabelValues("success").Inc()
	util.Success(ctx, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me returns the caller's public profile with the session history the gate
// already loaded.
func (c *AuthController) Me(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, user.ToPublic())
}
