package controller

import (
	"quizz_backend/internal/middleware"
	"quizz_backend/internal/service"
	"quizz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

type StartSessionRequest struct {
	QuizzID uint `json:"quizzId" binding:"required"`
	Score   int  `json:"score"`
}

func (c *SessionController) Start(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.StartSession(user.ID, req.QuizzID, req.Score)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, session.ToPublic())
}

type RecordAnswerRequest struct {
	AnswerID uint `json:"answerId" binding:"required"`
}

func (c *SessionController) RecordAnswer(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := parseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid session id")
		return
	}

	var req RecordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.RecordAnswer(user.ID, id, req.AnswerID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, session.ToPublic())
}

func (c *SessionController) Get(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := parseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid session id")
		return
	}

	session, err := c.SessionService.GetSession(user.ID, id)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, session.ToPublic())
}
