package controller

import (
	"strconv"

	"quizz_backend/internal/model"
	"quizz_backend/internal/service"
	"quizz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizzController struct {
	QuizzService *service.QuizzService
}

func NewQuizzController(quizzService *service.QuizzService) *QuizzController {
	return &QuizzController{QuizzService: quizzService}
}

type CreateQuizzRequest struct {
	Name       string `json:"name" binding:"required"`
	Difficulty int    `json:"difficulty"`
	Category   string `json:"category"`
}

func (c *QuizzController) Create(ctx *gin.Context) {
	var req CreateQuizzRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quizz, err := c.QuizzService.CreateQuizz(req.Name, req.Difficulty, req.Category)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, quizz.ToPublicWithQuestions())
}

func (c *QuizzController) List(ctx *gin.Context) {
	quizzes, err := c.QuizzService.ListQuizzes()
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	out := make([]model.QuizzPublicWithQuestions, 0, len(quizzes))
	for i := range quizzes {
		out = append(out, quizzes[i].ToPublicWithQuestions())
	}
	util.Success(ctx, out)
}

func (c *QuizzController) Get(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid quizz id")
		return
	}

	quizz, err := c.QuizzService.GetQuizz(id)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, quizz.ToPublicWithQuestions())
}

type AddQuestionRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddQuestion returns the updated parent quiz, not the created question.
func (c *QuizzController) AddQuestion(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid quizz id")
		return
	}

	var req AddQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quizz, err := c.QuizzService.AddQuestion(id, req.Content)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, quizz.ToPublicWithQuestions())
}

func (c *QuizzController) AddAnswers(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	var inputs []service.AnswerInput
	if err := ctx.ShouldBindJSON(&inputs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuizzService.AddAnswers(id, inputs)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, question.ToPublicWithAnswers())
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
