package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quizz_backend/internal/model"
	"quizz_backend/internal/repository"
	"quizz_backend/internal/util"
	"quizz_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	quizzListCacheKey = "quizzes:list"
	quizzListCacheTTL = 30 * time.Second
)

// AnswerInput is one element of an AddAnswers batch.
type AnswerInput struct {
	Content string `json:"content" binding:"required"`
	Valid   bool   `json:"valid"`
}

type QuizzService struct {
	QuizzRepo *repository.QuizzRepository
	Redis     *redis.Client
}

func NewQuizzService(quizzRepo *repository.QuizzRepository, rdb *redis.Client) *QuizzService {
	return &QuizzService{
		QuizzRepo: quizzRepo,
		Redis:     rdb,
	}
}

func (s *QuizzService) CreateQuizz(name string, difficulty int, category string) (*model.Quizz, error) {
	if name == "" {
		return nil, util.ErrInvalidInput
	}
	if difficulty == 0 {
		difficulty = 1
	}

	quizz := &model.Quizz{
		Name:       name,
		Difficulty: difficulty,
		Category:   category,
	}
	if err := s.QuizzRepo.Create(quizz); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	logger.Log.Info("quizz created", zap.Uint("id", quizz.ID), zap.String("name", quizz.Name))

	return s.GetQuizz(quizz.ID)
}

// AddQuestion attaches a question to an existing quiz and returns the
// re-fetched parent aggregate, so callers see the updated question collection
// rather than the bare leaf.
func (s *QuizzService) AddQuestion(quizzID uint, content string) (*model.Quizz, error) {
	if content == "" {
		return nil, util.ErrInvalidInput
	}

	quizz, err := s.QuizzRepo.FindByID(quizzID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	question := &model.Question{
		Content: content,
		QuizzID: quizz.ID,
	}
	if err := s.QuizzRepo.CreateQuestion(question); err != nil {
		return nil, err
	}

	s.invalidateListCache()

	return s.GetQuizz(quizz.ID)
}

// AddAnswers attaches the whole batch to a question atomically and returns
// the re-fetched question with its answer collection.
func (s *QuizzService) AddAnswers(questionID uint, inputs []AnswerInput) (*model.Question, error) {
	if len(inputs) == 0 {
		return nil, util.ErrInvalidInput
	}

	question, err := s.QuizzRepo.FindQuestionByID(questionID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	answers := make([]model.Answer, 0, len(inputs))
	for _, in := range inputs {
		if in.Content == "" {
			return nil, util.ErrInvalidInput
		}
		answers = append(answers, model.Answer{
			Content:    in.Content,
			Valid:      in.Valid,
			QuestionID: question.ID,
		})
	}

	if err := s.QuizzRepo.CreateAnswers(answers); err != nil {
		return nil, err
	}

	s.invalidateListCache()

	question, err = s.QuizzRepo.FindQuestionByID(question.ID)
	if err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizzService) GetQuizz(id uint) (*model.Quizz, error) {
	quizz, err := s.QuizzRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return quizz, nil
}

// ListQuizzes serves from a short-lived redis cache when one is configured;
// the database stays the source of truth.
func (s *QuizzService) ListQuizzes() ([]model.Quizz, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(context.Background(), quizzListCacheKey).Bytes()
		if err == nil {
			var quizzes []model.Quizz
			if json.Unmarshal(cached, &quizzes) == nil {
				return quizzes, nil
			}
		}
	}

	quizzes, err := s.QuizzRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(quizzes); err == nil {
			s.Redis.Set(context.Background(), quizzListCacheKey, payload, quizzListCacheTTL)
		}
	}

	return quizzes, nil
}

func (s *QuizzService) invalidateListCache() {
	if s.Redis != nil {
		s.Redis.Del(context.Background(), quizzListCacheKey)
	}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrNotFound
	}
	return err
}
