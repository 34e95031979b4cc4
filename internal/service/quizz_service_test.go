package service

import (
	"testing"

	"quizz_backend/internal/model"
	"quizz_backend/internal/repository"
	"quizz_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizzService(t *testing.T) *QuizzService {
	t.Helper()
	return NewQuizzService(repository.NewQuizzRepository(newTestDB(t)), nil)
}

func TestCreateQuizzDefaultDifficulty(t *testing.T) {
	s := newQuizzService(t)

	quizz, err := s.CreateQuizz("Histoire", 0, "")
	require.NoError(t, err)
	assert.Equal(t, 1, quizz.Difficulty)
}

func TestCreateQuizzEmptyName(t *testing.T) {
	s := newQuizzService(t)

	_, err := s.CreateQuizz("", 2, "")
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestQuizzBuildScenario(t *testing.T) {
	s := newQuizzService(t)

	quizz, err := s.CreateQuizz("Test", 2, "")
	require.NoError(t, err)
	require.NotZero(t, quizz.ID)

	quizz, err = s.AddQuestion(quizz.ID, "Q?")
	require.NoError(t, err)
	require.Len(t, quizz.Questions, 1)

	questionID := quizz.Questions[0].ID
	question, err := s.AddAnswers(questionID, []AnswerInput{
		{Content: "right", Valid: true},
		{Content: "wrong", Valid: false},
	})
	require.NoError(t, err)
	require.Len(t, question.Answers, 2)

	validCount := 0
	for _, a := range question.Answers {
		if a.Valid {
			validCount++
		}
	}
	assert.Equal(t, 1, validCount)
}

func TestAddQuestionReturnsParentAggregate(t *testing.T) {
	s := newQuizzService(t)

	quizz, err := s.CreateQuizz("Histoire", 3, "history")
	require.NoError(t, err)

	updated, err := s.AddQuestion(quizz.ID, "Début de la guerre ?")
	require.NoError(t, err)
	assert.Equal(t, quizz.ID, updated.ID)
	require.Len(t, updated.Questions, 1)
	assert.Equal(t, "Début de la guerre ?", updated.Questions[0].Content)
	assert.Equal(t, quizz.ID, updated.Questions[0].QuizzID)
}

func TestAddQuestionMissingQuizz(t *testing.T) {
	s := newQuizzService(t)

	_, err := s.AddQuestion(9999, "X")
	assert.ErrorIs(t, err, util.ErrNotFound)

	// nothing may have been partially created
	var count int64
	s.QuizzRepo.DB.Model(&model.Question{}).Count(&count)
	assert.Zero(t, count)
}

func TestAddAnswersMissingQuestion(t *testing.T) {
	s := newQuizzService(t)

	_, err := s.AddAnswers(9999, []AnswerInput{{Content: "1338", Valid: true}})
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestAddAnswersEmptyBatch(t *testing.T) {
	s := newQuizzService(t)

	quizz, err := s.CreateQuizz("Test", 1, "")
	require.NoError(t, err)
	quizz, err = s.AddQuestion(quizz.ID, "Q?")
	require.NoError(t, err)

	_, err = s.AddAnswers(quizz.Questions[0].ID, nil)
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestAnswersRoundTripInInsertionOrder(t *testing.T) {
	s := newQuizzService(t)

	quizz, err := s.CreateQuizz("Guerre de trente ans", 3, "")
	require.NoError(t, err)
	quizz, err = s.AddQuestion(quizz.ID, "Début de la guerre ?")
	require.NoError(t, err)

	_, err = s.AddAnswers(quizz.Questions[0].ID, []AnswerInput{
		{Content: "1338", Valid: true},
		{Content: "2004", Valid: false},
	})
	require.NoError(t, err)

	fetched, err := s.GetQuizz(quizz.ID)
	require.NoError(t, err)

	projected := fetched.ToPublicWithQuestions()
	require.Len(t, projected.Questions, 1)
	answers := projected.Questions[0].Answers
	require.Len(t, answers, 2)
	assert.Equal(t, "1338", answers[0].Content)
	assert.True(t, answers[0].Valid)
	assert.Equal(t, "2004", answers[1].Content)
	assert.False(t, answers[1].Valid)
}

func TestGetQuizzMissing(t *testing.T) {
	s := newQuizzService(t)

	_, err := s.GetQuizz(42)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestListQuizzes(t *testing.T) {
	s := newQuizzService(t)

	_, err := s.CreateQuizz("A", 1, "")
	require.NoError(t, err)
	_, err = s.CreateQuizz("B", 2, "")
	require.NoError(t, err)

	quizzes, err := s.ListQuizzes()
	require.NoError(t, err)
	assert.Len(t, quizzes, 2)
}
