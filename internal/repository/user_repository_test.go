package repository

import (
	"fmt"
	"strings"
	"testing"

	"quizz_backend/internal/model"
	"quizz_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// FindByUsername must bring back the whole session graph in one call; the
// projection layer never fetches on its own.
func TestFindByUsernameLoadsSessionGraph(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	quizz := &model.Quizz{Name: "Guerre de trente ans", Difficulty: 3}
	require.NoError(t, db.Create(quizz).Error)
	question := &model.Question{Content: "Début de la guerre ?", QuizzID: quizz.ID}
	require.NoError(t, db.Create(question).Error)
	answer := &model.Answer{Content: "1338", Valid: true, QuestionID: question.ID}
	require.NoError(t, db.Create(answer).Error)

	user := &model.User{Username: "johndoe", HashedPassword: "irrelevant"}
	require.NoError(t, repo.Create(user))

	session := &model.QuizzSession{UserID: user.ID, QuizzID: quizz.ID, Score: 2}
	require.NoError(t, db.Create(session).Error)
	require.NoError(t, db.Create(&model.QuizzSessionAnswer{
		QuizzSessionID: session.ID,
		AnswerID:       answer.ID,
	}).Error)

	loaded, err := repo.FindByUsername("johndoe")
	require.NoError(t, err)

	require.Len(t, loaded.QuizzSessions, 1)
	got := loaded.QuizzSessions[0]
	require.NotNil(t, got.Quizz)
	assert.Equal(t, "Guerre de trente ans", got.Quizz.Name)
	require.Len(t, got.Answers, 1)
	require.NotNil(t, got.Answers[0].Answer)
	assert.Equal(t, "1338", got.Answers[0].Answer.Content)
	assert.True(t, got.Answers[0].Answer.Valid)
}

func TestFindByUsernameMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
