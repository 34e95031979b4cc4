package repository

import (
	"quizz_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.QuizzSession) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(session).Error
	})
}

// FindByIDForUser scopes the lookup to the owning user; somebody else's
// session is indistinguishable from a missing one.
func (r *SessionRepository) FindByIDForUser(id, userID uint) (*model.QuizzSession, error) {
	var session model.QuizzSession
	err := r.DB.
		Preload("Quizz").
		Preload("Answers.Answer").
		Where("user_id = ?", userID).
		First(&session, id).Error
	return &session, err
}

func (r *SessionRepository) CreateAnswer(answer *model.QuizzSessionAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(answer).Error
	})
}

func (r *SessionRepository) FindAnswerByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.DB.First(&answer, id).Error
	return &answer, err
}
