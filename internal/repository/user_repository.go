package repository

import (
	"quizz_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

// FindByUsername loads the user together with the whole session graph
// (session → quizz, session → chosen answers) in one bounded fetch plan, so
// the projection never has to trigger follow-up reads.
func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.
		Preload("QuizzSessions.Quizz").
		Preload("QuizzSessions.Answers.Answer").
		Where("username = ?", username).
		First(&user).Error
	return &user, err
}
