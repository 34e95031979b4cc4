package repository

import (
	"quizz_backend/internal/model"

	"gorm.io/gorm"
)

type QuizzRepository struct {
	DB *gorm.DB
}

func NewQuizzRepository(db *gorm.DB) *QuizzRepository {
	return &QuizzRepository{DB: db}
}

func (r *QuizzRepository) Create(quizz *model.Quizz) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(quizz).Error
	})
}

// FindByID loads the full aggregate, questions and answers in creation order.
func (r *QuizzRepository) FindByID(id uint) (*model.Quizz, error) {
	var quizz model.Quizz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id ASC")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		First(&quizz, id).Error
	return &quizz, err
}

func (r *QuizzRepository) FindAll() ([]model.Quizz, error) {
	var quizzes []model.Quizz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id ASC")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		Find(&quizzes).Error
	return quizzes, err
}

// CreateQuestion persists a question already attached to its quiz. The insert
// runs in its own transaction so a question can never be left half-created.
func (r *QuizzRepository) CreateQuestion(question *model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(question).Error
	})
}

func (r *QuizzRepository) FindQuestionByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		First(&question, id).Error
	return &question, err
}

// CreateAnswers inserts a batch as a unit: if any row fails, the transaction
// rolls back and none of the batch is visible.
func (r *QuizzRepository) CreateAnswers(answers []model.Answer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range answers {
			if err := tx.Create(&answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
