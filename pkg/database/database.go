package database

import (
	"fmt"
	"log"

	"quizz_backend/internal/config"
	"quizz_backend/internal/model"
	"quizz_backend/pkg/security"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := Seed(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Quizz{},
		&model.Question{},
		&model.Answer{},
		&model.QuizzSession{},
		&model.QuizzSessionAnswer{},
	)
}

// Seed inserts the default fixtures when the tables are empty, so a fresh
// instance has content to log in against and quiz.
func Seed(db *gorm.DB) error {
	var count int64
	db.Model(&model.Quizz{}).Count(&count)
	if count == 0 {
		quizzes := []*model.Quizz{
			{Name: "Guerre de trente ans", Difficulty: 3},
			{Name: "Révolution industrielle", Difficulty: 2},
			{Name: "Population et territoires", Difficulty: 4},
		}
		for _, q := range quizzes {
			if err := db.Create(q).Error; err != nil {
				return err
			}
		}

		question := &model.Question{Content: "Début de la guerre ?", QuizzID: quizzes[0].ID}
		if err := db.Create(question).Error; err != nil {
			return err
		}

		answers := []model.Answer{
			{Content: "1338", Valid: true, QuestionID: question.ID},
			{Content: "2004", QuestionID: question.ID},
			{Content: "1348", QuestionID: question.ID},
			{Content: "1326", QuestionID: question.ID},
		}
		if err := db.Create(&answers).Error; err != nil {
			return err
		}
	}

	var userCount int64
	db.Model(&model.User{}).Count(&userCount)
	if userCount == 0 {
		hashed, err := security.HashPassword("changeme")
		if err != nil {
			return err
		}
		admin := &model.User{
			Username:       "admin",
			Email:          "admin@example.com",
			FullName:       "Administrator",
			HashedPassword: hashed,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
	}

	return nil
}
