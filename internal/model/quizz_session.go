package model

// QuizzSession records one attempt of a user at a quiz. Score is a stored
// integer set by the caller; no computation over it is defined.
type QuizzSession struct {
	BaseModel
	UserID  uint                 `gorm:"index" json:"userId"`
	QuizzID uint                 `gorm:"index" json:"quizzId"`
	Score   int                  `gorm:"default:0" json:"score"`
	Quizz   *Quizz               `gorm:"foreignKey:QuizzID" json:"quizz,omitempty"`
	Answers []QuizzSessionAnswer `gorm:"foreignKey:QuizzSessionID" json:"answers"`
}

func (QuizzSession) TableName() string {
	return "quizz_sessions"
}
