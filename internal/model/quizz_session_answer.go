package model

// QuizzSessionAnswer is the join record for an answer chosen during a session.
// Rows are append-only; answering the same question twice is not prevented.
type QuizzSessionAnswer struct {
	BaseModel
	QuizzSessionID uint    `gorm:"index" json:"quizzSessionId"`
	AnswerID       uint    `gorm:"index" json:"answerId"`
	Answer         *Answer `gorm:"foreignKey:AnswerID" json:"answer,omitempty"`
}

func (QuizzSessionAnswer) TableName() string {
	return "quizz_session_answers"
}
