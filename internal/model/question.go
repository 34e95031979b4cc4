package model

// QuizzID is zero only transiently, before the creation flow attaches the
// question to its quiz; a question is never persisted without it resolved.
type Question struct {
	BaseModel
	Content string   `gorm:"type:text;not null" json:"content"`
	QuizzID uint     `gorm:"index" json:"quizzId"`
	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers"`
}

func (Question) TableName() string {
	return "questions"
}
