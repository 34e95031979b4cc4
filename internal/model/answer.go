package model

// Answer marks at most its own correctness; nothing enforces that a question
// has exactly one valid answer. Zero or several are legal.
type Answer struct {
	BaseModel
	Content    string `gorm:"type:text;not null" json:"content"`
	Valid      bool   `gorm:"default:false" json:"valid"`
	QuestionID uint   `gorm:"index" json:"questionId"`
}

func (Answer) TableName() string {
	return "answers"
}
