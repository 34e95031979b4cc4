package model

// Quizz is the root of the quiz aggregate. The parent owns the question
// collection; each Question carries the back-reference as a bare foreign key.
type Quizz struct {
	BaseModel
	Name       string     `gorm:"size:255;not null" json:"name"`
	Difficulty int        `gorm:"default:1" json:"difficulty"`
	Category   string     `gorm:"size:100" json:"category"`
	Questions  []Question `gorm:"foreignKey:QuizzID" json:"questions"`
}

func (Quizz) TableName() string {
	return "quizzes"
}
