package model

// Public shapes are what leaves the core. They nest strictly downward
// (Quizz → Question → Answer, Session → Answer) so the entity graph's
// back-references can never produce a cycle, and they carry no credential
// fields. Conversion is pure: relationships must already be loaded, nothing
// here touches the database.

type AnswerPublic struct {
	ID         uint   `json:"id"`
	Content    string `json:"content"`
	Valid      bool   `json:"valid"`
	QuestionID uint   `json:"questionId"`
}

type QuestionPublic struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
	QuizzID uint   `json:"quizzId"`
}

type QuestionPublicWithAnswers struct {
	QuestionPublic
	Answers []AnswerPublic `json:"answers"`
}

type QuizzPublic struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
	Category   string `json:"category"`
}

type QuizzPublicWithQuestions struct {
	QuizzPublic
	Questions []QuestionPublicWithAnswers `json:"questions"`
}

type QuizzSessionPublic struct {
	ID      uint           `json:"id"`
	UserID  uint           `json:"userId"`
	QuizzID uint           `json:"quizzId"`
	Score   int            `json:"score"`
	Quizz   QuizzPublic    `json:"quizz"`
	Answers []AnswerPublic `json:"answers"`
}

type UserPublic struct {
	ID            uint                 `json:"id"`
	Username      string               `json:"username"`
	Email         string               `json:"email"`
	FullName      string               `json:"fullName"`
	Disabled      bool                 `json:"disabled"`
	QuizzSessions []QuizzSessionPublic `json:"quizzSessions"`
}

func (a *Answer) ToPublic() AnswerPublic {
	return AnswerPublic{
		ID:         a.ID,
		Content:    a.Content,
		Valid:      a.Valid,
		QuestionID: a.QuestionID,
	}
}

func (q *Question) ToPublic() QuestionPublic {
	return QuestionPublic{
		ID:      q.ID,
		Content: q.Content,
		QuizzID: q.QuizzID,
	}
}

func (q *Question) ToPublicWithAnswers() QuestionPublicWithAnswers {
	answers := make([]AnswerPublic, 0, len(q.Answers))
	for i := range q.Answers {
		answers = append(answers, q.Answers[i].ToPublic())
	}
	return QuestionPublicWithAnswers{
		QuestionPublic: q.ToPublic(),
		Answers:        answers,
	}
}

func (q *Quizz) ToPublic() QuizzPublic {
	return QuizzPublic{
		ID:         q.ID,
		Name:       q.Name,
		Difficulty: q.Difficulty,
		Category:   q.Category,
	}
}

func (q *Quizz) ToPublicWithQuestions() QuizzPublicWithQuestions {
	questions := make([]QuestionPublicWithAnswers, 0, len(q.Questions))
	for i := range q.Questions {
		questions = append(questions, q.Questions[i].ToPublicWithAnswers())
	}
	return QuizzPublicWithQuestions{
		QuizzPublic: q.ToPublic(),
		Questions:   questions,
	}
}

func (s *QuizzSession) ToPublic() QuizzSessionPublic {
	out := QuizzSessionPublic{
		ID:      s.ID,
		UserID:  s.UserID,
		QuizzID: s.QuizzID,
		Score:   s.Score,
		Answers: make([]AnswerPublic, 0, len(s.Answers)),
	}
	if s.Quizz != nil {
		out.Quizz = s.Quizz.ToPublic()
	}
	for i := range s.Answers {
		if s.Answers[i].Answer != nil {
			out.Answers = append(out.Answers, s.Answers[i].Answer.ToPublic())
		}
	}
	return out
}

func (u *User) ToPublic() UserPublic {
	sessions := make([]QuizzSessionPublic, 0, len(u.QuizzSessions))
	for i := range u.QuizzSessions {
		sessions = append(sessions, u.QuizzSessions[i].ToPublic())
	}
	return UserPublic{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FullName:      u.FullName,
		Disabled:      u.Disabled,
		QuizzSessions: sessions,
	}
}
