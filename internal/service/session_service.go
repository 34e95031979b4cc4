package service

import (
	"quizz_backend/internal/model"
	"quizz_backend/internal/repository"
	"quizz_backend/pkg/logger"

	"go.uber.org/zap"
)

// SessionService keeps the attempt log. Sessions and their answers are
// append-only; nothing here updates or deletes.
type SessionService struct {
	SessionRepo *repository.SessionRepository
	QuizzRepo   *repository.QuizzRepository
}

func NewSessionService(sessionRepo *repository.SessionRepository, quizzRepo *repository.QuizzRepository) *SessionService {
	return &SessionService{
		SessionRepo: sessionRepo,
		QuizzRepo:   quizzRepo,
	}
}

// StartSession opens an attempt for the user on a quiz. Score is stored as
// given; no rule computes it from the chosen answers.
func (s *SessionService) StartSession(userID, quizzID uint, score int) (*model.QuizzSession, error) {
	if _, err := s.QuizzRepo.FindByID(quizzID); err != nil {
		return nil, notFoundOr(err)
	}

	session := &model.QuizzSession{
		UserID:  userID,
		QuizzID: quizzID,
		Score:   score,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}

	logger.Log.Info("session started",
		zap.Uint("id", session.ID),
		zap.Uint("userId", userID),
		zap.Uint("quizzId", quizzID),
	)

	return s.SessionRepo.FindByIDForUser(session.ID, userID)
}

// RecordAnswer appends a chosen answer to the caller's session. Answering the
// same question twice just adds another row.
func (s *SessionService) RecordAnswer(userID, sessionID, answerID uint) (*model.QuizzSession, error) {
	session, err := s.SessionRepo.FindByIDForUser(sessionID, userID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if _, err := s.SessionRepo.FindAnswerByID(answerID); err != nil {
		return nil, notFoundOr(err)
	}

	row := &model.QuizzSessionAnswer{
		QuizzSessionID: session.ID,
		AnswerID:       answerID,
	}
	if err := s.SessionRepo.CreateAnswer(row); err != nil {
		return nil, err
	}

	return s.SessionRepo.FindByIDForUser(session.ID, userID)
}

func (s *SessionService) GetSession(userID, sessionID uint) (*model.QuizzSession, error) {
	session, err := s.SessionRepo.FindByIDForUser(sessionID, userID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return session, nil
}
