package service

import (
	"context"
	"log"
	"time"

	"quizapp-service/internal/event"
	"quizapp-service/internal/models"
	"quizapp-service/internal/scoring"
)

// QuizGetter abstracts quiz lookup so the submission flow can be tested
// without a live document store.
type QuizGetter interface {
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
}

// AnswerStore abstracts response persistence. CreateIfAbsent must be
// atomic on the (userId, quizId) composite key: a second create for the
// same pair returns models.ErrAlreadyAnswered and leaves the stored
// record untouched.
type AnswerStore interface {
	CreateIfAbsent(ctx context.Context, answer *models.UserAnswer) error
	FindByUserAndQuiz(ctx context.Context, userID, quizID string) (*models.UserAnswer, error)
	FindByUser(ctx context.Context, userID string) ([]models.UserAnswer, error)
}

type AnswerService struct {
	quizzes   QuizGetter
	answers   AnswerStore
	publisher *event.EventPublisher
	now       func() time.Time
}

func NewAnswerService(quizzes QuizGetter, answers AnswerStore, publisher *event.EventPublisher) *AnswerService {
	return &AnswerService{quizzes: quizzes, answers: answers, publisher: publisher, now: time.Now}
}

// Submit scores a submission and persists it as the user's one and only
// response to the quiz. The access gate runs even at submission time so a
// taker cannot bypass the password by posting directly.
func (s *AnswerService) Submit(ctx context.Context, userID, quizID string, req models.SubmitRequest) (*models.SubmitResponse, error) {
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if err := scoring.CanAccess(quiz, userID, req.Password); err != nil {
		return nil, err
	}

	score, entries := scoring.Score(quiz, scoring.ToSubmission(req.Answers))
	answer := &models.UserAnswer{
		UserID:      userID,
		QuizID:      quizID,
		Answers:     entries,
		Score:       score,
		SubmittedAt: s.now(),
	}
	if err := s.answers.CreateIfAbsent(ctx, answer); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(event.AnswerSubmitted, map[string]any{
		"quizId": quizID,
		"userId": userID,
		"score":  score,
	}); err != nil {
		log.Printf("Failed to publish %s: %v", event.AnswerSubmitted, err)
	}

	return &models.SubmitResponse{
		QuizID:   quizID,
		Score:    score,
		MaxScore: scoring.MaxScore(quiz.Questions),
	}, nil
}

// StoredAnswer returns the user's persisted response together with the
// reconstructed per-question selections for read-only display.
func (s *AnswerService) StoredAnswer(ctx context.Context, userID, quizID string) (*models.UserAnswer, scoring.Submission, error) {
	answer, err := s.answers.FindByUserAndQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, nil, err
	}
	return answer, scoring.Reconstruct(answer.Answers), nil
}

// ListForUser returns every response the user has submitted.
func (s *AnswerService) ListForUser(ctx context.Context, userID string) ([]models.UserAnswer, error) {
	return s.answers.FindByUser(ctx, userID)
}
