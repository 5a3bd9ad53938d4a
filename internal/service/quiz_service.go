package service

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"quizapp-service/internal/event"
	"quizapp-service/internal/models"
	"quizapp-service/internal/scoring"
)

// QuizStore abstracts quiz persistence for the listing and authoring flows.
type QuizStore interface {
	FindAll(ctx context.Context) ([]models.Quiz, error)
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
	Delete(ctx context.Context, id string) error
}

// ScoreLister loads a user's stored responses for the summary view.
type ScoreLister interface {
	FindByUser(ctx context.Context, userID string) ([]models.UserAnswer, error)
}

// ProfileGetter resolves the creator's display name for the take-view.
type ProfileGetter interface {
	FindByID(ctx context.Context, id string) (*models.UserProfile, error)
}

type QuizService struct {
	quizzes   QuizStore
	answers   ScoreLister
	users     ProfileGetter
	publisher *event.EventPublisher
}

func NewQuizService(quizzes QuizStore, answers ScoreLister, users ProfileGetter, publisher *event.EventPublisher) *QuizService {
	return &QuizService{quizzes: quizzes, answers: answers, users: users, publisher: publisher}
}

// ListSummaries returns all quizzes without their questions or passwords.
// For a signed-in caller each summary carries that user's stored score.
func (s *QuizService) ListSummaries(ctx context.Context, userID string) ([]models.QuizSummary, error) {
	quizzes, err := s.quizzes.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	scores := map[string]int{}
	if userID != "" {
		answers, err := s.answers.FindByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, a := range answers {
			scores[a.QuizID] = a.Score
		}
	}

	summaries := make([]models.QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		summary := models.QuizSummary{
			ID:         quiz.ID.Hex(),
			Title:      quiz.Title,
			IsPrivate:  quiz.IsPrivate,
			Difficulty: quiz.Difficulty,
			OwnerID:    quiz.OwnerID,
		}
		if score, ok := scores[summary.ID]; ok {
			summary.Answered = true
			summary.Score = &score
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// TakeView fetches a quiz for taking. The access gate runs first; the view
// never exposes the password, correct answers or option scores.
func (s *QuizService) TakeView(ctx context.Context, quizID, userID, password string) (*models.TakeQuizView, error) {
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if err := scoring.CanAccess(quiz, userID, password); err != nil {
		return nil, err
	}

	view := &models.TakeQuizView{
		ID:         quiz.ID.Hex(),
		Title:      quiz.Title,
		Difficulty: quiz.Difficulty,
	}
	if quiz.ShowName {
		creator, err := s.users.FindByID(ctx, quiz.OwnerID)
		if err == nil && creator.DisplayName != "" {
			view.CreatorName = creator.DisplayName
		} else {
			view.CreatorName = "Anonymous"
		}
	}
	for _, question := range quiz.Questions {
		tq := models.TakeQuestion{Type: question.Type, Text: question.Text}
		for _, option := range question.Options {
			tq.Options = append(tq.Options, models.TakeOption{Text: option.Text})
		}
		view.Questions = append(view.Questions, tq)
	}
	return view, nil
}

// CreateQuiz validates and persists a new quiz owned by userID. The id and
// owner are always store- and session-assigned; client-supplied values are
// discarded. Quizzes have no edit path after this point.
func (s *QuizService) CreateQuiz(ctx context.Context, userID string, quiz *models.Quiz) error {
	quiz.ID = primitive.NilObjectID
	quiz.OwnerID = userID
	if !quiz.IsPrivate {
		quiz.Password = ""
	}
	if err := quiz.Validate(); err != nil {
		return err
	}
	if err := s.quizzes.Create(ctx, quiz); err != nil {
		return err
	}
	if err := s.publisher.Publish(event.QuizCreated, map[string]string{"quizId": quiz.ID.Hex(), "ownerId": userID}); err != nil {
		log.Printf("Failed to publish %s: %v", event.QuizCreated, err)
	}
	return nil
}

// DeleteQuiz removes a quiz; only its owner may do so.
func (s *QuizService) DeleteQuiz(ctx context.Context, userID, quizID string) error {
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		return err
	}
	if quiz.OwnerID != userID {
		return models.ErrNotOwner
	}
	if err := s.quizzes.Delete(ctx, quizID); err != nil {
		return err
	}
	if err := s.publisher.Publish(event.QuizDeleted, map[string]string{"quizId": quizID, "ownerId": userID}); err != nil {
		log.Printf("Failed to publish %s: %v", event.QuizDeleted, err)
	}
	return nil
}
