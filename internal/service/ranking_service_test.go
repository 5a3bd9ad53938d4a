package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"quizapp-service/internal/models"
)

type fakeQuizLister struct {
	quizzes []models.Quiz
}

func (f *fakeQuizLister) FindRanked(_ context.Context) ([]models.Quiz, error) {
	var ranked []models.Quiz
	for _, quiz := range f.quizzes {
		if quiz.ShowInRankings {
			ranked = append(ranked, quiz)
		}
	}
	return ranked, nil
}

func (f *fakeQuizLister) FindByID(_ context.Context, id string) (*models.Quiz, error) {
	for i := range f.quizzes {
		if f.quizzes[i].ID.Hex() == id {
			return &f.quizzes[i], nil
		}
	}
	return nil, models.ErrQuizNotFound
}

type fakeAnswerLister struct {
	answers []models.UserAnswer
}

func (f *fakeAnswerLister) FindByQuiz(_ context.Context, quizID string) ([]models.UserAnswer, error) {
	var result []models.UserAnswer
	for _, answer := range f.answers {
		if answer.QuizID == quizID {
			result = append(result, answer)
		}
	}
	return result, nil
}

type fakeProfileLister struct {
	users []models.UserProfile
}

func (f *fakeProfileLister) FindAll(_ context.Context) ([]models.UserProfile, error) {
	return f.users, nil
}

func TestRankedQuizzesComputeMaxScore(t *testing.T) {
	ranked := models.Quiz{
		ID:             primitive.NewObjectID(),
		Title:          "Visible",
		ShowInRankings: true,
		Questions: []models.Question{
			{Type: models.QuestionTypeText, Points: 5},
			{Type: models.QuestionTypeCheckbox, Options: []models.Option{{Score: 3}, {Score: 5}, {Score: 2}}},
		},
	}
	hidden := models.Quiz{ID: primitive.NewObjectID(), Title: "Hidden", ShowInRankings: false}

	svc := NewRankingService(
		&fakeQuizLister{quizzes: []models.Quiz{ranked, hidden}},
		&fakeAnswerLister{},
		&fakeProfileLister{},
	)

	quizzes, err := svc.RankedQuizzes(context.Background())
	if err != nil {
		t.Fatalf("RankedQuizzes failed: %v", err)
	}
	if len(quizzes) != 1 {
		t.Fatalf("expected 1 ranked quiz, got %d", len(quizzes))
	}
	if quizzes[0].Title != "Visible" {
		t.Errorf("title = %q, want %q", quizzes[0].Title, "Visible")
	}
	if quizzes[0].MaxScore != 10 {
		t.Errorf("maxScore = %d, want 10", quizzes[0].MaxScore)
	}
}

func TestQuizRankingsBoard(t *testing.T) {
	quizID := primitive.NewObjectID()
	quiz := models.Quiz{
		ID:             quizID,
		Title:          "Capitals",
		ShowInRankings: true,
		Questions: []models.Question{
			{Type: models.QuestionTypeRadio, Options: []models.Option{{Score: 10}, {Score: 0}}},
		},
	}

	svc := NewRankingService(
		&fakeQuizLister{quizzes: []models.Quiz{quiz}},
		&fakeAnswerLister{answers: []models.UserAnswer{
			{QuizID: quizID.Hex(), UserID: "user-a", Score: 4},
			{QuizID: quizID.Hex(), UserID: "user-b", Score: 10},
			{QuizID: "other", UserID: "user-c", Score: 99},
		}},
		&fakeProfileLister{users: []models.UserProfile{
			{ID: "user-a", DisplayName: "Alice"},
		}},
	)

	board, err := svc.QuizRankings(context.Background(), quizID.Hex())
	if err != nil {
		t.Fatalf("QuizRankings failed: %v", err)
	}
	if board.MaxScore != 10 {
		t.Errorf("maxScore = %d, want 10", board.MaxScore)
	}
	if len(board.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(board.Entries))
	}
	// Best score first.
	if board.Entries[0].UserID != "user-b" || board.Entries[0].Score != 10 {
		t.Errorf("top entry = %+v, want user-b with 10", board.Entries[0])
	}
	if board.Entries[0].DisplayName != "Unknown User" {
		t.Errorf("missing profile should display as Unknown User, got %q", board.Entries[0].DisplayName)
	}
	if board.Entries[1].DisplayName != "Alice" {
		t.Errorf("displayName = %q, want Alice", board.Entries[1].DisplayName)
	}
}

func TestQuizRankingsHiddenQuiz(t *testing.T) {
	quiz := models.Quiz{ID: primitive.NewObjectID(), Title: "Hidden", ShowInRankings: false}
	svc := NewRankingService(
		&fakeQuizLister{quizzes: []models.Quiz{quiz}},
		&fakeAnswerLister{},
		&fakeProfileLister{},
	)

	_, err := svc.QuizRankings(context.Background(), quiz.ID.Hex())
	if !errors.Is(err, models.ErrQuizNotFound) {
		t.Fatalf("got %v, want ErrQuizNotFound for a quiz opted out of rankings", err)
	}
}
