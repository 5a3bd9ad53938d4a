package service

import (
	"context"
	"sort"

	"quizapp-service/internal/models"
	"quizapp-service/internal/scoring"
)

// RankedQuizLister returns only quizzes eligible for rankings.
type RankedQuizLister interface {
	FindRanked(ctx context.Context) ([]models.Quiz, error)
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
}

// AnswerLister loads every response for one quiz.
type AnswerLister interface {
	FindByQuiz(ctx context.Context, quizID string) ([]models.UserAnswer, error)
}

// ProfileLister loads profiles for display-name resolution.
type ProfileLister interface {
	FindAll(ctx context.Context) ([]models.UserProfile, error)
}

type RankingService struct {
	quizzes RankedQuizLister
	answers AnswerLister
	users   ProfileLister
}

func NewRankingService(quizzes RankedQuizLister, answers AnswerLister, users ProfileLister) *RankingService {
	return &RankingService{quizzes: quizzes, answers: answers, users: users}
}

// RankedQuizzes lists every rankings-eligible quiz with its maximum
// attainable score.
func (s *RankingService) RankedQuizzes(ctx context.Context) ([]models.RankedQuiz, error) {
	quizzes, err := s.quizzes.FindRanked(ctx)
	if err != nil {
		return nil, err
	}
	ranked := make([]models.RankedQuiz, 0, len(quizzes))
	for _, quiz := range quizzes {
		ranked = append(ranked, models.RankedQuiz{
			ID:       quiz.ID.Hex(),
			Title:    quiz.Title,
			MaxScore: scoring.MaxScore(quiz.Questions),
		})
	}
	return ranked, nil
}

// QuizRankings builds the score board for one quiz, best score first.
// Scores are the ones persisted at submission time, never recomputed.
func (s *RankingService) QuizRankings(ctx context.Context, quizID string) (*models.QuizRankings, error) {
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !quiz.ShowInRankings {
		return nil, models.ErrQuizNotFound
	}

	answers, err := s.answers.FindByQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		names[user.ID] = user.DisplayName
	}

	board := &models.QuizRankings{
		QuizID:   quizID,
		Title:    quiz.Title,
		MaxScore: scoring.MaxScore(quiz.Questions),
		Entries:  make([]models.RankingEntry, 0, len(answers)),
	}
	for _, answer := range answers {
		name := names[answer.UserID]
		if name == "" {
			name = "Unknown User"
		}
		board.Entries = append(board.Entries, models.RankingEntry{
			UserID:      answer.UserID,
			DisplayName: name,
			Score:       answer.Score,
		})
	}
	sort.SliceStable(board.Entries, func(i, j int) bool {
		return board.Entries[i].Score > board.Entries[j].Score
	})
	return board, nil
}
