package models

import (
	"errors"
	"testing"
)

func validQuiz() *Quiz {
	return &Quiz{
		Title: "Capitals",
		Questions: []Question{
			{Type: QuestionTypeText, Text: "Capital of France?", CorrectAnswer: "Paris", Points: 5},
			{Type: QuestionTypeRadio, Text: "Pick one", Options: []Option{{Text: "A", Score: 1}}},
		},
	}
}

func TestQuizValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(q *Quiz)
		wantErr bool
	}{
		{"valid quiz", func(q *Quiz) {}, false},
		{"missing title", func(q *Quiz) { q.Title = "  " }, true},
		{"private without password", func(q *Quiz) { q.IsPrivate = true }, true},
		{"private with password", func(q *Quiz) { q.IsPrivate = true; q.Password = "abc" }, false},
		{"unknown difficulty", func(q *Quiz) { q.Difficulty = "impossible" }, true},
		{"known difficulty", func(q *Quiz) { q.Difficulty = DifficultyHard }, false},
		{"unset difficulty", func(q *Quiz) { q.Difficulty = DifficultyUnset }, false},
		{"question without prompt", func(q *Quiz) { q.Questions[0].Text = "" }, true},
		{"text question without correct answer", func(q *Quiz) { q.Questions[0].CorrectAnswer = "" }, true},
		{"select question without options", func(q *Quiz) { q.Questions[1].Options = nil }, true},
		{"unknown question type", func(q *Quiz) { q.Questions[1].Type = "scale" }, true},
		{"no questions at all", func(q *Quiz) { q.Questions = nil }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quiz := validQuiz()
			tc.mutate(quiz)
			err := quiz.Validate()
			if tc.wantErr && !errors.Is(err, ErrValidation) {
				t.Errorf("Validate = %v, want ErrValidation", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate = %v, want nil", err)
			}
		})
	}
}

func TestAnswerKey(t *testing.T) {
	if got := AnswerKey("user-1", "quiz-9"); got != "user-1_quiz-9" {
		t.Errorf("AnswerKey = %q, want %q", got, "user-1_quiz-9")
	}
}
