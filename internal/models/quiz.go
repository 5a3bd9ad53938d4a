package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question types. Positional option indices are the identifiers saved
// answers refer to, so questions and options must never be reordered
// after the quiz is created.
const (
	QuestionTypeText     = "text"
	QuestionTypeRadio    = "radio"
	QuestionTypeCheckbox = "checkbox"
)

// Difficulty values. Empty means the quiz does not display a difficulty.
const (
	DifficultyUnset  = ""
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Option struct {
	Text  string `bson:"text" json:"text"`
	Score int    `bson:"score" json:"score"`
}

type Question struct {
	Type          string   `bson:"type" json:"type"`
	Text          string   `bson:"text" json:"text"`
	Options       []Option `bson:"options,omitempty" json:"options,omitempty"`
	CorrectAnswer string   `bson:"correctAnswer,omitempty" json:"correctAnswer,omitempty"`
	Points        int      `bson:"points,omitempty" json:"points,omitempty"`
}

type Quiz struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	IsPrivate      bool               `bson:"isPrivate" json:"isPrivate"`
	Password       string             `bson:"password,omitempty" json:"password,omitempty"`
	ShowName       bool               `bson:"showName" json:"showName"`
	Difficulty     string             `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	ShowInRankings bool               `bson:"showInRankings" json:"showInRankings"`
	OwnerID        string             `bson:"ownerId" json:"ownerId"`
	Questions      []Question         `bson:"questions" json:"questions"`
}

// Validate checks a quiz before it is persisted. A quiz is never edited
// after creation, so creation is the only point where these rules apply.
func (q *Quiz) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if q.IsPrivate && q.Password == "" {
		return fmt.Errorf("%w: password is required for a private quiz", ErrValidation)
	}
	switch q.Difficulty {
	case DifficultyUnset, DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrValidation, q.Difficulty)
	}
	for i, question := range q.Questions {
		if strings.TrimSpace(question.Text) == "" {
			return fmt.Errorf("%w: question %d has no prompt", ErrValidation, i)
		}
		switch question.Type {
		case QuestionTypeText:
			if question.CorrectAnswer == "" {
				return fmt.Errorf("%w: question %d has no correct answer", ErrValidation, i)
			}
		case QuestionTypeRadio, QuestionTypeCheckbox:
			if len(question.Options) == 0 {
				return fmt.Errorf("%w: question %d has no options", ErrValidation, i)
			}
		default:
			return fmt.Errorf("%w: question %d has unknown type %q", ErrValidation, i, question.Type)
		}
	}
	return nil
}
