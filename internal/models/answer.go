package models

import "time"

// AnswerEntry is one persisted per-question answer. Exactly one of Answer,
// OptionIndex or OptionIndices is set, depending on the question type.
// QuestionIndex is positional within the quiz's questions slice.
type AnswerEntry struct {
	QuestionIndex int     `bson:"questionIndex" json:"questionIndex"`
	Answer        *string `bson:"answer,omitempty" json:"answer,omitempty"`
	OptionIndex   *int    `bson:"optionIndex,omitempty" json:"optionIndex,omitempty"`
	OptionIndices []int   `bson:"optionIndices,omitempty" json:"optionIndices,omitempty"`
}

// UserAnswer is a user's one-time response to a quiz. Its document id is the
// composite "{userId}_{quizId}", which is what makes a second submission a
// duplicate-key insert rather than a silent overwrite.
type UserAnswer struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	UserID      string        `bson:"userId" json:"userId"`
	QuizID      string        `bson:"quizId" json:"quizId"`
	Answers     []AnswerEntry `bson:"answers" json:"answers"`
	Score       int           `bson:"score" json:"score"`
	SubmittedAt time.Time     `bson:"submittedAt" json:"submittedAt"`
}

// AnswerKey builds the composite document id for a response.
func AnswerKey(userID, quizID string) string {
	return userID + "_" + quizID
}
