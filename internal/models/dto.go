package models

// SubmittedAnswer carries one answer from the client. The field that is set
// must match the question type: Answer for text, OptionIndex for radio,
// OptionIndices for checkbox.
type SubmittedAnswer struct {
	QuestionIndex int     `json:"questionIndex"`
	Answer        *string `json:"answer,omitempty"`
	OptionIndex   *int    `json:"optionIndex,omitempty"`
	OptionIndices []int   `json:"optionIndices,omitempty"`
}

// SubmitRequest is the body of a quiz submission. Password is only consulted
// for private quizzes.
type SubmitRequest struct {
	Password string            `json:"password,omitempty"`
	Answers  []SubmittedAnswer `json:"answers"`
}

type SubmitResponse struct {
	QuizID   string `json:"quizId"`
	Score    int    `json:"score"`
	MaxScore int    `json:"maxScore"`
}

// QuizSummary is the listing view of a quiz. It never carries the password
// or the questions, and Score is only present when the caller has answered.
type QuizSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	IsPrivate  bool   `json:"isPrivate"`
	Difficulty string `json:"difficulty,omitempty"`
	OwnerID    string `json:"ownerId"`
	Answered   bool   `json:"answered"`
	Score      *int   `json:"score,omitempty"`
}

// TakeOption hides option scores from quiz takers.
type TakeOption struct {
	Text string `json:"text"`
}

// TakeQuestion hides correct answers and points from quiz takers.
type TakeQuestion struct {
	Type    string       `json:"type"`
	Text    string       `json:"text"`
	Options []TakeOption `json:"options,omitempty"`
}

// TakeQuizView is what a taker sees after passing the access gate.
type TakeQuizView struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Difficulty  string         `json:"difficulty,omitempty"`
	CreatorName string         `json:"creatorName,omitempty"`
	Questions   []TakeQuestion `json:"questions"`
}

// RankedQuiz is a rankings-eligible quiz with its maximum attainable score.
type RankedQuiz struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	MaxScore int    `json:"maxScore"`
}

// RankingEntry is one row of a quiz's score board.
type RankingEntry struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Score       int    `json:"score"`
}

// QuizRankings is the full board for one quiz.
type QuizRankings struct {
	QuizID   string         `json:"quizId"`
	Title    string         `json:"title"`
	MaxScore int            `json:"maxScore"`
	Entries  []RankingEntry `json:"entries"`
}
