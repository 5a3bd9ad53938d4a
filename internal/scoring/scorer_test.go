package scoring

import (
	"reflect"
	"testing"

	"quizapp-service/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestMaxScore(t *testing.T) {
	testCases := []struct {
		name      string
		questions []models.Question
		expected  int
	}{
		{
			name: "text questions sum their points",
			questions: []models.Question{
				{Type: models.QuestionTypeText, Points: 5},
				{Type: models.QuestionTypeText, Points: 3},
			},
			expected: 8,
		},
		{
			name: "text question without points contributes zero",
			questions: []models.Question{
				{Type: models.QuestionTypeText},
			},
			expected: 0,
		},
		{
			name: "radio uses best option",
			questions: []models.Question{
				{Type: models.QuestionTypeRadio, Options: []models.Option{{Text: "Paris", Score: 10}, {Text: "Lyon", Score: 0}}},
			},
			expected: 10,
		},
		{
			name: "checkbox uses best single option, not the sum",
			questions: []models.Question{
				{Type: models.QuestionTypeCheckbox, Options: []models.Option{{Score: 3}, {Score: 5}, {Score: 2}}},
			},
			expected: 5,
		},
		{
			name: "empty options contribute zero",
			questions: []models.Question{
				{Type: models.QuestionTypeRadio},
			},
			expected: 0,
		},
		{
			name: "negative option scores propagate",
			questions: []models.Question{
				{Type: models.QuestionTypeRadio, Options: []models.Option{{Score: -5}, {Score: -3}}},
			},
			expected: -3,
		},
		{
			name: "mixed question types",
			questions: []models.Question{
				{Type: models.QuestionTypeText, Points: 5},
				{Type: models.QuestionTypeRadio, Options: []models.Option{{Score: 10}, {Score: 0}}},
				{Type: models.QuestionTypeCheckbox, Options: []models.Option{{Score: 3}, {Score: 5}}},
			},
			expected: 20,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MaxScore(tc.questions); got != tc.expected {
				t.Errorf("MaxScore = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestScoreTextQuestions(t *testing.T) {
	quiz := &models.Quiz{
		Questions: []models.Question{
			{Type: models.QuestionTypeText, CorrectAnswer: "Paris", Points: 5},
		},
	}

	testCases := []struct {
		name          string
		answer        string
		expectedScore int
	}{
		{"exact match", "Paris", 5},
		{"case insensitive", "paris", 5},
		{"surrounding whitespace ignored", "  paris  ", 5},
		{"wrong answer scores zero", "Lyon", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			submission := Submission{0: {QuestionIndex: 0, Answer: strPtr(tc.answer)}}
			score, entries := Score(quiz, submission)
			if score != tc.expectedScore {
				t.Errorf("score = %d, want %d", score, tc.expectedScore)
			}
			// Wrong answers are still recorded, just unscored.
			if len(entries) != 1 {
				t.Fatalf("expected 1 recorded entry, got %d", len(entries))
			}
			if entries[0].Answer == nil || *entries[0].Answer != tc.answer {
				t.Errorf("recorded answer = %v, want %q", entries[0].Answer, tc.answer)
			}
		})
	}
}

func TestScoreRadioQuestion(t *testing.T) {
	quiz := &models.Quiz{
		Questions: []models.Question{
			{Type: models.QuestionTypeRadio, Options: []models.Option{{Text: "Paris", Score: 10}, {Text: "Lyon", Score: 0}}},
		},
	}

	score, entries := Score(quiz, Submission{0: {QuestionIndex: 0, OptionIndex: intPtr(0)}})
	if score != 10 {
		t.Errorf("score = %d, want 10", score)
	}
	if len(entries) != 1 || entries[0].OptionIndex == nil || *entries[0].OptionIndex != 0 {
		t.Errorf("unexpected entries: %+v", entries)
	}
	if entries[0].QuestionIndex != 0 {
		t.Errorf("questionIndex = %d, want 0", entries[0].QuestionIndex)
	}
}

func TestScoreCheckboxSumsSelectedOptions(t *testing.T) {
	quiz := &models.Quiz{
		Questions: []models.Question{
			{Type: models.QuestionTypeCheckbox, Options: []models.Option{{Score: 3}, {Score: 5}, {Score: 2}}},
		},
	}

	score, entries := Score(quiz, Submission{0: {QuestionIndex: 0, OptionIndices: []int{0, 2}}})
	if score != 5 {
		t.Errorf("score = %d, want 5", score)
	}
	if len(entries) != 1 || !reflect.DeepEqual(entries[0].OptionIndices, []int{0, 2}) {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestScoreCheckboxTreatsSelectionAsSet(t *testing.T) {
	quiz := &models.Quiz{
		Questions: []models.Question{
			{Type: models.QuestionTypeCheckbox, Options: []models.Option{{Score: 3}, {Score: 5}, {Score: 2}}},
		},
	}

	// Repeating an index must not score it again, so the total can never
	// climb past the question set's maximum.
	score, entries := Score(quiz, Submission{0: {QuestionIndex: 0, OptionIndices: []int{1, 1, 1}}})
	if score != 5 {
		t.Errorf("score = %d, want 5", score)
	}
	if max := MaxScore(quiz.Questions); score > max {
		t.Errorf("score %d exceeds maximum %d", score, max)
	}
	if len(entries) != 1 || !reflect.DeepEqual(entries[0].OptionIndices, []int{1}) {
		t.Errorf("recorded indices = %+v, want the deduplicated set [1]", entries)
	}

	// Order of first occurrence survives deduplication.
	_, entries = Score(quiz, Submission{0: {QuestionIndex: 0, OptionIndices: []int{2, 0, 2, 0}}})
	if !reflect.DeepEqual(entries[0].OptionIndices, []int{2, 0}) {
		t.Errorf("recorded indices = %+v, want [2 0]", entries[0].OptionIndices)
	}
}

func TestScoreSkipsUnansweredQuestions(t *testing.T) {
	quiz := &models.Quiz{
		Questions: []models.Question{
			{Type: models.QuestionTypeText, CorrectAnswer: "a", Points: 1},
			{Type: models.QuestionTypeRadio, Options: []models.Option{{Score: 4}}},
			{Type: models.QuestionTypeText, CorrectAnswer: "c", Points: 2},
		},
	}

	score, entries := Score(quiz, Submission{2: {QuestionIndex: 2, Answer: strPtr("c")}})
	if score != 2 {
		t.Errorf("score = %d, want 2", score)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].QuestionIndex != 2 {
		t.Errorf("questionIndex = %d, want 2", entries[0].QuestionIndex)
	}
}

func TestScoreOutOfRangeOptionIndex(t *testing.T) {
	quiz := &models.Quiz{
		Questions: []models.Question{
			{Type: models.QuestionTypeRadio, Options: []models.Option{{Score: 10}}},
		},
	}

	score, entries := Score(quiz, Submission{0: {QuestionIndex: 0, OptionIndex: intPtr(7)}})
	if score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
	if len(entries) != 1 {
		t.Errorf("out-of-range selection should still be recorded, got %d entries", len(entries))
	}
}

func TestReconstructIsInverseOfRecording(t *testing.T) {
	quiz := &models.Quiz{
		Questions: []models.Question{
			{Type: models.QuestionTypeText, CorrectAnswer: "Paris", Points: 5},
			{Type: models.QuestionTypeRadio, Options: []models.Option{{Score: 10}, {Score: 0}}},
			{Type: models.QuestionTypeCheckbox, Options: []models.Option{{Score: 3}, {Score: 5}}},
			{Type: models.QuestionTypeText, CorrectAnswer: "x", Points: 9},
		},
	}
	submission := Submission{
		0: {QuestionIndex: 0, Answer: strPtr(" paris ")},
		1: {QuestionIndex: 1, OptionIndex: intPtr(0)},
		2: {QuestionIndex: 2, OptionIndices: []int{0, 1}},
	}

	score, entries := Score(quiz, submission)
	if score != 5+10+8 {
		t.Fatalf("score = %d, want 23", score)
	}

	rebuilt := Reconstruct(entries)
	rescore, _ := Score(quiz, rebuilt)
	if rescore != score {
		t.Errorf("re-scored reconstruction = %d, want %d", rescore, score)
	}
	if len(rebuilt) != len(submission) {
		t.Errorf("reconstructed %d answers, want %d", len(rebuilt), len(submission))
	}
	if got := rebuilt[0].Answer; got == nil || *got != " paris " {
		t.Errorf("reconstructed text answer = %v, want raw stored value", got)
	}
}

func TestToSubmissionLastAnswerWins(t *testing.T) {
	answers := []models.SubmittedAnswer{
		{QuestionIndex: 0, OptionIndex: intPtr(0)},
		{QuestionIndex: 0, OptionIndex: intPtr(1)},
	}
	submission := ToSubmission(answers)
	if len(submission) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(submission))
	}
	if *submission[0].OptionIndex != 1 {
		t.Errorf("optionIndex = %d, want 1", *submission[0].OptionIndex)
	}
}
