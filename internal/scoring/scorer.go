// Package scoring holds the pure quiz-taking rules: maximum attainable
// score, submission scoring, stored-answer reconstruction and the access
// gate. Nothing here touches storage; callers fetch the quiz and persist
// the result.
package scoring

import (
	"strings"

	"quizapp-service/internal/models"
)

// Submission maps a question's positional index to the answer the taker
// chose for it. Questions absent from the map were left unanswered.
type Submission map[int]models.SubmittedAnswer

// MaxScore computes the maximum attainable score of a question set: the
// points of each text question plus, for each select question, the single
// highest option score. Checkbox questions deliberately use the same
// max-single-option rule as radio ones. Negative values are not clamped.
func MaxScore(questions []models.Question) int {
	total := 0
	for _, q := range questions {
		switch q.Type {
		case models.QuestionTypeText:
			total += q.Points
		case models.QuestionTypeRadio, models.QuestionTypeCheckbox:
			best := 0
			for i, opt := range q.Options {
				if i == 0 || opt.Score > best {
					best = opt.Score
				}
			}
			total += best
		}
	}
	return total
}

// Score walks the quiz's questions in order and totals the submission.
// Text answers match their correct answer case-insensitively with
// surrounding whitespace ignored, and are recorded whether or not they
// scored. Radio answers add the selected option's score; checkbox answers
// add the score of every distinct selected option. A checkbox selection
// is a set: repeated indices count once, and the deduplicated set is what
// gets recorded. An out-of-range option index contributes nothing but is
// still recorded. Unanswered questions are neither scored nor recorded.
func Score(quiz *models.Quiz, submission Submission) (int, []models.AnswerEntry) {
	score := 0
	var entries []models.AnswerEntry

	for index, question := range quiz.Questions {
		answer, ok := submission[index]
		if !ok {
			continue
		}
		switch question.Type {
		case models.QuestionTypeText:
			if answer.Answer == nil {
				continue
			}
			if textMatches(*answer.Answer, question.CorrectAnswer) {
				score += question.Points
			}
			entries = append(entries, models.AnswerEntry{
				QuestionIndex: index,
				Answer:        answer.Answer,
			})
		case models.QuestionTypeRadio:
			if answer.OptionIndex == nil {
				continue
			}
			score += optionScore(question.Options, *answer.OptionIndex)
			entries = append(entries, models.AnswerEntry{
				QuestionIndex: index,
				OptionIndex:   answer.OptionIndex,
			})
		case models.QuestionTypeCheckbox:
			if len(answer.OptionIndices) == 0 {
				continue
			}
			selected := dedupeIndices(answer.OptionIndices)
			for _, idx := range selected {
				score += optionScore(question.Options, idx)
			}
			entries = append(entries, models.AnswerEntry{
				QuestionIndex: index,
				OptionIndices: selected,
			})
		}
	}
	return score, entries
}

// Reconstruct rebuilds the submission that produced a stored response. It
// is the exact inverse of the recording done by Score, so feeding the
// result back through Score against the same quiz reproduces the stored
// score.
func Reconstruct(entries []models.AnswerEntry) Submission {
	submission := make(Submission, len(entries))
	for _, entry := range entries {
		switch {
		case entry.OptionIndex != nil:
			submission[entry.QuestionIndex] = models.SubmittedAnswer{
				QuestionIndex: entry.QuestionIndex,
				OptionIndex:   entry.OptionIndex,
			}
		case entry.OptionIndices != nil:
			submission[entry.QuestionIndex] = models.SubmittedAnswer{
				QuestionIndex: entry.QuestionIndex,
				OptionIndices: entry.OptionIndices,
			}
		default:
			submission[entry.QuestionIndex] = models.SubmittedAnswer{
				QuestionIndex: entry.QuestionIndex,
				Answer:        entry.Answer,
			}
		}
	}
	return submission
}

// ToSubmission indexes client answers by question index. Later duplicates
// for the same question win, mirroring how repeated form input overwrites
// earlier values.
func ToSubmission(answers []models.SubmittedAnswer) Submission {
	submission := make(Submission, len(answers))
	for _, a := range answers {
		submission[a.QuestionIndex] = a
	}
	return submission
}

func textMatches(given, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(correct))
}

// dedupeIndices keeps the first occurrence of each index, so a checkbox
// selection behaves as a set regardless of how the client encoded it.
func dedupeIndices(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	result := make([]int, 0, len(indices))
	for _, idx := range indices {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		result = append(result, idx)
	}
	return result
}

func optionScore(options []models.Option, index int) int {
	if index < 0 || index >= len(options) {
		return 0
	}
	return options[index].Score
}
