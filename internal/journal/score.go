package journal

import (
	"fmt"

	"github.com/ayselgur/cradle/internal/errors"
)

// Score sums a complete PANAS answer set into its positive and negative
// subscales. The answers must contain exactly one entry per question in
// the bank, with every score in [0,5]; anything else is an
// INVALID_ARGUMENT failure.
func Score(answers []PanasAnswer) (positive, negative int, err error) {
	if len(answers) != len(PanasQuestions) {
		return 0, 0, errors.NewInvalidArgument(fmt.Sprintf("expected %d answers, got %d", len(PanasQuestions), len(answers)))
	}

	seen := make(map[string]bool, len(answers))
	for _, a := range answers {
		q, ok := QuestionByID(a.QuestionID)
		if !ok {
			return 0, 0, errors.NewInvalidArgument(fmt.Sprintf("unknown question id: %q", a.QuestionID))
		}
		if seen[a.QuestionID] {
			return 0, 0, errors.NewInvalidArgument(fmt.Sprintf("duplicate answer for question %q", a.QuestionID))
		}
		seen[a.QuestionID] = true

		if a.Score < 0 || a.Score > 5 {
			return 0, 0, errors.NewInvalidArgument(fmt.Sprintf("score for %q must be between 0 and 5, got %d", a.QuestionID, a.Score))
		}

		switch q.Category {
		case PanasPositive:
			positive += a.Score
		case PanasNegative:
			negative += a.Score
		}
	}

	return positive, negative, nil
}
