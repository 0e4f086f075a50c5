package journal

import (
	"math/rand"
	"testing"

	"github.com/ayselgur/cradle/internal/errors"
)

// fullAnswers returns one answer per bank question with the given score.
func fullAnswers(score int) []PanasAnswer {
	answers := make([]PanasAnswer, 0, len(PanasQuestions))
	for _, q := range PanasQuestions {
		answers = append(answers, PanasAnswer{QuestionID: q.ID, Score: score})
	}
	return answers
}

func TestScore_BankIsBalanced(t *testing.T) {
	positives, negatives := 0, 0
	for _, q := range PanasQuestions {
		switch q.Category {
		case PanasPositive:
			positives++
		case PanasNegative:
			negatives++
		default:
			t.Errorf("question %s has unknown category %q", q.ID, q.Category)
		}
	}
	if positives != 10 || negatives != 10 {
		t.Errorf("bank split = %d positive / %d negative, want 10/10", positives, negatives)
	}
}

func TestScore_AllThrees(t *testing.T) {
	positive, negative, err := Score(fullAnswers(3))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if positive != 30 {
		t.Errorf("positive = %d, want 30", positive)
	}
	if negative != 30 {
		t.Errorf("negative = %d, want 30", negative)
	}
}

func TestScore_PermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	answers := make([]PanasAnswer, 0, len(PanasQuestions))
	total := 0
	for _, q := range PanasQuestions {
		score := rng.Intn(6)
		total += score
		answers = append(answers, PanasAnswer{QuestionID: q.ID, Score: score})
	}

	wantPos, wantNeg, err := Score(answers)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if wantPos+wantNeg != total {
		t.Errorf("positive+negative = %d, want total %d", wantPos+wantNeg, total)
	}

	for i := 0; i < 10; i++ {
		shuffled := make([]PanasAnswer, len(answers))
		copy(shuffled, answers)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		positive, negative, err := Score(shuffled)
		if err != nil {
			t.Fatalf("Score on shuffle %d failed: %v", i, err)
		}
		if positive != wantPos || negative != wantNeg {
			t.Errorf("shuffle %d: (%d, %d), want (%d, %d)", i, positive, negative, wantPos, wantNeg)
		}
	}
}

func TestScore_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		answers []PanasAnswer
	}{
		{
			name:    "too few",
			answers: fullAnswers(2)[:19],
		},
		{
			name:    "too many",
			answers: append(fullAnswers(2), PanasAnswer{QuestionID: "q1", Score: 2}),
		},
		{
			name: "duplicate question",
			answers: func() []PanasAnswer {
				a := fullAnswers(2)
				a[5].QuestionID = "q1"
				return a
			}(),
		},
		{
			name: "unknown question",
			answers: func() []PanasAnswer {
				a := fullAnswers(2)
				a[0].QuestionID = "q99"
				return a
			}(),
		},
		{
			name: "score below range",
			answers: func() []PanasAnswer {
				a := fullAnswers(2)
				a[3].Score = -1
				return a
			}(),
		},
		{
			name: "score above range",
			answers: func() []PanasAnswer {
				a := fullAnswers(2)
				a[3].Score = 6
				return a
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Score(tt.answers)
			if !errors.Is(err, errors.ErrInvalidArgument) {
				t.Errorf("error = %v, want INVALID_ARGUMENT", err)
			}
		})
	}
}
