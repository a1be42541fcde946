package session

import (
	"strconv"

	"github.com/abhisek/kuku/internal/chant"
	"github.com/abhisek/kuku/internal/drill"
)

// ReadingAnnotation pairs visible text with the reading shown above it.
type ReadingAnnotation struct {
	Text    string
	Reading string
}

// QuestionDisplay is everything a view needs to render one question.
type QuestionDisplay struct {
	Left          ReadingAnnotation // multiplicand with its chant reading
	Right         ReadingAnnotation // multiplier with its chant reading
	NeedsParticle bool              // render が after the factors
	Answer        ReadingAnnotation // product with its everyday reading
	ColorKey      drill.ColorKey
}

// NewQuestionDisplay derives the display data for q.
func NewQuestionDisplay(q drill.Question) QuestionDisplay {
	a, b := q.Multiplicand, q.Multiplier
	return QuestionDisplay{
		Left:          ReadingAnnotation{Text: strconv.Itoa(a), Reading: chant.LeftReading(a, b)},
		Right:         ReadingAnnotation{Text: strconv.Itoa(b), Reading: chant.RightReading(a, b)},
		NeedsParticle: chant.NeedsParticle(a, b),
		Answer:        ReadingAnnotation{Text: strconv.Itoa(q.Product()), Reading: chant.Number(q.Product())},
		ColorKey:      q.ColorKey(),
	}
}

// Display derives the display data for the current question.
// It is recomputed on every call. Panics when exhausted.
func (s *Session) Display() QuestionDisplay {
	return NewQuestionDisplay(s.Current())
}
