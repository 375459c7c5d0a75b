package driving

import "github.com/squareone-journey/squareone-cli/internal/core/domain"

// JourneyService collects journey answers and generates results.
type JourneyService interface {
	// Fields returns the labelled answer fields of a journey.
	Fields(journey domain.JourneyType) ([]domain.JourneyField, error)

	// GenerateResult produces guidance from a journey's answers.
	GenerateResult(journey domain.JourneyType, answers domain.JourneyAnswers) (*domain.JourneyResult, error)
}
