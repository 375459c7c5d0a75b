package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

func TestJourneyService_Fields(t *testing.T) {
	svc := NewJourneyService()

	fields, err := svc.Fields(domain.JourneyStart)
	require.NoError(t, err)
	assert.Equal(t, domain.JourneyFields(domain.JourneyStart), fields)

	_, err = svc.Fields("grow")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJourneyService_GenerateResult_RequiresAnswers(t *testing.T) {
	svc := NewJourneyService()

	_, err := svc.GenerateResult(domain.JourneyStart, domain.JourneyAnswers{"unknown": "x", "businessName": "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.GenerateResult("grow", domain.JourneyAnswers{"businessName": "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJourneyService_GenerateResult_EveryJourney(t *testing.T) {
	svc := NewJourneyService()
	answers := map[domain.JourneyType]domain.JourneyAnswers{
		domain.JourneyExplore:   {"businessIdea": "Mobile coffee cart", "experience": "none", "budget": "low"},
		domain.JourneyStart:     {"businessName": "Corner Bakery", "challenge": "finding funding"},
		domain.JourneyIntegrate: {"currentTools": "spreadsheets", "teamSize": "4", "painPoints": "manual invoicing"},
	}

	for _, jt := range domain.JourneyTypes() {
		t.Run(jt.String(), func(t *testing.T) {
			result, err := svc.GenerateResult(jt, answers[jt])
			require.NoError(t, err)
			assert.NotEmpty(t, result.KeyTakeaways)
			assert.NotEmpty(t, result.NextSteps)
			assert.NotEmpty(t, result.Resources)
		})
	}
}

func TestJourneyService_GenerateResult_Deterministic(t *testing.T) {
	svc := NewJourneyService()
	answers := domain.JourneyAnswers{"businessName": "Acme", "location": "Ohio", "challenge": "customers"}

	first, err := svc.GenerateResult(domain.JourneyStart, answers)
	require.NoError(t, err)
	second, err := svc.GenerateResult(domain.JourneyStart, answers)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestJourneyService_StartTailoring(t *testing.T) {
	svc := NewJourneyService()

	funding, err := svc.GenerateResult(domain.JourneyStart, domain.JourneyAnswers{
		"businessName": "Corner Bakery",
		"location":     "Austin",
		"challenge":    "Raising capital",
	})
	require.NoError(t, err)

	assert.Contains(t, funding.KeyTakeaways[1], "Austin")
	assert.Contains(t, funding.NextSteps, "Register Corner Bakery and apply for an EIN.")
	var urls []string
	for _, r := range funding.Resources {
		urls = append(urls, r.URL)
	}
	assert.Contains(t, urls, resourceSBAFunding.URL)
	assert.Contains(t, urls, resourceEIN.URL)

	marketing, err := svc.GenerateResult(domain.JourneyStart, domain.JourneyAnswers{"challenge": "getting customers"})
	require.NoError(t, err)
	assert.Contains(t, marketing.NextSteps, "Define your ideal customer and where they spend time.")
	assert.Contains(t, marketing.NextSteps, "Register your business and apply for an EIN.")
}

func TestJourneyService_ExploreMentor(t *testing.T) {
	result, err := NewJourneyService().GenerateResult(domain.JourneyExplore, domain.JourneyAnswers{"experience": "Beginner"})
	require.NoError(t, err)

	assert.Contains(t, result.NextSteps, "Book a free session with a SCORE mentor.")
	assert.Equal(t, resourceSCORE, result.Resources[0])
}

func TestJourneyService_IntegrateTeamSize(t *testing.T) {
	svc := NewJourneyService()

	large, err := svc.GenerateResult(domain.JourneyIntegrate, domain.JourneyAnswers{"teamSize": "25"})
	require.NoError(t, err)
	assert.Contains(t, large.NextSteps, "Name an owner for each core system.")

	small, err := svc.GenerateResult(domain.JourneyIntegrate, domain.JourneyAnswers{"teamSize": "3"})
	require.NoError(t, err)
	assert.NotContains(t, small.NextSteps, "Name an owner for each core system.")
}

func TestMentions(t *testing.T) {
	assert.True(t, mentions("Finding FUNDING", "fund"))
	assert.False(t, mentions("", "fund"))
	assert.False(t, mentions("hiring", "fund", "loan"))
}

func TestResultBuilder_DeduplicatesResources(t *testing.T) {
	b := &resultBuilder{}
	b.resource(resourceSBA)
	b.resource(resourceSBA)

	assert.Len(t, b.result().Resources, 1)
}
