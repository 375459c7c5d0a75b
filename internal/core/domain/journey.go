package domain

import "strings"

// JourneyType identifies one of the guided journeys.
type JourneyType string

// Available journey types.
const (
	JourneyExplore   JourneyType = "explore"
	JourneyStart     JourneyType = "start"
	JourneyIntegrate JourneyType = "integrate"
)

// JourneyTypes returns every journey type in display order.
func JourneyTypes() []JourneyType {
	return []JourneyType{JourneyExplore, JourneyStart, JourneyIntegrate}
}

// IsValid returns true if the journey type is recognised.
func (j JourneyType) IsValid() bool {
	switch j {
	case JourneyExplore, JourneyStart, JourneyIntegrate:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (j JourneyType) String() string {
	return string(j)
}

// DisplayName returns a human-readable name, e.g. "Start".
func (j JourneyType) DisplayName() string {
	switch j {
	case JourneyExplore:
		return "Explore"
	case JourneyStart:
		return "Start"
	case JourneyIntegrate:
		return "Integrate"
	case "":
		return "Unassigned"
	default:
		s := string(j)
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// JourneyField is one labelled answer collected by a journey.
type JourneyField struct {
	Key   string
	Label string
}

// JourneyFields returns the fixed, ordered answer fields of a journey type.
// Unknown journey types have no fields.
func JourneyFields(j JourneyType) []JourneyField {
	switch j {
	case JourneyExplore:
		return []JourneyField{
			{Key: "businessIdea", Label: "Business Idea"},
			{Key: "industry", Label: "Industry"},
			{Key: "experience", Label: "Experience Level"},
			{Key: "timeline", Label: "Timeline"},
			{Key: "budget", Label: "Budget"},
		}
	case JourneyStart:
		return []JourneyField{
			{Key: "businessName", Label: "Business Name"},
			{Key: "businessType", Label: "Business Type"},
			{Key: "location", Label: "Location"},
			{Key: "stage", Label: "Current Stage"},
			{Key: "primaryGoal", Label: "Primary Goal"},
			{Key: "challenge", Label: "Biggest Challenge"},
		}
	case JourneyIntegrate:
		return []JourneyField{
			{Key: "businessName", Label: "Business Name"},
			{Key: "currentTools", Label: "Current Tools"},
			{Key: "teamSize", Label: "Team Size"},
			{Key: "painPoints", Label: "Pain Points"},
			{Key: "goals", Label: "Goals"},
		}
	default:
		return nil
	}
}

// JourneyAnswers maps field keys to the user's answers.
type JourneyAnswers map[string]string

// JourneyResult is the guidance generated from a journey's answers.
type JourneyResult struct {
	KeyTakeaways []string
	NextSteps    []string
	Resources    []ResourceLink
}
