package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
)

// Ensure JourneyService implements the interface.
var _ driving.JourneyService = (*JourneyService)(nil)

var (
	resourceSBA = domain.ResourceLink{
		Name:        "U.S. Small Business Administration",
		URL:         "https://www.sba.gov/business-guide",
		Description: "Step-by-step guides for planning, launching, and managing a business.",
	}
	resourceSCORE = domain.ResourceLink{
		Name:        "SCORE Mentoring",
		URL:         "https://www.score.org/find-mentor",
		Description: "Free one-to-one mentoring from experienced business owners.",
	}
	resourceEIN = domain.ResourceLink{
		Name:        "IRS EIN Application",
		URL:         "https://www.irs.gov/businesses/small-businesses-self-employed/apply-for-an-employer-identification-number-ein-online",
		Description: "Get a federal tax ID for your business online.",
	}
	resourceSBAFunding = domain.ResourceLink{
		Name:        "SBA Funding Programs",
		URL:         "https://www.sba.gov/funding-programs",
		Description: "Loans, grants, and investment programs for small businesses.",
	}
	resourceSBACyber = domain.ResourceLink{
		Name:        "SBA Cybersecurity Guide",
		URL:         "https://www.sba.gov/business-guide/manage-your-business/strengthen-your-cybersecurity",
		Description: "Guidance on choosing and securing business software.",
	}
)

// JourneyService turns collected journey answers into guidance.
// Results are rule based and deterministic.
type JourneyService struct{}

// NewJourneyService creates a new journey service.
func NewJourneyService() *JourneyService {
	return &JourneyService{}
}

// Fields returns the labelled answer fields of a journey.
func (s *JourneyService) Fields(journey domain.JourneyType) ([]domain.JourneyField, error) {
	if !journey.IsValid() {
		return nil, fmt.Errorf("%w: unknown journey type %q", domain.ErrInvalidInput, journey)
	}
	return domain.JourneyFields(journey), nil
}

// GenerateResult produces guidance from a journey's answers. Unknown keys
// are ignored; at least one known field must be answered.
func (s *JourneyService) GenerateResult(journey domain.JourneyType, answers domain.JourneyAnswers) (*domain.JourneyResult, error) {
	fields, err := s.Fields(journey)
	if err != nil {
		return nil, err
	}

	clean := make(domain.JourneyAnswers, len(fields))
	for _, f := range fields {
		if v := strings.TrimSpace(answers[f.Key]); v != "" {
			clean[f.Key] = v
		}
	}
	if len(clean) == 0 {
		return nil, fmt.Errorf("%w: no answers for the %s journey", domain.ErrInvalidInput, journey)
	}

	r := &resultBuilder{}
	switch journey {
	case domain.JourneyExplore:
		exploreResult(r, clean)
	case domain.JourneyStart:
		startResult(r, clean)
	case domain.JourneyIntegrate:
		integrateResult(r, clean)
	}
	return r.result(), nil
}

func exploreResult(r *resultBuilder, a domain.JourneyAnswers) {
	if idea := a["businessIdea"]; idea != "" {
		r.takeaway(fmt.Sprintf("Test %q with real customers before you spend on it.", idea))
	} else {
		r.takeaway("Write your business idea down in one sentence and share it with potential customers.")
	}
	if industry := a["industry"]; industry != "" {
		r.takeaway(fmt.Sprintf("Study how established %s businesses find their customers and set their prices.", industry))
	}

	switch {
	case mentions(a["experience"], "none", "beginner", "new", "first"):
		r.takeaway("A mentor can shorten your learning curve considerably.")
		r.step("Book a free session with a SCORE mentor.")
		r.resource(resourceSCORE)
	case a["experience"] != "":
		r.takeaway("Lean on your experience, and write down what you will do differently this time.")
	}

	if mentions(a["budget"], "low", "none", "minimal", "small", "$0") {
		r.takeaway("Start lean: validate demand before buying equipment or signing leases.")
		r.step("List the three cheapest ways to get your first paying customer.")
	}
	if mentions(a["timeline"], "now", "immediately", "asap", "month") {
		r.step("Set a 30-day goal with one measurable outcome.")
	} else {
		r.step("Set a 90-day exploration plan with a decision date.")
	}

	r.step("Talk to ten potential customers about the problem you solve.")
	r.step("Move on to the Start journey once your idea has been tested.")
	r.resource(resourceSBA)
}

func startResult(r *resultBuilder, a domain.JourneyAnswers) {
	name := a["businessName"]
	if name == "" {
		name = "your business"
	}
	if t := a["businessType"]; t != "" {
		r.takeaway(fmt.Sprintf("As a %s business, choose a legal structure that fits your liability and tax needs.", t))
	} else {
		r.takeaway("Choose a legal structure that fits your liability and tax needs.")
	}
	if loc := a["location"]; loc != "" {
		r.takeaway(fmt.Sprintf("Licensing rules in %s decide which permits %s needs.", loc, name))
	}

	challenge := a["challenge"]
	switch {
	case mentions(challenge, "fund", "money", "capital", "cash", "loan", "financ"):
		r.takeaway("Funding is your biggest hurdle: compare SBA-backed loans, grants, and local programs.")
		r.step("Prepare a simple 12-month cash flow forecast.")
		r.resource(resourceSBAFunding)
	case mentions(challenge, "customer", "marketing", "sales", "client"):
		r.takeaway("Finding customers comes first: pick one marketing channel and measure it.")
		r.step("Define your ideal customer and where they spend time.")
	case mentions(challenge, "legal", "license", "permit", "regulat", "tax"):
		r.takeaway("Sort out registration and taxes early to avoid penalties later.")
	case challenge != "":
		r.takeaway(fmt.Sprintf("Break %q into small weekly tasks.", challenge))
	}

	if mentions(a["stage"], "idea", "planning", "not started") {
		r.step("Write a one-page business plan.")
	}
	r.step("Register " + name + " and apply for an EIN.")
	r.step("Open a separate business bank account.")
	if goal := a["primaryGoal"]; goal != "" {
		r.step(fmt.Sprintf("Set a 90-day milestone for your goal: %s.", goal))
	}

	r.resource(resourceSBA)
	r.resource(resourceEIN)
	r.resource(resourceSCORE)
}

func integrateResult(r *resultBuilder, a domain.JourneyAnswers) {
	if tools := a["currentTools"]; tools != "" {
		r.takeaway(fmt.Sprintf("Build on what already works in %s before adding new tools.", tools))
	}

	if size, err := strconv.Atoi(strings.TrimSpace(a["teamSize"])); err == nil {
		if size > 10 {
			r.takeaway("With a team your size, shared processes matter more than individual tools.")
			r.step("Name an owner for each core system.")
		} else {
			r.takeaway("A small team benefits most from a few tools that work well together.")
		}
	}

	if mentions(a["painPoints"], "manual", "spreadsheet", "paper", "repetitive", "time") {
		r.takeaway("Manual, repetitive work is the best place to start automating.")
		r.step("List the three tasks that take the most time each week.")
	} else if p := a["painPoints"]; p != "" {
		r.takeaway(fmt.Sprintf("Tackle %q one process at a time.", p))
	}

	r.step("Map how information moves between your current tools.")
	if g := a["goals"]; g != "" {
		r.step(fmt.Sprintf("Pick one integration that moves you toward: %s.", g))
	}
	r.step("Review security settings on every system you connect.")

	r.resource(resourceSBACyber)
	r.resource(resourceSBA)
}

// mentions reports whether s contains any of the keywords, ignoring case.
func mentions(s string, keywords ...string) bool {
	s = strings.ToLower(s)
	if s == "" {
		return false
	}
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

type resultBuilder struct {
	takeaways []string
	steps     []string
	resources []domain.ResourceLink
}

func (b *resultBuilder) takeaway(s string) { b.takeaways = append(b.takeaways, s) }
func (b *resultBuilder) step(s string)     { b.steps = append(b.steps, s) }

func (b *resultBuilder) resource(link domain.ResourceLink) {
	for _, r := range b.resources {
		if r.URL == link.URL {
			return
		}
	}
	b.resources = append(b.resources, link)
}

func (b *resultBuilder) result() *domain.JourneyResult {
	return &domain.JourneyResult{
		KeyTakeaways: b.takeaways,
		NextSteps:    b.steps,
		Resources:    b.resources,
	}
}
