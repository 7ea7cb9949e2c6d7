package assistant

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/wanderplan/wanderplan/internal/catalog"
	"github.com/wanderplan/wanderplan/internal/llm"
	"github.com/wanderplan/wanderplan/internal/planner"
	"github.com/wanderplan/wanderplan/internal/weather"
)

// Agent answers chat messages by updating the session context and
// dispatching on the detected intent. All replies are produced by
// deterministic templates; a configured LLM provider only rephrases them.
type Agent struct {
	catalog     *catalog.Catalog
	weather     *weather.Service
	flights     planner.FlightEstimator
	provider    llm.Provider
	model       string
	temperature float64
}

// Option configures an Agent.
type Option func(*Agent)

// WithProvider enables LLM rephrasing of replies.
func WithProvider(p llm.Provider, model string, temperature float64) Option {
	return func(a *Agent) {
		a.provider = p
		a.model = model
		a.temperature = temperature
	}
}

// WithFlightEstimator overrides the default random flight estimator.
func WithFlightEstimator(est planner.FlightEstimator) Option {
	return func(a *Agent) {
		a.flights = est
	}
}

func New(cat *catalog.Catalog, wx *weather.Service, opts ...Option) *Agent {
	a := &Agent{
		catalog: cat,
		weather: wx,
		flights: planner.NewRandomFlightEstimator(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var itineraryTriggers = []string{
	"create itinerary", "plan my trip", "make itinerary",
	"generate plan", "full plan", "complete plan",
}

var (
	recommendWords     = []string{"recommend", "suggest", "where should", "best place"}
	accommodationWords = []string{"hotel", "stay", "accommodation", "hostel", "sleep"}
	activityWords      = []string{"activity", "things to do", "what to do", "attractions", "visit"}
	budgetWords        = []string{"cost", "budget", "price", "expensive", "afford"}
	weatherWords       = []string{"weather", "climate", "temperature", "rain"}
)

// Chat processes one user message for a session and returns the reply.
func (a *Agent) Chat(ctx context.Context, sess *Session, message string) string {
	sess.Context.UpdateFromMessage(a.catalog, message)
	sess.Record("user", message)

	reply := a.respond(sess.Context, message)
	reply = a.rephrase(ctx, message, reply)

	sess.Record("assistant", reply)
	return reply
}

// respond picks the intent handler. Checks run in a fixed order; the
// itinerary trigger outranks everything else.
func (a *Agent) respond(c *Context, message string) string {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, itineraryTriggers):
		return a.handleItinerary(c)
	case containsAny(lower, recommendWords):
		return a.handleDestinationSearch(c, message)
	case containsAny(lower, accommodationWords):
		return a.handleAccommodationSearch(c)
	case containsAny(lower, activityWords):
		return a.handleActivitySearch(c)
	case containsAny(lower, budgetWords):
		return a.handleBudgetInquiry(c)
	case containsAny(lower, weatherWords):
		return a.handleWeatherInquiry(c)
	default:
		return a.handleGeneral(c)
	}
}

func (a *Agent) handleItinerary(c *Context) string {
	if !c.Complete() {
		return formatMissingInfo(c.MissingInfo())
	}

	prefs := c.ToPreferences()
	activities := a.catalog.Activities(catalog.NormalizeKey(prefs.Destination))

	itinerary := planner.Generate(prefs, activities)
	planner.OptimizeRoute(&itinerary)
	planner.BalanceDays(&itinerary)

	return formatItinerary(itinerary)
}

// seasonKeywords maps seasons to the words and months that imply them.
var seasonKeywords = []struct {
	season   string
	keywords []string
}{
	{"spring", []string{"spring", "march", "april", "may"}},
	{"summer", []string{"summer", "june", "july", "august"}},
	{"autumn", []string{"autumn", "fall", "september", "october", "november"}},
	{"winter", []string{"winter", "december", "january", "february"}},
}

func (a *Agent) handleDestinationSearch(c *Context, query string) string {
	lower := strings.ToLower(query)

	var season string
	for _, entry := range seasonKeywords {
		if containsAny(lower, entry.keywords) {
			season = entry.season
			break
		}
	}

	results := a.catalog.SearchDestinations(query, c.BudgetLevel, season)
	return formatDestinations(results)
}

func (a *Agent) handleAccommodationSearch(c *Context) string {
	if c.Destination == "" {
		return "I'd love to help you find accommodation! Which city are you planning to visit?"
	}

	options := a.catalog.FindAccommodations(c.Destination, c.AccommodationType, 0)
	return formatAccommodations(c.Destination, options)
}

func (a *Agent) handleActivitySearch(c *Context) string {
	if c.Destination == "" {
		return "I'd be happy to suggest activities! Which destination are you interested in?"
	}

	// The first interest with a matching activity type narrows the search.
	var activityType string
	for _, interest := range c.Interests {
		switch interest {
		case "cultural", "food", "adventure", "relaxation":
			activityType = interest
		}
		if activityType != "" {
			break
		}
	}

	options := a.catalog.FindActivities(c.Destination, activityType, 0)
	return formatActivities(c.Destination, options)
}

func (a *Agent) handleBudgetInquiry(c *Context) string {
	if c.Destination == "" || c.DurationDays == 0 {
		var missing []string
		if c.Destination == "" {
			missing = append(missing, "destination")
		}
		if c.DurationDays == 0 {
			missing = append(missing, "trip duration")
		}
		return "To calculate a budget estimate, I need to know your " +
			strings.Join(missing, " and ") + ". Could you provide that?"
	}

	tier := c.BudgetLevel
	if tier == "" {
		tier = "moderate"
	}
	travelers := c.Travelers
	if travelers == 0 {
		travelers = 1
	}

	var baseDaily float64
	if dest, ok := a.catalog.Destination(catalog.NormalizeKey(c.Destination)); ok {
		baseDaily = dest.AvgDailyCost
	}

	budget := planner.CalculateBudget(c.Destination, baseDaily, c.DurationDays, tier, travelers, a.flights)
	return formatBudget(budget)
}

func (a *Agent) handleWeatherInquiry(c *Context) string {
	if c.Destination == "" {
		return "Which destination would you like weather information for?"
	}

	date := c.StartDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	forecast := a.weather.Forecast(c.Destination, date)
	return formatForecast(forecast)
}

func (a *Agent) handleGeneral(c *Context) string {
	if c.Destination == "" {
		return welcomeMessage
	}
	return formatStatus(c)
}

const rephraseSystemPrompt = "You are a friendly travel planning assistant. " +
	"Rewrite the draft reply in a warm, conversational tone. Keep every fact, " +
	"number, and list item exactly as given. Keep markdown formatting."

// rephrase runs the deterministic reply through the LLM provider when one
// is configured. Any failure falls back to the draft unchanged.
func (a *Agent) rephrase(ctx context.Context, message, draft string) string {
	if a.provider == nil {
		return draft
	}

	resp, err := a.provider.Complete(ctx, llm.Request{
		Model: a.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: rephraseSystemPrompt},
			{Role: llm.RoleUser, Content: "User asked: " + message + "\n\nDraft reply:\n" + draft},
		},
		Temperature: a.temperature,
	})
	if err != nil || resp.Content == "" {
		if err != nil {
			log.Printf("assistant: rephrase failed, using draft: %v", err)
		}
		return draft
	}
	return resp.Content
}
