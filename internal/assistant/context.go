package assistant

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/wanderplan/wanderplan/internal/catalog"
	"github.com/wanderplan/wanderplan/internal/planner"
)

// Context holds the trip parameters extracted so far in a conversation.
// Fields fill in incrementally as messages arrive and are never rolled
// back; Reset is the only way to clear them.
type Context struct {
	Destination         string   `json:"destination,omitempty"`
	StartDate           string   `json:"start_date,omitempty"`
	EndDate             string   `json:"end_date,omitempty"`
	DurationDays        int      `json:"duration_days,omitempty"`
	BudgetLevel         string   `json:"budget_level,omitempty"`
	Travelers           int      `json:"travelers,omitempty"`
	Interests           []string `json:"interests,omitempty"`
	Pace                string   `json:"pace,omitempty"`
	AccommodationType   string   `json:"accommodation_type,omitempty"`
	SpecialRequirements []string `json:"special_requirements,omitempty"`
}

var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*(?:days?|nights?)`),
	regexp.MustCompile(`(\d+)-day`),
	regexp.MustCompile(`for\s+(\d+)\s+(?:days?|nights?)`),
}

var (
	travelerCountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*(?:people|persons?|travelers?|of us)`),
		regexp.MustCompile(`(?:for|with)\s+(\d+)`),
	}
	travelerCouplePattern = regexp.MustCompile(`couple|two of us`)
	travelerSoloPattern   = regexp.MustCompile(`solo|alone|myself`)
)

var (
	budgetKeywords   = []string{"cheap", "budget", "affordable", "backpack"}
	luxuryKeywords   = []string{"luxury", "premium", "high-end", "5-star"}
	moderateKeywords = []string{"moderate", "mid-range", "reasonable"}
)

// interestKeywords maps interest tags to trigger words, in evaluation order.
var interestKeywords = []struct {
	tag      string
	keywords []string
}{
	{"cultural", []string{"culture", "museum", "history", "temple", "heritage"}},
	{"food", []string{"food", "culinary", "restaurant", "cuisine", "eating", "foodie"}},
	{"adventure", []string{"adventure", "hiking", "outdoor", "extreme", "active"}},
	{"relaxation", []string{"relax", "spa", "beach", "peaceful", "quiet"}},
	{"shopping", []string{"shopping", "market", "mall", "souvenir"}},
	{"nature", []string{"nature", "park", "wildlife", "scenic"}},
	{"nightlife", []string{"nightlife", "bar", "club", "party"}},
}

var (
	relaxedKeywords = []string{"relaxed", "slow", "easy", "leisure"}
	packedKeywords  = []string{"packed", "busy", "intensive", "maximum"}
)

// accommodationKeywords is tested in order; the first matching kind wins.
var accommodationKeywords = []struct {
	kind     string
	keywords []string
}{
	{"hostel", []string{"hostel", "backpacker"}},
	{"resort", []string{"resort", "beach resort"}},
	{"apartment", []string{"apartment", "airbnb", "flat"}},
	{"hotel", []string{"hotel"}},
}

// UpdateFromMessage applies the extraction rules to one user message. Each
// rule is independent and a missed match leaves its field untouched. A
// destination mention always reassigns the field, even when already set.
func (c *Context) UpdateFromMessage(cat *catalog.Catalog, message string) {
	lower := strings.ToLower(message)

	for _, key := range cat.Keys() {
		dest, ok := cat.Destination(key)
		if !ok {
			continue
		}
		if strings.Contains(lower, strings.ToLower(dest.Name)) || strings.Contains(lower, key) {
			c.Destination = dest.Name
			break
		}
	}

	for _, pattern := range durationPatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				c.DurationDays = n
			}
			break
		}
	}

	switch {
	case containsAny(lower, budgetKeywords):
		c.BudgetLevel = "budget"
	case containsAny(lower, luxuryKeywords):
		c.BudgetLevel = "luxury"
	case containsAny(lower, moderateKeywords):
		c.BudgetLevel = "moderate"
	}

	c.updateTravelers(lower)

	for _, entry := range interestKeywords {
		if containsAny(lower, entry.keywords) && !lo.Contains(c.Interests, entry.tag) {
			c.Interests = append(c.Interests, entry.tag)
		}
	}

	switch {
	case containsAny(lower, relaxedKeywords):
		c.Pace = "relaxed"
	case containsAny(lower, packedKeywords):
		c.Pace = "packed"
	}

	for _, entry := range accommodationKeywords {
		if containsAny(lower, entry.keywords) {
			c.AccommodationType = entry.kind
			break
		}
	}
}

func (c *Context) updateTravelers(lower string) {
	for _, pattern := range travelerCountPatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				c.Travelers = n
			}
			return
		}
	}
	if travelerCouplePattern.MatchString(lower) {
		c.Travelers = 2
		return
	}
	if travelerSoloPattern.MatchString(lower) {
		c.Travelers = 1
	}
}

// Complete reports whether enough is known to synthesize an itinerary.
func (c *Context) Complete() bool {
	return c.Destination != "" && c.DurationDays > 0 && c.BudgetLevel != ""
}

// MissingInfo lists the required fields still unset, in a fixed order.
func (c *Context) MissingInfo() []string {
	var missing []string
	if c.Destination == "" {
		missing = append(missing, "destination")
	}
	if c.DurationDays == 0 {
		missing = append(missing, "trip duration")
	}
	if c.BudgetLevel == "" {
		missing = append(missing, "budget level")
	}
	return missing
}

// ToPreferences projects the context into fully-defaulted preferences.
func (c *Context) ToPreferences() planner.Preferences {
	prefs := planner.Preferences{
		Destination:       c.Destination,
		StartDate:         c.StartDate,
		DurationDays:      c.DurationDays,
		BudgetLevel:       c.BudgetLevel,
		Travelers:         c.Travelers,
		Interests:         append([]string(nil), c.Interests...),
		Pace:              c.Pace,
		AccommodationType: c.AccommodationType,
	}
	if prefs.StartDate == "" {
		prefs.StartDate = time.Now().Format("2006-01-02")
	}
	if prefs.DurationDays == 0 {
		prefs.DurationDays = 5
	}
	if prefs.BudgetLevel == "" {
		prefs.BudgetLevel = "moderate"
	}
	if prefs.Travelers == 0 {
		prefs.Travelers = 1
	}
	if len(prefs.Interests) == 0 {
		prefs.Interests = []string{"cultural", "food"}
	}
	if prefs.Pace == "" {
		prefs.Pace = "moderate"
	}
	if prefs.AccommodationType == "" {
		prefs.AccommodationType = "hotel"
	}
	return prefs
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
