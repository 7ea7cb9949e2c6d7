package planner

import "github.com/wanderplan/wanderplan/internal/catalog"

// Day theme vocabulary, in default rotation order.
const (
	ThemeCultural   = "Cultural Exploration"
	ThemeFood       = "Food & Local Experience"
	ThemeHistory    = "Historical Discovery"
	ThemeArt        = "Art & Museums"
	ThemeNature     = "Nature & Outdoors"
	ThemeShopping   = "Shopping & Entertainment"
	ThemeRelaxation = "Relaxation & Leisure"
	ThemeAdventure  = "Adventure Day"
)

var allThemes = []string{
	ThemeCultural,
	ThemeFood,
	ThemeHistory,
	ThemeArt,
	ThemeNature,
	ThemeShopping,
	ThemeRelaxation,
	ThemeAdventure,
}

// interestThemes maps an interest tag to the themes it promotes, in order.
var interestThemes = map[string][]string{
	"cultural":   {ThemeCultural, ThemeHistory, ThemeArt},
	"food":       {ThemeFood},
	"adventure":  {ThemeAdventure, ThemeNature},
	"relaxation": {ThemeRelaxation},
	"shopping":   {ThemeShopping},
	"nature":     {ThemeNature},
	"art":        {ThemeArt},
}

// themeTypes maps a day theme to its preferred activity types.
var themeTypes = map[string][]string{
	ThemeCultural:   {catalog.TypeCultural, catalog.TypeSightseeing},
	ThemeFood:       {catalog.TypeFood, catalog.TypeCultural},
	ThemeAdventure:  {catalog.TypeAdventure, catalog.TypeSightseeing},
	ThemeRelaxation: {catalog.TypeRelaxation, catalog.TypeFood},
	ThemeShopping:   {catalog.TypeShopping, catalog.TypeEntertainment},
	ThemeNature:     {catalog.TypeNature, catalog.TypeAdventure},
	ThemeHistory:    {catalog.TypeCultural, catalog.TypeSightseeing},
	ThemeArt:        {catalog.TypeCultural, catalog.TypeArt},
}

// maxActivitiesPerDay caps the schedule by pace.
var maxActivitiesPerDay = map[string]int{
	"relaxed":  3,
	"moderate": 4,
	"packed":   6,
}

// dailyFoodCost is the flat per-day food estimate by budget tier.
var dailyFoodCost = map[string]float64{
	"budget":   25.0,
	"moderate": 50.0,
	"luxury":   120.0,
}

// nightlyRates is the base lodging rate by accommodation type.
var nightlyRates = map[string]float64{
	"hostel":    30.0,
	"hotel":     120.0,
	"resort":    250.0,
	"apartment": 100.0,
}

// lodgingTierMultipliers adjust the nightly rate by budget tier. These are
// intentionally different from the budget calculator's tier multipliers.
var lodgingTierMultipliers = map[string]float64{
	"budget":   0.7,
	"moderate": 1.0,
	"luxury":   1.8,
}

var accommodationDescriptions = map[string]string{
	"hostel":    "Budget-friendly hostel with social atmosphere",
	"hotel":     "Comfortable hotel with good amenities",
	"resort":    "Luxury resort with full services",
	"apartment": "Private apartment for more space and flexibility",
}

// mealRecommendations is keyed by normalized destination key.
var mealRecommendations = map[string]map[string]string{
	"tokyo": {
		"breakfast": "Visit a local kissaten (coffee shop) for morning set",
		"lunch":     "Try ramen or a bento box",
		"dinner":    "Experience izakaya dining or sushi",
	},
	"paris": {
		"breakfast": "Croissant and café crème at a local boulangerie",
		"lunch":     "Bistro lunch with prix fixe menu",
		"dinner":    "Fine dining or classic French brasserie",
	},
	"seoul": {
		"breakfast": "Korean breakfast at guesthouse or local restaurant",
		"lunch":     "Bibimbap or Korean BBQ",
		"dinner":    "Korean fried chicken with beer (chimaek)",
	},
	"bangkok": {
		"breakfast": "Street food breakfast or hotel buffet",
		"lunch":     "Pad Thai or curry at local restaurant",
		"dinner":    "Riverside dining or night market food tour",
	},
}

var defaultMeals = map[string]string{
	"breakfast": "Local café or hotel breakfast",
	"lunch":     "Local restaurant near activities",
	"dinner":    "Recommended restaurant in the area",
}

var packingEssentials = []string{
	"Passport and travel documents",
	"Phone charger and adapter",
	"Comfortable walking shoes",
	"Weather-appropriate clothing",
	"Toiletries and medications",
	"Sunglasses and sunscreen",
	"Small daypack/bag",
}

// interestPackingItems adds per-interest extras to the packing list.
var interestPackingItems = map[string][]string{
	"adventure":  {"Athletic wear", "Water bottle", "First aid kit"},
	"cultural":   {"Modest clothing for temples", "Light scarf"},
	"food":       {"Antacids/digestive aids", "Wet wipes"},
	"relaxation": {"Swimwear", "Book or e-reader"},
	"shopping":   {"Extra bag for purchases", "Calculator app"},
}

var generalTips = []string{
	"Keep copies of important documents",
	"Notify your bank of travel dates",
	"Download offline maps",
	"Learn basic local phrases",
	"Check visa requirements early",
}

// destinationTips is keyed by normalized destination key.
var destinationTips = map[string][]string{
	"tokyo": {
		"Get a Suica/Pasmo card for easy transportation",
		"Many places are cash-only - carry yen",
		"Tipping is not customary in Japan",
		"Trains stop around midnight",
		"Remove shoes when entering homes/some restaurants",
	},
	"paris": {
		"Get a Navigo pass for unlimited metro rides",
		"Most shops close on Sundays",
		"Book popular museums in advance",
		"Be aware of pickpockets in tourist areas",
		"Try to learn basic French phrases",
	},
	"seoul": {
		"Get a T-money card for transportation",
		"Download Naver Maps (better than Google)",
		"Many restaurants have picture menus",
		"K-beauty shopping is best in Myeongdong",
		"Tipping is not expected",
	},
}
