package catalog

// Built-in destination data. Order matters: extractor destination detection
// and the search fallback both iterate in this declared order.
var builtinKeys = []string{
	"tokyo", "paris", "seoul", "new_york", "barcelona", "bangkok",
	"rome", "sydney", "singapore", "london", "dubai", "bali",
}

var builtinDestinations = map[string]Destination{
	"tokyo": {
		Name:         "Tokyo",
		Country:      "Japan",
		Description:  "A fascinating blend of ultra-modern and traditional, Tokyo offers ancient temples alongside neon-lit skyscrapers.",
		BestSeason:   []string{"spring", "autumn"},
		Attractions:  []string{"Senso-ji Temple", "Shibuya Crossing", "Meiji Shrine", "Tokyo Skytree", "Tsukiji Fish Market", "Akihabara"},
		AvgDailyCost: 150.0,
		Currency:     "JPY",
		Language:     "Japanese",
		Timezone:     "Asia/Tokyo",
		VisaRequired: false,
		SafetyRating: 4.8,
	},
	"paris": {
		Name:         "Paris",
		Country:      "France",
		Description:  "The City of Light captivates with its iconic landmarks, world-class museums, and exquisite cuisine.",
		BestSeason:   []string{"spring", "autumn"},
		Attractions:  []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame", "Champs-Élysées", "Montmartre", "Palace of Versailles"},
		AvgDailyCost: 180.0,
		Currency:     "EUR",
		Language:     "French",
		Timezone:     "Europe/Paris",
		VisaRequired: false,
		SafetyRating: 4.2,
	},
	"seoul": {
		Name:         "Seoul",
		Country:      "South Korea",
		Description:  "Dynamic capital blending ancient palaces with K-pop culture, cutting-edge technology, and incredible food.",
		BestSeason:   []string{"spring", "autumn"},
		Attractions:  []string{"Gyeongbokgung Palace", "Bukchon Hanok Village", "Myeongdong", "N Seoul Tower", "Hongdae", "Gangnam"},
		AvgDailyCost: 100.0,
		Currency:     "KRW",
		Language:     "Korean",
		Timezone:     "Asia/Seoul",
		VisaRequired: false,
		SafetyRating: 4.7,
	},
	"new_york": {
		Name:         "New York City",
		Country:      "USA",
		Description:  "The city that never sleeps offers world-famous landmarks, Broadway shows, and diverse neighborhoods.",
		BestSeason:   []string{"spring", "autumn"},
		Attractions:  []string{"Statue of Liberty", "Central Park", "Times Square", "Empire State Building", "Brooklyn Bridge", "Metropolitan Museum"},
		AvgDailyCost: 250.0,
		Currency:     "USD",
		Language:     "English",
		Timezone:     "America/New_York",
		VisaRequired: true,
		SafetyRating: 4.0,
	},
	"barcelona": {
		Name:         "Barcelona",
		Country:      "Spain",
		Description:  "Vibrant coastal city famous for Gaudí architecture, Mediterranean beaches, and lively nightlife.",
		BestSeason:   []string{"spring", "early_summer", "autumn"},
		Attractions:  []string{"Sagrada Familia", "Park Güell", "La Rambla", "Gothic Quarter", "Casa Batlló", "Barceloneta Beach"},
		AvgDailyCost: 130.0,
		Currency:     "EUR",
		Language:     "Spanish, Catalan",
		Timezone:     "Europe/Madrid",
		VisaRequired: false,
		SafetyRating: 4.1,
	},
	"bangkok": {
		Name:         "Bangkok",
		Country:      "Thailand",
		Description:  "Bustling capital with ornate temples, floating markets, and legendary street food scene.",
		BestSeason:   []string{"winter", "early_spring"},
		Attractions:  []string{"Grand Palace", "Wat Pho", "Chatuchak Market", "Khao San Road", "Wat Arun", "Jim Thompson House"},
		AvgDailyCost: 60.0,
		Currency:     "THB",
		Language:     "Thai",
		Timezone:     "Asia/Bangkok",
		VisaRequired: false,
		SafetyRating: 4.3,
	},
	"rome": {
		Name:         "Rome",
		Country:      "Italy",
		Description:  "The Eternal City offers unparalleled ancient history, Renaissance art, and authentic Italian cuisine.",
		BestSeason:   []string{"spring", "autumn"},
		Attractions:  []string{"Colosseum", "Vatican City", "Trevi Fountain", "Pantheon", "Roman Forum", "Spanish Steps"},
		AvgDailyCost: 140.0,
		Currency:     "EUR",
		Language:     "Italian",
		Timezone:     "Europe/Rome",
		VisaRequired: false,
		SafetyRating: 4.2,
	},
	"sydney": {
		Name:         "Sydney",
		Country:      "Australia",
		Description:  "Stunning harbor city with iconic architecture, beautiful beaches, and laid-back lifestyle.",
		BestSeason:   []string{"spring", "autumn"},
		Attractions:  []string{"Sydney Opera House", "Harbour Bridge", "Bondi Beach", "Darling Harbour", "Taronga Zoo", "The Rocks"},
		AvgDailyCost: 170.0,
		Currency:     "AUD",
		Language:     "English",
		Timezone:     "Australia/Sydney",
		VisaRequired: true,
		SafetyRating: 4.6,
	},
	"singapore": {
		Name:         "Singapore",
		Country:      "Singapore",
		Description:  "Futuristic city-state with stunning gardens, diverse food culture, and world-class shopping.",
		BestSeason:   []string{"winter", "spring"},
		Attractions:  []string{"Marina Bay Sands", "Gardens by the Bay", "Sentosa Island", "Orchard Road", "Chinatown", "Little India"},
		AvgDailyCost: 160.0,
		Currency:     "SGD",
		Language:     "English, Mandarin, Malay, Tamil",
		Timezone:     "Asia/Singapore",
		VisaRequired: false,
		SafetyRating: 4.9,
	},
	"london": {
		Name:         "London",
		Country:      "UK",
		Description:  "Historic capital blending royal heritage with cutting-edge culture, theater, and diverse cuisine.",
		BestSeason:   []string{"spring", "summer"},
		Attractions:  []string{"Tower of London", "British Museum", "Buckingham Palace", "Big Ben", "London Eye", "Westminster Abbey"},
		AvgDailyCost: 200.0,
		Currency:     "GBP",
		Language:     "English",
		Timezone:     "Europe/London",
		VisaRequired: false,
		SafetyRating: 4.3,
	},
	"dubai": {
		Name:         "Dubai",
		Country:      "UAE",
		Description:  "Ultra-modern metropolis with record-breaking architecture, luxury shopping, and desert adventures.",
		BestSeason:   []string{"winter", "early_spring"},
		Attractions:  []string{"Burj Khalifa", "Dubai Mall", "Palm Jumeirah", "Dubai Marina", "Gold Souk", "Desert Safari"},
		AvgDailyCost: 200.0,
		Currency:     "AED",
		Language:     "Arabic, English",
		Timezone:     "Asia/Dubai",
		VisaRequired: false,
		SafetyRating: 4.8,
	},
	"bali": {
		Name:         "Bali",
		Country:      "Indonesia",
		Description:  "Tropical paradise with ancient temples, rice terraces, pristine beaches, and spiritual retreats.",
		BestSeason:   []string{"spring", "summer"},
		Attractions:  []string{"Uluwatu Temple", "Ubud Rice Terraces", "Tanah Lot", "Seminyak Beach", "Sacred Monkey Forest", "Mount Batur"},
		AvgDailyCost: 70.0,
		Currency:     "IDR",
		Language:     "Indonesian, Balinese",
		Timezone:     "Asia/Makassar",
		VisaRequired: false,
		SafetyRating: 4.4,
	},
}

var builtinAccommodations = map[string][]Accommodation{
	"tokyo": {
		{Name: "Park Hyatt Tokyo", Type: "hotel", PricePerNight: 450.0, Rating: 4.9, Amenities: []string{"spa", "pool", "gym", "restaurant", "bar"}, Location: "Shinjuku", DistanceToCenter: 0.5},
		{Name: "Shibuya Stream Excel Hotel", Type: "hotel", PricePerNight: 200.0, Rating: 4.5, Amenities: []string{"gym", "restaurant", "wifi"}, Location: "Shibuya", DistanceToCenter: 0.2},
		{Name: "Khaosan Tokyo Samurai", Type: "hostel", PricePerNight: 35.0, Rating: 4.2, Amenities: []string{"wifi", "lounge", "kitchen"}, Location: "Asakusa", DistanceToCenter: 1.0},
		{Name: "Shinjuku Granbell Hotel", Type: "hotel", PricePerNight: 150.0, Rating: 4.4, Amenities: []string{"wifi", "restaurant"}, Location: "Shinjuku", DistanceToCenter: 0.3},
		{Name: "Tokyo Bay Ariake Washington Hotel", Type: "hotel", PricePerNight: 120.0, Rating: 4.1, Amenities: []string{"wifi", "restaurant", "shuttle"}, Location: "Odaiba", DistanceToCenter: 5.0},
	},
	"paris": {
		{Name: "The Ritz Paris", Type: "hotel", PricePerNight: 1200.0, Rating: 4.9, Amenities: []string{"spa", "pool", "restaurant", "bar", "concierge"}, Location: "1st Arr.", DistanceToCenter: 0.1},
		{Name: "Hotel Le Marais", Type: "hotel", PricePerNight: 180.0, Rating: 4.4, Amenities: []string{"wifi", "breakfast", "bar"}, Location: "Le Marais", DistanceToCenter: 0.5},
		{Name: "Generator Paris", Type: "hostel", PricePerNight: 40.0, Rating: 4.1, Amenities: []string{"wifi", "bar", "lounge", "kitchen"}, Location: "10th Arr.", DistanceToCenter: 2.0},
		{Name: "Citadines Saint-Germain", Type: "apartment", PricePerNight: 220.0, Rating: 4.3, Amenities: []string{"kitchen", "wifi", "laundry"}, Location: "6th Arr.", DistanceToCenter: 0.8},
		{Name: "Novotel Paris Centre Tour Eiffel", Type: "hotel", PricePerNight: 250.0, Rating: 4.2, Amenities: []string{"pool", "gym", "restaurant"}, Location: "15th Arr.", DistanceToCenter: 1.5},
	},
	"seoul": {
		{Name: "The Shilla Seoul", Type: "hotel", PricePerNight: 350.0, Rating: 4.8, Amenities: []string{"spa", "pool", "gym", "restaurant", "bar"}, Location: "Jung-gu", DistanceToCenter: 1.0},
		{Name: "L7 Hongdae", Type: "hotel", PricePerNight: 130.0, Rating: 4.5, Amenities: []string{"gym", "rooftop bar", "wifi"}, Location: "Hongdae", DistanceToCenter: 0.2},
		{Name: "Zzzip Guesthouse", Type: "hostel", PricePerNight: 25.0, Rating: 4.3, Amenities: []string{"wifi", "kitchen", "lounge"}, Location: "Jongno", DistanceToCenter: 0.5},
		{Name: "Glad Hotel Mapo", Type: "hotel", PricePerNight: 100.0, Rating: 4.2, Amenities: []string{"gym", "wifi", "restaurant"}, Location: "Mapo", DistanceToCenter: 1.5},
		{Name: "Four Seasons Seoul", Type: "hotel", PricePerNight: 400.0, Rating: 4.9, Amenities: []string{"spa", "pool", "restaurant", "concierge"}, Location: "Jongno", DistanceToCenter: 0.3},
	},
}

var builtinActivities = map[string][]Activity{
	"tokyo": {
		{Name: "Senso-ji Temple Visit", Type: TypeCultural, DurationHours: 2.0, Price: 0.0, Description: "Ancient Buddhist temple in Asakusa with iconic Kaminarimon gate", BestTime: TimeMorning, BookingRequired: false},
		{Name: "Tsukiji Outer Market Food Tour", Type: TypeFood, DurationHours: 3.0, Price: 80.0, Description: "Guided tour sampling fresh sushi, tamagoyaki, and street food", BestTime: TimeMorning, BookingRequired: true},
		{Name: "TeamLab Borderless", Type: TypeCultural, DurationHours: 3.0, Price: 30.0, Description: "Immersive digital art museum experience", BestTime: TimeAfternoon, BookingRequired: true},
		{Name: "Shibuya Crossing Experience", Type: TypeSightseeing, DurationHours: 1.0, Price: 0.0, Description: "World's busiest pedestrian crossing and shopping district", BestTime: TimeEvening, BookingRequired: false},
		{Name: "Meiji Shrine & Harajuku Walk", Type: TypeCultural, DurationHours: 3.0, Price: 0.0, Description: "Peaceful shrine visit followed by colorful Takeshita Street", BestTime: TimeMorning, BookingRequired: false},
		{Name: "Robot Restaurant Show", Type: TypeEntertainment, DurationHours: 2.0, Price: 80.0, Description: "Wild cabaret show with robots and dancers in Shinjuku", BestTime: TimeEvening, BookingRequired: true},
		{Name: "Tokyo Skytree Observation", Type: TypeSightseeing, DurationHours: 2.0, Price: 25.0, Description: "Panoramic city views from world's tallest tower", BestTime: TimeAfternoon, BookingRequired: false},
		{Name: "Ramen Making Class", Type: TypeFood, DurationHours: 3.0, Price: 75.0, Description: "Learn to make authentic Japanese ramen from scratch", BestTime: TimeAfternoon, BookingRequired: true},
	},
	"paris": {
		{Name: "Eiffel Tower Summit", Type: TypeSightseeing, DurationHours: 2.0, Price: 28.0, Description: "Iconic tower with breathtaking city views", BestTime: TimeAfternoon, BookingRequired: true},
		{Name: "Louvre Museum Tour", Type: TypeCultural, DurationHours: 4.0, Price: 17.0, Description: "World's largest art museum with Mona Lisa", BestTime: TimeMorning, BookingRequired: true},
		{Name: "Seine River Cruise", Type: TypeSightseeing, DurationHours: 1.5, Price: 15.0, Description: "Romantic boat tour passing major landmarks", BestTime: TimeEvening, BookingRequired: false},
		{Name: "Montmartre Walking Tour", Type: TypeCultural, DurationHours: 3.0, Price: 25.0, Description: "Artistic neighborhood with Sacré-Cœur basilica", BestTime: TimeMorning, BookingRequired: false},
		{Name: "French Cooking Class", Type: TypeFood, DurationHours: 4.0, Price: 120.0, Description: "Learn classic French cuisine from a Parisian chef", BestTime: TimeAfternoon, BookingRequired: true},
		{Name: "Versailles Day Trip", Type: TypeCultural, DurationHours: 6.0, Price: 50.0, Description: "Magnificent palace and gardens of French royalty", BestTime: TimeFullDay, BookingRequired: true},
		{Name: "Wine Tasting in Le Marais", Type: TypeFood, DurationHours: 2.0, Price: 60.0, Description: "Sample French wines with sommelier guidance", BestTime: TimeEvening, BookingRequired: true},
		{Name: "Notre-Dame & Latin Quarter", Type: TypeCultural, DurationHours: 3.0, Price: 0.0, Description: "Gothic cathedral and historic university district", BestTime: TimeAfternoon, BookingRequired: false},
	},
	"seoul": {
		{Name: "Gyeongbokgung Palace Tour", Type: TypeCultural, DurationHours: 2.5, Price: 3.0, Description: "Grand palace with changing of the guard ceremony", BestTime: TimeMorning, BookingRequired: false},
		{Name: "Korean BBQ Dinner Experience", Type: TypeFood, DurationHours: 2.0, Price: 35.0, Description: "Traditional grilled meat with banchan sides", BestTime: TimeEvening, BookingRequired: true},
		{Name: "Bukchon Hanok Village Walk", Type: TypeCultural, DurationHours: 2.0, Price: 0.0, Description: "Traditional Korean houses in historic neighborhood", BestTime: TimeAfternoon, BookingRequired: false},
		{Name: "K-pop Dance Class", Type: TypeEntertainment, DurationHours: 2.0, Price: 40.0, Description: "Learn choreography from popular K-pop songs", BestTime: TimeAfternoon, BookingRequired: true},
		{Name: "DMZ Tour", Type: TypeSightseeing, DurationHours: 6.0, Price: 80.0, Description: "Visit the border between North and South Korea", BestTime: TimeFullDay, BookingRequired: true},
		{Name: "Myeongdong Shopping & Street Food", Type: TypeFood, DurationHours: 3.0, Price: 0.0, Description: "Cosmetics shopping and Korean street food", BestTime: TimeEvening, BookingRequired: false},
		{Name: "Jjimjilbang Experience", Type: TypeRelaxation, DurationHours: 4.0, Price: 15.0, Description: "Traditional Korean bathhouse and sauna", BestTime: TimeEvening, BookingRequired: false},
		{Name: "Namsan Tower & Love Locks", Type: TypeSightseeing, DurationHours: 2.0, Price: 12.0, Description: "Iconic tower with panoramic Seoul views", BestTime: TimeEvening, BookingRequired: false},
	},
}
