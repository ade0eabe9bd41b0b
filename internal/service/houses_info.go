package service

// houseSignificances are the fixed bhava karakatvas, house 1 first.
var houseSignificances = [12][]string{
	{"self", "body", "personality", "health"},
	{"wealth", "family", "speech", "food"},
	{"courage", "siblings", "communication", "short journeys"},
	{"mother", "home", "property", "happiness"},
	{"children", "intellect", "creativity", "past merit"},
	{"enemies", "disease", "debts", "service"},
	{"marriage", "partnership", "business", "public dealings"},
	{"longevity", "transformation", "inheritance", "hidden matters"},
	{"fortune", "dharma", "father", "higher learning"},
	{"career", "status", "authority", "karma"},
	{"gains", "income", "elder siblings", "aspirations"},
	{"losses", "expenses", "liberation", "foreign lands"},
}

// HouseSignificances returns a copy of the significances of house h (1..12).
func HouseSignificances(h int) []string {
	if h < 1 || h > 12 {
		return nil
	}
	return append([]string(nil), houseSignificances[h-1]...)
}
