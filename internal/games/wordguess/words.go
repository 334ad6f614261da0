package wordguess

import "sort"

// Difficulty is a word's scoring tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Multiplier returns the scoring multiplier for this tier.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyMedium:
		return 1.5
	case DifficultyHard:
		return 2
	default:
		return 1
	}
}

// Word is a guessable entry: uppercase A-Z text, a hint shown to the
// player, and a scoring tier.
type Word struct {
	Text       string
	Hint       string
	Difficulty Difficulty
}

// categories maps category names to their word lists.
var categories = map[string][]Word{
	"Animals": {
		{Text: "SNAKE", Hint: "Legless reptile", Difficulty: DifficultyEasy},
		{Text: "HORSE", Hint: "Rideable and fast", Difficulty: DifficultyEasy},
		{Text: "TIGER", Hint: "Striped big cat", Difficulty: DifficultyEasy},
		{Text: "DOLPHIN", Hint: "Clever marine mammal", Difficulty: DifficultyMedium},
		{Text: "PENGUIN", Hint: "Flightless bird in a tuxedo", Difficulty: DifficultyMedium},
		{Text: "CHAMELEON", Hint: "Changes color to blend in", Difficulty: DifficultyHard},
		{Text: "PLATYPUS", Hint: "Egg-laying mammal with a bill", Difficulty: DifficultyHard},
	},
	"Countries": {
		{Text: "SPAIN", Hint: "Flamenco and paella", Difficulty: DifficultyEasy},
		{Text: "JAPAN", Hint: "Land of the rising sun", Difficulty: DifficultyEasy},
		{Text: "BRAZIL", Hint: "Largest country in South America", Difficulty: DifficultyMedium},
		{Text: "NORWAY", Hint: "Fjords and northern lights", Difficulty: DifficultyMedium},
		{Text: "KAZAKHSTAN", Hint: "Largest landlocked country", Difficulty: DifficultyHard},
		{Text: "AZERBAIJAN", Hint: "Land of fire on the Caspian", Difficulty: DifficultyHard},
	},
	"Sports": {
		{Text: "TENNIS", Hint: "Love means nothing here", Difficulty: DifficultyEasy},
		{Text: "SOCCER", Hint: "The beautiful game", Difficulty: DifficultyEasy},
		{Text: "CRICKET", Hint: "Wickets and overs", Difficulty: DifficultyMedium},
		{Text: "FENCING", Hint: "Touché!", Difficulty: DifficultyMedium},
		{Text: "BIATHLON", Hint: "Skiing plus shooting", Difficulty: DifficultyHard},
		{Text: "VOLLEYBALL", Hint: "Six players, one net, no hands off", Difficulty: DifficultyHard},
	},
	"Food": {
		{Text: "PIZZA", Hint: "Naples' gift to the world", Difficulty: DifficultyEasy},
		{Text: "BREAD", Hint: "The staff of life", Difficulty: DifficultyEasy},
		{Text: "LASAGNA", Hint: "Layered pasta bake", Difficulty: DifficultyMedium},
		{Text: "BURRITO", Hint: "Everything wrapped in a tortilla", Difficulty: DifficultyMedium},
		{Text: "RATATOUILLE", Hint: "Provençal vegetable stew", Difficulty: DifficultyHard},
		{Text: "BRUSCHETTA", Hint: "Grilled bread with toppings", Difficulty: DifficultyHard},
	},
}

// CategoryNames returns all category names in a stable sorted order.
func CategoryNames() []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WordsIn returns the word list for a category, or nil if unknown.
func WordsIn(category string) []Word {
	return categories[category]
}
