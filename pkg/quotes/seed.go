package quotes

// seed is the fallback list used when nothing usable is persisted.
var seed = []Quote{
	{ID: 1, Text: "The only way to do great work is to love what you do. – Steve Jobs", Category: "Motivation"},
	{ID: 2, Text: "In the middle of every difficulty lies opportunity. – Albert Einstein", Category: "Wisdom"},
	{ID: 3, Text: "Fall seven times, stand up eight. – Japanese Proverb", Category: "Resilience"},
}

// Seed returns a copy of the built-in seed quotes.
func Seed() []Quote {
	out := make([]Quote, len(seed))
	copy(out, seed)
	return out
}
