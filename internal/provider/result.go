package provider

// DictionaryEntry is the structured result from a dictionary API provider,
// flattened to the fields a word card stores.
type DictionaryEntry struct {
	Word             string
	Definition       string
	PhoneticText     string
	PhoneticAudioURL string
	Examples         []string
	Synonyms         []string
	Antonyms         []string
}
