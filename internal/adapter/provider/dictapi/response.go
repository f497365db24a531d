package dictapi

import (
	"strings"

	"github.com/wordbox/wordbox-backend/internal/provider"
)

const maxExamples = 5

// apiEntry represents a single entry from the FreeDictionary API response.
// The API returns an array of entries (one per etymology).
type apiEntry struct {
	Word      string        `json:"word"`
	Phonetics []apiPhonetic `json:"phonetics"`
	Meanings  []apiMeaning  `json:"meanings"`
}

// apiPhonetic represents phonetic/pronunciation data from the API.
type apiPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// apiMeaning represents a group of definitions sharing a part of speech.
// Synonyms and antonyms appear both here and on individual definitions.
type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
	Synonyms     []string        `json:"synonyms"`
	Antonyms     []string        `json:"antonyms"`
}

// apiDefinition represents a single definition with an optional example.
type apiDefinition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// mapAPIResponse flattens the API entries into a single DictionaryEntry.
// Multiple entries (different etymologies) are merged: the first definition
// wins, examples are concatenated up to maxExamples, synonyms and antonyms
// are deduplicated case-insensitively, the first phonetic with audio wins.
func mapAPIResponse(entries []apiEntry) *provider.DictionaryEntry {
	entry := &provider.DictionaryEntry{
		Examples: []string{},
		Synonyms: []string{},
		Antonyms: []string{},
	}

	if len(entries) == 0 {
		return entry
	}

	entry.Word = entries[0].Word

	seenSynonyms := make(map[string]bool)
	seenAntonyms := make(map[string]bool)

	addSynonyms := func(words []string) {
		for _, w := range words {
			key := strings.ToLower(strings.TrimSpace(w))
			if key == "" || seenSynonyms[key] {
				continue
			}
			seenSynonyms[key] = true
			entry.Synonyms = append(entry.Synonyms, strings.TrimSpace(w))
		}
	}
	addAntonyms := func(words []string) {
		for _, w := range words {
			key := strings.ToLower(strings.TrimSpace(w))
			if key == "" || seenAntonyms[key] {
				continue
			}
			seenAntonyms[key] = true
			entry.Antonyms = append(entry.Antonyms, strings.TrimSpace(w))
		}
	}

	for _, apiEnt := range entries {
		for _, meaning := range apiEnt.Meanings {
			addSynonyms(meaning.Synonyms)
			addAntonyms(meaning.Antonyms)

			for _, def := range meaning.Definitions {
				if entry.Definition == "" && def.Definition != "" {
					entry.Definition = def.Definition
				}
				if def.Example != "" && len(entry.Examples) < maxExamples {
					entry.Examples = append(entry.Examples, def.Example)
				}
				addSynonyms(def.Synonyms)
				addAntonyms(def.Antonyms)
			}
		}

		for _, ph := range apiEnt.Phonetics {
			if entry.PhoneticText == "" && ph.Text != "" {
				entry.PhoneticText = ph.Text
			}
			if entry.PhoneticAudioURL == "" && ph.Audio != "" {
				entry.PhoneticAudioURL = ph.Audio
				// Prefer the transcription that comes with the audio.
				if ph.Text != "" {
					entry.PhoneticText = ph.Text
				}
			}
		}
	}

	return entry
}
