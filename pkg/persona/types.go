// Package persona builds celebrity persona profiles from scraped text samples.
//
// A Persona captures the traits, speaking style, interests, and values of an
// impersonated public figure. Profiles are derived offline from a bag of text
// samples (social posts and interview quotes) using keyword-frequency
// heuristics; no model call is involved in construction.
package persona

// RawData is the raw record a data provider returns for one celebrity.
//
// Posts and Interviews are ordered lists of text samples in the source
// locale. Scalar fields may be empty; the builder supplies defaults.
type RawData struct {
	Name       string   `json:"name"`
	Profession string   `json:"profession"`
	Age        string   `json:"age"`
	Works      []string `json:"works"`
	Posts      []string `json:"posts"`
	Interviews []string `json:"interviews"`
}

// BasicInfo holds the identity fields of a persona.
type BasicInfo struct {
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Age        string `json:"age"`

	// Works is capped at 5 entries during construction.
	Works []string `json:"works"`
}

// SpeakingStyle describes how the persona phrases things.
type SpeakingStyle struct {
	// Description is a free-text summary of the overall tone.
	Description string `json:"description"`

	// CommonPhrases lists up to 10 frequent word tokens, most frequent first.
	CommonPhrases []string `json:"common_phrases"`

	// SentencePatterns lists up to 5 punctuation-habit descriptions.
	SentencePatterns []string `json:"sentence_patterns"`
}

// Persona is the complete profile of an impersonated figure.
//
// Every list field is non-empty after construction: each extractor falls back
// to an explicit default when no input text matches its heuristics. A built
// Persona is treated as immutable; it is rebuilt only when its cache entry
// is absent.
type Persona struct {
	BasicInfo           BasicInfo     `json:"basic_info"`
	PersonalityTraits   []string      `json:"personality_traits"`
	SpeakingStyle       SpeakingStyle `json:"speaking_style"`
	InterestsTopics     []string      `json:"interests_topics"`
	ExperiencesOpinions []string      `json:"experiences_opinions"`
	ValuesBeliefs       []string      `json:"values_beliefs"`
}
