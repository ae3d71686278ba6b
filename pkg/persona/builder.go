package persona

// maxWorks caps the number of representative works kept in a persona.
const maxWorks = 5

// Builder assembles complete Persona records from raw scraped data.
//
// Building is pure and idempotent: the input is never mutated, and identical
// input always yields an identical Persona.
type Builder struct{}

// NewBuilder creates a new persona builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildPersona populates a Persona field-by-field from raw data.
//
// Missing scalar fields default ("未知" for the name, empty string for the
// age); Works is truncated to 5 entries; every list field is guaranteed
// non-empty by the extractor fallbacks.
func (b *Builder) BuildPersona(data *RawData) *Persona {
	name := data.Name
	if name == "" {
		name = "未知"
	}

	works := data.Works
	if len(works) > maxWorks {
		works = works[:maxWorks]
	}

	return &Persona{
		BasicInfo: BasicInfo{
			Name:       name,
			Profession: ExtractProfession(data.Posts),
			Age:        data.Age,
			Works:      append([]string(nil), works...),
		},
		PersonalityTraits:   ExtractPersonality(data.Posts),
		SpeakingStyle:       AnalyzeSpeakingStyle(data.Posts),
		InterestsTopics:     ExtractInterests(data.Posts),
		ExperiencesOpinions: ExtractExperiences(data.Posts, data.Interviews),
		ValuesBeliefs:       ExtractValues(data.Posts, data.Interviews),
	}
}
