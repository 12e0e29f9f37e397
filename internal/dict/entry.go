package dict

// Default field values for a dictionary entry. An entry read from a file (or
// passed in by a caller) may leave any of these unset; ApplyDefaults fills
// them in before the entry is compared or persisted.
const (
	DefaultPartOfSpeech = "Japanese_Futsuu_meishi"
	DefaultPriority     = 5
	DefaultAccentType   = 0
	DefaultLanguage     = "ja"
)

// Entry is the format-independent dictionary entry. The JSON tags define the
// text dictionary format; the binary format stores a lossy projection of it.
type Entry struct {
	// SurfaceForm is the text span the override applies to. The binary
	// format cannot persist it (see entryFromRecord).
	SurfaceForm string `json:"sur"`
	// Pronunciation is the reading in katakana.
	Pronunciation string `json:"pron"`
	PartOfSpeech  string `json:"pos"`
	Priority      int    `json:"priority"`
	AccentType    int    `json:"accentType"`
	Language      string `json:"lang"`
}

// ApplyDefaults returns e with every unset field replaced by its default.
// A zero Priority counts as unset; the engine's priorities start at 1.
func ApplyDefaults(e Entry) Entry {
	if e.PartOfSpeech == "" {
		e.PartOfSpeech = DefaultPartOfSpeech
	}
	if e.Priority == 0 {
		e.Priority = DefaultPriority
	}
	if e.Language == "" {
		e.Language = DefaultLanguage
	}
	return e
}

// ComparisonPolicy selects which field identifies "the same entry" for
// upsert, remove and find. The binary format never stores a surface form, so
// the pronunciation is the closest identity it has; the text format keys on
// the surface form.
type ComparisonPolicy int

const (
	CompareBySurfaceForm ComparisonPolicy = iota
	CompareByPronunciation
)

// Key extracts the comparison key of e under the policy.
func (p ComparisonPolicy) Key(e Entry) string {
	if p == CompareByPronunciation {
		return e.Pronunciation
	}
	return e.SurfaceForm
}

func (p ComparisonPolicy) String() string {
	if p == CompareByPronunciation {
		return "pronunciation"
	}
	return "surface form"
}

// languageOf returns the entry's language, defaulted. Entries loaded from
// older dictionary files may carry an empty language field.
func languageOf(e Entry) string {
	if e.Language == "" {
		return DefaultLanguage
	}
	return e.Language
}
