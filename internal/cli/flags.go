package cli

import "codeberg.org/snonux/yomi/internal/dict"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile  string
	DictPath string
	DictDir  string

	// Entry flags
	PartOfSpeech string
	Priority     int
	AccentType   int
	Language     string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		PartOfSpeech: dict.DefaultPartOfSpeech,
		Priority:     dict.DefaultPriority,
		AccentType:   dict.DefaultAccentType,
		Language:     dict.DefaultLanguage,
	}
}
