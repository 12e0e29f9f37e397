package dictpath

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// engineDir is the engine's per-user data directory name, under
	// %APPDATA% on Windows and os.UserConfigDir elsewhere.
	engineDir = "yomi"

	binaryDictFile = "user.dic"
	textDictFile   = "user_dict.json"
)

// Resolver yields the dictionary file the entry manager should operate on.
type Resolver interface {
	DictionaryPath() (string, error)
}

// EngineResolver resolves the platform-appropriate dictionary path.
// Both fields are optional overrides, typically fed from configuration:
// Path wins outright, Dir replaces the default engine data directory.
type EngineResolver struct {
	Path string
	Dir  string
}

// DictionaryPath returns the dictionary file for this platform. The file
// itself may not exist yet; the store treats that as an empty dictionary.
func (r EngineResolver) DictionaryPath() (string, error) {
	if r.Path != "" {
		return r.Path, nil
	}

	dir := r.Dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("locate engine data directory: %w", err)
		}
		dir = filepath.Join(base, engineDir)
	}

	if runtime.GOOS == "windows" {
		return filepath.Join(dir, binaryDictFile), nil
	}
	return filepath.Join(dir, textDictFile), nil
}
