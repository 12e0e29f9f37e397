// Package cli provides the command-line interface for managing the speech
// engine's pronunciation dictionary. It owns flag and configuration handling
// and talks to the dictionary exclusively through the entry manager.
package cli
