package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/yomi/internal"
	"codeberg.org/snonux/yomi/internal/dict"
	"codeberg.org/snonux/yomi/internal/dictpath"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "yomi",
		Short: "Pronunciation dictionary manager for speech synthesis",
		Long: `yomi maintains the user pronunciation dictionary of the installed
speech synthesis engine. It reads and writes the engine's own dictionary
file: the binary user.dic on Windows, a JSON dictionary elsewhere.

Examples:
  yomi add 東京 トーキョー          # Override how 東京 is read
  yomi remove 東京                  # Drop the override again
  yomi list                         # Show every entry
  yomi convert user.dic words.json  # Re-encode between formats`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.yomi.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.DictPath, "dictionary", "", "Dictionary file to operate on (overrides platform resolution)")
	rootCmd.PersistentFlags().StringVar(&flags.DictDir, "engine-dir", "", "Engine data directory holding the dictionary")
	bindFlagsToViper(rootCmd)

	rootCmd.AddCommand(
		newAddCommand(flags),
		newRemoveCommand(flags),
		newFindCommand(flags),
		newListCommand(flags),
		newClearCommand(flags),
		newPathCommand(flags),
		newConvertCommand(),
	)

	return rootCmd
}

func newAddCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <surface> <pronunciation>",
		Short: "Add or replace a pronunciation override",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, store, err := openManager(flags)
			if err != nil {
				return err
			}
			entry := dict.Entry{
				SurfaceForm:   args[0],
				Pronunciation: args[1],
				PartOfSpeech:  flags.PartOfSpeech,
				Priority:      flags.Priority,
				AccentType:    flags.AccentType,
				Language:      flags.Language,
			}
			if err := mgr.Add(entry); err != nil {
				return err
			}
			fmt.Printf("Added %s → %s (%s dictionary)\n", args[0], args[1], store.Format())
			return nil
		},
	}
	addEntryFlags(cmd.Flags(), flags)
	return cmd
}

// addEntryFlags registers the flags describing a dictionary entry.
func addEntryFlags(fs *pflag.FlagSet, flags *Flags) {
	fs.StringVar(&flags.PartOfSpeech, "pos", flags.PartOfSpeech, "Part of speech tag")
	fs.IntVar(&flags.Priority, "priority", flags.Priority, "Entry priority (higher wins)")
	fs.IntVar(&flags.AccentType, "accent", flags.AccentType, "Accent type (0 = heiban; text dictionary only)")
	fs.StringVar(&flags.Language, "lang", flags.Language, "Entry language")
}

func newRemoveCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a pronunciation override by its comparison key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, store, err := openManager(flags)
			if err != nil {
				return err
			}
			removed, err := mgr.Remove(args[0], flags.Language)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Printf("No entry for %s (key is the %s here)\n", args[0], store.Policy())
				return nil
			}
			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.Language, "lang", flags.Language, "Entry language")
	return cmd
}

func newFindCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "find <key>",
		Short: "Show the entries matching a comparison key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, store, err := openManager(flags)
			if err != nil {
				return err
			}
			matches, err := mgr.Find(args[0])
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Printf("No entry for %s (key is the %s here)\n", args[0], store.Policy())
				return nil
			}
			printEntries(matches)
			return nil
		},
	}
}

func newListCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every dictionary entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, store, err := openManager(flags)
			if err != nil {
				return err
			}
			entries, err := mgr.All()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Printf("Dictionary is empty: %s\n", store.Path())
				return nil
			}
			printEntries(entries)
			fmt.Printf("%d entries in %s\n", len(entries), store.Path())
			return nil
		},
	}
}

func newClearCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry from the dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, store, err := openManager(flags)
			if err != nil {
				return err
			}
			if err := mgr.Clear(); err != nil {
				return err
			}
			fmt.Printf("Cleared %s\n", store.Path())
			return nil
		},
	}
}

func newPathCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved dictionary path and its format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveDictionary(flags)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", path, dict.FormatForPath(path))
			return nil
		},
	}
}

func newConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <source> <destination>",
		Short: "Re-encode a dictionary between the binary and text formats",
		Long: `convert reads every entry from the source dictionary and writes it to the
destination; both formats are inferred from the file suffixes. Converting to
the binary format drops the fields it cannot store (surface form, accent
type), same as managing the binary dictionary directly.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := dict.NewStore(args[0])
			dst := dict.NewStore(args[1])
			entries, err := src.ReadAll()
			if err != nil {
				return err
			}
			if err := dst.WriteAll(entries); err != nil {
				return err
			}
			fmt.Printf("Converted %d entries: %s (%s) → %s (%s)\n",
				len(entries), src.Path(), src.Format(), dst.Path(), dst.Format())
			return nil
		},
	}
}

// openManager builds the entry manager for the resolved dictionary file.
func openManager(flags *Flags) (*dict.Manager, *dict.Store, error) {
	path, err := resolveDictionary(flags)
	if err != nil {
		return nil, nil, err
	}
	store := dict.NewStore(path)
	return dict.NewManager(store), store, nil
}

// resolveDictionary applies the flag/config overlay and asks the platform
// resolver for the dictionary file.
func resolveDictionary(flags *Flags) (string, error) {
	path := flags.DictPath
	if path == "" {
		path = viper.GetString("dictionary.path")
	}
	dir := flags.DictDir
	if dir == "" {
		dir = viper.GetString("dictionary.dir")
	}
	return dictpath.EngineResolver{Path: path, Dir: dir}.DictionaryPath()
}

func printEntries(entries []dict.Entry) {
	for _, e := range entries {
		fmt.Printf("%s → %s  (pos %s, priority %d, accent %d, lang %s)\n",
			e.SurfaceForm, e.Pronunciation, e.PartOfSpeech, e.Priority, e.AccentType, e.Language)
	}
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("dictionary.path", cmd.PersistentFlags().Lookup("dictionary"))
	viper.BindPFlag("dictionary.dir", cmd.PersistentFlags().Lookup("engine-dir"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".yomi" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".yomi")
	}

	// Environment variables
	viper.SetEnvPrefix("YOMI")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
