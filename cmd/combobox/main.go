// Combobox is a terminal autocomplete picker.
//
// It shows a text input with a filterable option list. Typing filters the
// list, the arrow keys walk it, Enter or a click picks an item. Ctrl+S
// accepts the value and prints it to stdout, so the binary can be used in
// shell pipelines.
//
// Usage:
//
//	combobox [flags]
//	combobox init
//	combobox version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"combobox/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "combobox",
	Short: "Terminal autocomplete picker",
	Long: `An accessible combobox for the terminal.

Options come from combobox.toml, a newline-separated data file, or
repeated --item flags. The accepted value is printed to stdout.`,
	Version:      version.Version,
	SilenceUsage: true,
	Example: `  # Pick from inline items
  combobox --label Fruit --item Apple --item Banana --item Cherry

  # Pick from a file and use the result
  branch=$(combobox --label Branch --data-file branches.txt)

  # Write a starter config
  combobox init`,
	RunE: runPicker,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default combobox.toml)")

	f := rootCmd.Flags()
	f.StringVar(&inputID, "id", "", "input element id")
	f.StringVarP(&label, "label", "l", "", "label shown above the input")
	f.StringArrayVarP(&items, "item", "i", nil, "option value (repeatable)")
	f.StringVarP(&dataFile, "data-file", "f", "", "file with one option per line (replaces the config's data_file)")
	f.IntVar(&openDelay, "open-delay", 0, "popup open animation in milliseconds")
	f.IntVar(&closeDelay, "close-delay", 0, "popup close animation in milliseconds")
	f.IntVar(&listHeight, "list-height", 0, "rows shown in the popup")
	f.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "combobox %s\n", version.String())
	},
}
