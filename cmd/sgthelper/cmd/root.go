package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sgthelper/internal/config"
	"sgthelper/internal/tui"
	"sgthelper/internal/watch"
)

var (
	// Global flags
	configPath  string
	dataPath    string
	schemaPath  string
	displayPath string
)

var rootCmd = &cobra.Command{
	Use:   "sgthelper",
	Short: "sgthelper - segment tree range viewer",
	Long: `sgthelper draws the node ranges of a segment tree as a layered diagram:
one tier per tree level, each node a bracket over the interval it covers.

Input is three texts: node data (space separated, one node per line), a
schema naming each column (s and t are required) and the columns to label.

Examples:
  sgthelper                                   # interactive viewer
  sgthelper --data nodes.txt --schema fields.txt --watch
  sgthelper render --data nodes.txt --schema fields.txt -o tree.svg`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runUI,
}

var (
	watchFiles bool
	logPath    string
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "node data file")
	rootCmd.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "", "schema file, one field name per line")
	rootCmd.PersistentFlags().StringVar(&displayPath, "display", "", "display selection file, one field name per line")

	rootCmd.Flags().BoolVarP(&watchFiles, "watch", "w", false, "reload and re-render when input files change")
	rootCmd.Flags().StringVar(&logPath, "log", "", "write debug log to this file")
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func runUI(cmd *cobra.Command, args []string) error {
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "sgthelper")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts := tui.Options{
		Config:      cfg,
		DataPath:    dataPath,
		SchemaPath:  schemaPath,
		DisplayPath: displayPath,
	}

	if watchFiles {
		w, err := watch.New(200 * time.Millisecond)
		if err != nil {
			return err
		}
		defer w.Close()
		for role, p := range map[string]string{"data": dataPath, "schema": schemaPath, "display": displayPath} {
			if p == "" {
				continue
			}
			if err := w.Add(role, p); err != nil {
				return fmt.Errorf("watch %s: %w", p, err)
			}
			log.Printf("watch: %s file %s", role, p)
		}
		opts.Watcher = w
	}

	p := tea.NewProgram(tui.New(opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
