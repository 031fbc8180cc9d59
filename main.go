package main

import (
	"fmt"
	"net/url"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"docfinder/internal/config"
	"docfinder/internal/directory"
	"docfinder/internal/domain"
	"docfinder/internal/ui"
	"docfinder/internal/ui/services/events"
	"docfinder/internal/ui/services/query"
	"docfinder/internal/ui/services/search"
	"docfinder/internal/ui/services/sorting"
)

var (
	// Global flags
	endpoint   string
	rawQuery   string
	configPath string
	timeout    time.Duration
	logFile    string
	verbose    bool
	printLink  bool

	// Logger
	logger *zap.Logger
	cfg    *config.Config

	// Set when the first run wrote the default config
	configCreated string
)

// rootCmd starts the browser
var rootCmd = &cobra.Command{
	Use:   "docfinder [link]",
	Short: "Browse a doctor directory in the terminal",
	Long: `docfinder fetches a doctor directory once and lets you narrow it down
by name, consultation type and specialty, and sort it by fee or experience.

The current filters are kept in a shareable link such as
  docfinder://browse?consultation=Video+Consult&specialties=Dentist&sort=fees
Pass a link (or --query) to start from those filters. The final link is
printed when the browser exits.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, err = newLogger(cfg.LogFile, verbose)
		if err != nil {
			// The browser works without a log file
			fmt.Fprintf(os.Stderr, "docfinder: %v\n", err)
			logger = zap.NewNop()
		}
		if configCreated != "" {
			logger.Info("wrote default config", zap.String("path", configCreated))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := rawQuery
		if len(args) == 1 {
			seed = args[0]
		}
		return run(seed)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "Directory URL or file path (default from config)")
	rootCmd.Flags().StringVarP(&rawQuery, "query", "q", "", "Initial filters as a query string, e.g. 'search=bob&sort=fees'")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/docfinder/config.toml)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "Fetch timeout (default from config)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Log file (default from config)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&printLink, "print-link", false, "Print the normalized link for the initial filters and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "docfinder: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	svc := config.NewConfigService()
	if configPath != "" {
		svc = config.NewConfigServiceAt(configPath)
	}

	loaded, created, err := config.LoadOrCreate(svc)
	switch {
	case err != nil && loaded != nil:
		// The defaults still work when the file cannot be written
		fmt.Fprintf(os.Stderr, "docfinder: failed to write %s: %v\n", svc.Path(), err)
	case err != nil:
		if configPath != "" {
			return nil, err
		}
		// A broken default config should not keep the browser from starting
		fmt.Fprintf(os.Stderr, "docfinder: %v, using defaults\n", err)
		loaded = config.DefaultConfig()
	case created:
		configCreated = svc.Path()
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		loaded.Endpoint = endpoint
	}
	if flags.Changed("timeout") {
		loaded.Timeout = config.Duration{Duration: timeout}
	}
	if flags.Changed("log-file") {
		loaded.LogFile = logFile
	}
	return loaded, nil
}

// newLogger writes JSON logs to path; the terminal belongs to the UI
func newLogger(path string, verbose bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return l, nil
}

// seedStore parses the initial address. A malformed one is logged and ignored.
func seedStore(raw string) *query.ValuesStore {
	values, err := query.ParseAddress(raw)
	if err != nil {
		logger.Warn("ignoring malformed link", zap.String("link", raw), zap.Error(err))
		values = url.Values{}
	}
	return query.NewValuesStore(values)
}

func run(seed string) error {
	bus := events.NewBus()
	logEvents(bus, logger)

	q := query.NewService(seedStore(seed), bus)
	if printLink {
		// Normalize through the filter state so unknown keys are dropped
		q.WriteState(q.Seed())
		fmt.Println(q.Link())
		return nil
	}

	src, err := directory.NewSource(cfg.Endpoint, cfg.Timeout.Duration, logger)
	if err != nil {
		return err
	}

	logger.Info("starting docfinder",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("link", q.Link()))

	model := ui.NewModel(cfg, src, q, bus, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("error running program", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}

	link := model.Address()
	logger.Info("docfinder exited", zap.String("link", link))
	fmt.Println(link)
	return nil
}

// logEvents records UI events in the log
func logEvents(bus *events.Bus, logger *zap.Logger) {
	bus.Subscribe(events.TypeOf(domain.DirectoryLoadedEvent{}), func(e interface{}) {
		event := e.(domain.DirectoryLoadedEvent)
		logger.Info("directory ready", zap.Int("doctors", event.Count), zap.Bool("failed", event.Failed))
	})
	bus.Subscribe(events.TypeOf(domain.FilterChangedEvent{}), func(e interface{}) {
		event := e.(domain.FilterChangedEvent)
		logger.Debug("filters changed",
			zap.String("field", event.Field),
			zap.String("address", event.Address),
			zap.Int("visible", event.Visible))
	})
	bus.Subscribe(events.TypeOf(domain.SuggestionPickedEvent{}), func(e interface{}) {
		logger.Debug("suggestion picked", zap.String("name", e.(domain.SuggestionPickedEvent).Name))
	})
	bus.Subscribe(events.TypeOf(domain.LinkCopiedEvent{}), func(e interface{}) {
		logger.Info("link copied", zap.String("link", e.(domain.LinkCopiedEvent).Link))
	})
	bus.Subscribe(events.TypeOf(domain.ErrorEvent{}), func(e interface{}) {
		event := e.(domain.ErrorEvent)
		logger.Warn(event.Message, zap.Error(event.Err))
	})

	// Service level events
	bus.Subscribe(events.TypeOf(query.AddressChangedEvent{}), func(e interface{}) {
		event := e.(query.AddressChangedEvent)
		logger.Debug("address changed", zap.String("key", event.Key), zap.String("address", event.Address))
	})
	bus.Subscribe(events.TypeOf(sorting.SortKeyChangedEvent{}), func(e interface{}) {
		event := e.(sorting.SortKeyChangedEvent)
		logger.Debug("sort key changed",
			zap.String("from", string(event.OldKey)),
			zap.String("to", string(event.NewKey)))
	})
	bus.Subscribe(events.TypeOf(search.SuggestionsUpdatedEvent{}), func(e interface{}) {
		event := e.(search.SuggestionsUpdatedEvent)
		logger.Debug("suggestions updated", zap.String("query", event.Query), zap.Int("count", event.Count))
	})
	bus.Subscribe(events.TypeOf(search.SuggestionsClearedEvent{}), func(e interface{}) {
		logger.Debug("suggestions cleared")
	})
	bus.Subscribe(events.TypeOf(search.SuggestionHighlightedEvent{}), func(e interface{}) {
		event := e.(search.SuggestionHighlightedEvent)
		logger.Debug("suggestion highlighted", zap.Int("from", event.OldIndex), zap.Int("to", event.NewIndex))
	})
}
