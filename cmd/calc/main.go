package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/npratt/calc/internal/config"
	"github.com/npratt/calc/internal/console"
	"github.com/npratt/calc/internal/events"
	initcmd "github.com/npratt/calc/internal/init"
	"github.com/npratt/calc/internal/interp"
	"github.com/npratt/calc/internal/monitor"
	"github.com/npratt/calc/internal/shutdown"
	"github.com/npratt/calc/internal/state"
	"github.com/npratt/calc/internal/storage"
	"github.com/npratt/calc/internal/tui"
)

var version = "dev"

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	viper.SetEnvPrefix("CALC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "A crash-resilient command-line calculator",
		Long: `calc is a line-oriented calculator (add, median, rand, help) that
survives being killed mid-command: every interaction is durably saved
before the user can see anything else, and restarting replays exactly
what the crashed run had already consumed and emitted.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .calc/config.yaml)")
	rootCmd.PersistentFlags().String(FlagLogFile, "", "Debug log file path")
	rootCmd.PersistentFlags().String(FlagState, "", "Session state file path")
	rootCmd.PersistentFlags().String(FlagAudit, "", "Audit log file path")
	rootCmd.PersistentFlags().String(FlagBackend, "", "Storage backend: file or sqlite")
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("calc %s\n", version)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the calculator's interactive loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculator(cmd, logger, logLevel)
		},
	}
	runCmd.Flags().Bool(FlagTUI, false, "Show a read-only dashboard alongside the session")
	runCmd.Flags().VisitAll(func(f *pflag.Flag) { _ = viper.BindPFlag(f.Name, f) })

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a .calc/config.yaml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			_, err = initcmd.Run(dir, initcmd.Options{
				DryRun: viper.GetBool(FlagDryRun),
				Force:  viper.GetBool(FlagForce),
				Writer: os.Stdout,
			})
			return err
		},
	}
	initCmd.Flags().Bool(FlagDryRun, false, "Show what would change without writing anything")
	initCmd.Flags().Bool(FlagForce, false, "Overwrite an existing config.yaml that differs from the default")
	initCmd.Flags().VisitAll(func(f *pflag.Flag) { _ = viper.BindPFlag(f.Name, f) })

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the session state, as if the last session had exited cleanly",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAndResolve(cmd)
			if err != nil {
				return err
			}
			store, err := storage.Open(cfg.Storage.Backend, cfg.Paths.State)
			if err != nil {
				return err
			}
			if closer, ok := store.(interface{ Close() error }); ok {
				defer closer.Close()
			}
			return state.ClearStorage(store)
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the most recent interpreter activity from the audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAndResolve(cmd)
			if err != nil {
				return err
			}
			tailer := monitor.NewLogTailer(cfg.Paths.Audit)

			if viper.GetBool(FlagWatch) {
				return tailer.Follow(cmd.Context(), os.Stdout)
			}

			store, err := storage.Open(cfg.Storage.Backend, cfg.Paths.State)
			if err != nil {
				return err
			}
			if closer, ok := store.(interface{ Close() error }); ok {
				defer closer.Close()
			}

			st, err := monitor.NewStatusSource(tailer, store).Status()
			if err != nil {
				return err
			}
			if viper.GetBool(FlagJSON) {
				data, err := json.MarshalIndent(st, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}
			fmt.Printf("Run: %s\n", st.RunID)
			fmt.Printf("Last command: %s\n", st.LastCommand)
			fmt.Printf("Replay depth: %d\n", st.ReplayDepth)
			fmt.Printf("Lines to skip: %d\n", st.LinesToSkip)
			if st.HasLastRandom {
				fmt.Printf("Last random: %d\n", st.LastRandom)
			}
			fmt.Printf("Events seen: %d\n", st.EventCount)
			return nil
		},
	}
	statusCmd.Flags().Bool(FlagWatch, false, "Follow new activity instead of printing a snapshot")
	statusCmd.Flags().Bool(FlagJSON, false, "Output status as JSON")
	statusCmd.Flags().VisitAll(func(f *pflag.Flag) { _ = viper.BindPFlag(f.Name, f) })

	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "View the audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAndResolve(cmd)
			if err != nil {
				return err
			}
			tailer := monitor.NewLogTailer(cfg.Paths.Audit)

			if viper.GetBool(FlagFollow) {
				return tailer.Follow(cmd.Context(), os.Stdout)
			}
			lines, err := tailer.Last(viper.GetInt(FlagCount))
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Println(line)
			}
			return nil
		},
	}
	eventsCmd.Flags().Bool(FlagFollow, false, "Follow the audit log as it grows")
	eventsCmd.Flags().Int(FlagCount, 20, "Number of recent events to show")
	eventsCmd.Flags().VisitAll(func(f *pflag.Flag) { _ = viper.BindPFlag(f.Name, f) })

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only HTTP status endpoint over the audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAndResolve(cmd)
			if err != nil {
				return err
			}
			addr := cfg.Serve.Addr
			if viper.GetString(FlagAddr) != "" {
				addr = viper.GetString(FlagAddr)
			}

			store, err := storage.Open(cfg.Storage.Backend, cfg.Paths.State)
			if err != nil {
				return err
			}
			if closer, ok := store.(interface{ Close() error }); ok {
				defer closer.Close()
			}

			tailer := monitor.NewLogTailer(cfg.Paths.Audit)
			source := monitor.NewStatusSource(tailer, store)
			srv := &http.Server{Addr: addr, Handler: monitor.NewHandler(source)}

			logger.Info("monitoring endpoint listening", "addr", addr)
			return shutdown.Graceful(
				cmd.Context(),
				logger,
				5*time.Second,
				func(ctx context.Context) error {
					err := srv.ListenAndServe()
					if err == http.ErrServerClosed {
						return nil
					}
					return err
				},
				func(ctx context.Context) error {
					return srv.Shutdown(ctx)
				},
			)
		},
	}
	serveCmd.Flags().String(FlagAddr, "", "Listen address (default from config)")
	serveCmd.Flags().VisitAll(func(f *pflag.Flag) { _ = viper.BindPFlag(f.Name, f) })

	rootCmd.AddCommand(versionCmd, runCmd, initCmd, resetCmd, statusCmd, eventsCmd, serveCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// loadAndResolve loads config per the standard precedence chain and
// resolves its paths relative to the project root.
func loadAndResolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed(FlagLogFile) {
		cfg.Paths.Log = viper.GetString(FlagLogFile)
	}
	if cmd.Flags().Changed(FlagState) {
		cfg.Paths.State = viper.GetString(FlagState)
	}
	if cmd.Flags().Changed(FlagAudit) {
		cfg.Paths.Audit = viper.GetString(FlagAudit)
	}
	if cmd.Flags().Changed(FlagBackend) {
		cfg.Storage.Backend = viper.GetString(FlagBackend)
	}

	projectRoot := config.FindProjectRoot("")
	cfg.Paths, err = config.ResolvePaths(cfg.Paths, projectRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve paths: %w", err)
	}
	return cfg, nil
}

func runCalculator(cmd *cobra.Command, logger *slog.Logger, logLevel *slog.LevelVar) error {
	if viper.GetBool(FlagVerbose) {
		logLevel.Set(slog.LevelDebug)
	}

	cfg, err := loadAndResolve(cmd)
	if err != nil {
		return err
	}

	tuiEnabled := viper.GetBool(FlagTUI)
	if !cmd.Flags().Changed(FlagTUI) {
		tuiEnabled = cfg.TUI.Enabled && term.IsTerminal(int(os.Stdout.Fd()))
	}

	runID := uuid.NewString()

	store, err := storage.Open(cfg.Storage.Backend, cfg.Paths.State)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	st, err := state.LoadOrDefault(store)
	if err != nil {
		return fmt.Errorf("load session state: %w", err)
	}

	router := events.NewRouter(events.DefaultBufferSize)
	defer router.Close()

	var auditSink *events.AuditSink
	if cfg.Audit.Enabled {
		auditSink = events.NewAuditSink(cfg.Paths.Audit)
		ctx, cancel := context.WithCancel(cmd.Context())
		auditEvents := router.Subscribe()
		if err := auditSink.Start(ctx, auditEvents); err != nil {
			cancel()
			return fmt.Errorf("start audit sink: %w", err)
		}
		// cancel must run before Stop: Stop waits for the drain goroutine,
		// which only exits once ctx is done or its channel closes.
		defer func() {
			cancel()
			auditSink.Stop()
		}()
	}

	activeLogger := logger
	var tuiLog *TUILoggerResult
	if tuiEnabled {
		tuiLog, err = SetupTUILogger(cfg.Paths.Log, logLevel, cfg.LogRotation)
		if err != nil {
			return err
		}
		defer tuiLog.Close()
		activeLogger = tuiLog.Logger
		slog.SetDefault(activeLogger)
	}

	raw := console.NewStdio(os.Stdin, os.Stdout)
	rc := console.New(raw, store, st)
	rc.Observe(router, runID)

	i := interp.New(rc, st, store)
	i.Observe(router, runID)

	router.Emit(&events.ProcessEvent{BaseEvent: events.NewEvent(events.EventProcessStart, runID)})
	router.Emit(&events.StateEvent{
		BaseEvent:     events.NewEvent(events.EventStateLoad, runID),
		LoadedQueries: len(st.LoadedQueries),
		LinesToSkip:   int(st.LinesToSkip),
	})
	activeLogger.Info("calc starting", "version", version, "run_id", runID, "state_file", cfg.Paths.State)

	if tuiEnabled {
		tuiEvents := router.SubscribeBuffered(1000)
		defer router.Unsubscribe(tuiEvents)
		dash := tui.New(tuiEvents, runID)
		return dash.Run(func() (bool, error) { return i.Run() })
	}

	exited, runErr := i.Run()
	if runErr != nil {
		router.Emit(&events.ProcessEvent{BaseEvent: events.NewEvent(events.EventProcessCrash, runID), Detail: runErr.Error()})
		return runErr
	}
	if exited {
		router.Emit(&events.ProcessEvent{BaseEvent: events.NewEvent(events.EventProcessShutdown, runID), Detail: "exit"})
	} else {
		router.Emit(&events.ProcessEvent{BaseEvent: events.NewEvent(events.EventProcessShutdown, runID), Detail: "eof"})
	}
	return nil
}
