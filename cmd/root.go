// Package cmd implements the zxconsole CLI entry point: flag parsing,
// config loading, and wiring the core (Session, BreakpointEngine,
// ConsoleContext, command Registry) to either an interactive REPL or a
// non-interactive script runner.
package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/breakpoint"
	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/command/verbs"
	"github.com/zxconsole/zxconsole/internal/config"
	"github.com/zxconsole/zxconsole/internal/console"
	"github.com/zxconsole/zxconsole/internal/format"
	"github.com/zxconsole/zxconsole/internal/history"
	"github.com/zxconsole/zxconsole/internal/log"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/symbols"
	"github.com/zxconsole/zxconsole/internal/telemetry"
	"github.com/zxconsole/zxconsole/internal/tui"
	"github.com/zxconsole/zxconsole/internal/watcher"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	versionString    string
	cfgFile          string
	connectAddr      string
	scriptFile       string
	debugFlag        bool
	noHistoryFlag    bool
	telemetryFlag    bool
	telemetryExport  string
	tuiFlag          bool
)

var rootCmd = &cobra.Command{
	Use:   "zxconsole",
	Short: "An interactive, symbol-aware source-level debugger client",
	Long:  `zxconsole connects to a remote debug agent and provides thread, breakpoint, and stack inspection over a small command language.`,
	RunE:  runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/zxconsole/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&connectAddr, "connect", "",
		"host:port of a remote debug agent (default: run against an in-process fake agent)")
	rootCmd.PersistentFlags().StringVar(&scriptFile, "script", "",
		"read commands from this file instead of stdin, non-interactively")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"enable debug logging (also: ZXCONSOLE_DEBUG=1)")
	rootCmd.PersistentFlags().BoolVar(&noHistoryFlag, "no-history", false,
		"disable persisting command and breakpoint-hit history to disk")
	rootCmd.PersistentFlags().BoolVar(&telemetryFlag, "telemetry", false,
		"enable OpenTelemetry tracing of command dispatch and breakpoint hits")
	rootCmd.PersistentFlags().StringVar(&telemetryExport, "telemetry-exporter", "stdout",
		"telemetry exporter when --telemetry is set: stdout or otlp")
	rootCmd.PersistentFlags().BoolVar(&tuiFlag, "tui", false,
		"run the interactive Bubble Tea console instead of the plain-text shell")
}

// SetVersion records the build-time version string printed by --version.
func SetVersion(v string) {
	versionString = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	debug := os.Getenv("ZXCONSOLE_DEBUG") != "" || debugFlag
	if debug {
		cleanup, err := log.InitWithTeaLog("zxconsole-debug.log", "zxconsole")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()
		log.Info(log.CatConfig, "zxconsole starting", "version", versionString, "debug", true)
	}

	cfg := config.New()
	usedPath, err := cfg.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if usedPath != "" {
		log.Info(log.CatConfig, "config loaded", "path", usedPath)
		if w, err := watcher.New(watcher.DefaultConfig(usedPath)); err != nil {
			log.ErrorErr(log.CatConfig, "config watcher unavailable, live reload disabled", err)
		} else if changes, err := w.Start(); err != nil {
			log.ErrorErr(log.CatConfig, "config watcher unavailable, live reload disabled", err)
		} else {
			defer w.Stop()
			go func() {
				for range changes {
					if err := cfg.Reload(); err != nil {
						log.ErrorErr(log.CatConfig, "reloading config", err)
					}
				}
			}()
		}
	}

	transport, svc, err := dial(connectAddr)
	if err != nil {
		return fmt.Errorf("connecting to agent: %w", err)
	}

	sess := model.NewSession(transport, svc)
	sess.SetSettings(cfg)
	if err := sess.Connect(cmd.Context()); err != nil {
		return fmt.Errorf("session handshake: %w", err)
	}
	defer sess.Disconnect()

	engine := breakpoint.NewEngine(sess.System(), transport, svc)
	ctx := console.New(sess, engine, format.NewConsoleFormatter(format.LipglossRenderer{}))
	ctx.SetOutput(func(s string) { fmt.Println(s) })

	reg := command.NewRegistry()
	verbs.RegisterAll(reg, verbs.Deps{Session: sess, Engine: engine})

	prov, err := telemetry.NewProvider(telemetryConfig())
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer prov.Shutdown(cmd.Context())

	var hist *history.DB
	if !noHistoryFlag {
		hist, err = history.NewDB(historyDBPath())
		if err != nil {
			log.ErrorErr(log.CatHistory, "opening history db, continuing without it", err)
			hist = nil
		} else {
			defer hist.Close()
		}
	}
	dispatch := telemetry.WrapDispatch(prov.Tracer(), reg.Dispatch)

	if tuiFlag && scriptFile == "" {
		return runTUI(ctx, reg, dispatch, hist, onStopHook(prov, hist))
	}

	ctx.SetOnStop(onStopHook(prov, hist))

	sh := &shell{
		ctx:      ctx,
		reg:      reg,
		hist:     hist,
		dispatch: dispatch,
	}
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		return sh.runScript(cmd.Context(), f)
	}
	return sh.runInteractive(cmd.Context(), os.Stdin, os.Stdout)
}

// runTUI launches the interactive Bubble Tea console (--tui). Its root
// Model installs its own console.Context.SetOutput sink, so stop headers
// and display-expression results render in the output pane rather than
// stdout; onStop is passed in so the Model can chain it behind its own
// tab-switching behavior instead of the caller and the Model fighting over
// Context's single onStop slot.
func runTUI(cctx *console.Context, reg *command.Registry, dispatch func(context.Context, *command.BoundCommand) (command.Outcome, error), hist *history.DB, onStop func(targetID, threadID, breakpointID int, reason string)) error {
	m := tui.New(tui.Deps{
		Context:  cctx,
		Registry: reg,
		Dispatch: dispatch,
		History:  hist,
		OnStop:   onStop,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	if closeErr := m.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func telemetryConfig() telemetry.Config {
	cfg := telemetry.DefaultConfig()
	cfg.Enabled = telemetryFlag
	cfg.Exporter = telemetryExport
	return cfg
}

// historyDBPath places the history database next to where config.Store
// looks for ~/.config/zxconsole/config.yaml (internal/config.Store.Load).
func historyDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "zxconsole", "history.db")
}

// onStopHook fans one on-stop sequence out to telemetry and, when the stop
// landed on a breakpoint, history (spec §4.8's on-stop sequence, extended
// per console.Context.SetOnStop).
func onStopHook(prov *telemetry.Provider, hist *history.DB) func(targetID, threadID, breakpointID int, reason string) {
	span := telemetry.OnStop(prov.Tracer())
	return func(targetID, threadID, breakpointID int, reason string) {
		span(targetID, threadID, breakpointID, reason)
		if hist == nil || breakpointID == 0 {
			return
		}
		if err := hist.RecordBreakpointHit(breakpointID, targetID, threadID, reason); err != nil {
			log.ErrorErr(log.CatHistory, "recording breakpoint hit", err)
		}
	}
}

// dial builds the agent.Transport and symbols.Service pair for addr. An
// empty addr runs against an in-process fake agent and a fixture symbol
// service, matching the zxagentstub smoke-test binary (SPEC_FULL.md §0);
// symbol-file acquisition for a real agent is a non-goal (spec §1), so a
// live connection still uses the fixture symbol service.
func dial(addr string) (agent.Transport, symbols.Service, error) {
	svc := symbols.NewCachedService(symbols.NewFakeService())
	if addr == "" {
		return agent.NewLoopbackTransport(), svc, nil
	}
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		return nil, nil, err
	}
	return agent.NewFramedTransport(conn), svc, nil
}
