package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/typeline/typeline/internal/engine"
	"github.com/typeline/typeline/internal/render"
	"github.com/typeline/typeline/internal/script"
	"github.com/typeline/typeline/internal/store"
)

// playSurface is the region the play command defines on the terminal.
// Scripts must address it by this selector; anything else fails surface
// resolution before the run begins.
const playSurface = "main"

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	Headless bool
	Record   string

	// IDGenerator overrides session ID generation (for testing).
	// Defaults to UUIDv7.
	IDGenerator store.SessionIDGenerator
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play <script.yaml>",
		Short: "Run a typing script",
		Long: `Run a typing script against a terminal surface.

The script is validated, its selector resolved to a display surface, and
the node sequence executed with per-node delays. With --headless the run
renders textual frames to stdout instead of taking over the terminal.
With --record each executed step's frame is stored for later replay.

Example:
  typeline play demo.yaml
  typeline play demo.yaml --headless
  typeline play demo.yaml --record ./runs.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Headless, "headless", false, "render frames to stdout instead of the terminal")
	cmd.Flags().StringVar(&opts.Record, "record", "", "path to a SQLite database to record the run into")

	return cmd
}

func runPlay(opts *PlayOptions, path string, cmd *cobra.Command) error {
	sc, err := script.Load(path)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load script", err)
	}
	slog.Info("script loaded", "script", sc.Name, "nodes", len(sc.Nodes))

	// Resolve the display surface.
	var resolver engine.Resolver
	var screen *render.Screen
	if opts.Headless {
		resolver = render.NewFrameWriter(cmd.OutOrStdout())
	} else {
		screen, err = render.NewScreen()
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to initialize terminal", err)
		}
		defer screen.Close()
		screen.DefineRegion(playSurface, 2, 1, 76, sc.ClearAttr)
		resolver = screen
	}

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}

	// Engine options: wire the recorder when requested.
	var engOpts []engine.Option
	if opts.Record != "" {
		st, err := store.Open(opts.Record)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()

		gen := opts.IDGenerator
		if gen == nil {
			gen = store.UUIDv7Generator{}
		}
		rec, err := store.NewRecorder(parentCtx, st, gen, sc)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to start recording", err)
		}
		slog.Info("recording run", "session_id", rec.SessionID(), "db", opts.Record)
		engOpts = append(engOpts, engine.WithObserver(rec.Observe))
	}

	eng, err := engine.New(sc, resolver, engOpts...)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to start session", err)
	}
	eng.OnStart(func() {
		slog.Debug("run started", "script", sc.Name)
	}).OnFinish(func() {
		slog.Debug("run finished", "script", sc.Name)
	})

	// Signal-driven cancellation: a looping script only stops when the
	// host tears it down.
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received signal, stopping", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := eng.Start(ctx).Wait(); err != nil && ctx.Err() == nil {
		return WrapExitError(ExitFailure, "session failed", err)
	}
	return nil
}
