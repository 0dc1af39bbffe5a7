package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/typeline/typeline/internal/engine"
	"github.com/typeline/typeline/internal/store"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	SessionID string
	Speed     float64

	// Scheduler overrides the delay scheduler (for testing).
	Scheduler engine.Scheduler
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <db>",
		Short: "Replay a recorded typing session",
		Long: `Replay a recorded typing session from a SQLite database.

Without --session, lists the recorded sessions. With --session, renders
the session's frames to stdout in their original order, waiting each
frame's recorded delay (divided by --speed).

Example:
  typeline replay ./runs.db
  typeline replay ./runs.db --session 0190-a1b2 --speed 4`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.SessionID, "session", "", "session ID to replay")
	cmd.Flags().Float64Var(&opts.Speed, "speed", 1.0, "playback speed multiplier")

	return cmd
}

func runReplay(opts *ReplayOptions, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.SessionID == "" {
		return listSessions(ctx, st, formatter)
	}
	return replaySession(ctx, st, opts, cmd)
}

func listSessions(ctx context.Context, st *store.Store, formatter *OutputFormatter) error {
	sessions, err := st.ListSessions(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list sessions", err)
	}
	if len(sessions) == 0 {
		return formatter.Success("no recorded sessions")
	}

	if formatter.Format == "json" {
		type listed struct {
			ID        string `json:"id"`
			Script    string `json:"script"`
			Selector  string `json:"selector"`
			CreatedAt string `json:"created_at"`
		}
		out := make([]listed, 0, len(sessions))
		for _, s := range sessions {
			out = append(out, listed{s.ID, s.Script, s.Selector, s.CreatedAt})
		}
		return formatter.Success(out)
	}

	for _, s := range sessions {
		fmt.Fprintf(formatter.Writer, "%s  %s  (%s)  %s\n", s.ID, s.Script, s.Selector, s.CreatedAt)
	}
	return nil
}

func replaySession(ctx context.Context, st *store.Store, opts *ReplayOptions, cmd *cobra.Command) error {
	if opts.Speed <= 0 {
		return NewExitError(ExitCommandError, "speed must be positive")
	}

	frames, err := st.ReadFrames(ctx, opts.SessionID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read frames", err)
	}
	if len(frames) == 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("no frames recorded for session %s", opts.SessionID))
	}

	sched := opts.Scheduler
	if sched == nil {
		sched = engine.TimerScheduler{}
	}

	out := cmd.OutOrStdout()
	for _, f := range frames {
		delay := time.Duration(float64(f.Delay) / opts.Speed)
		if err := sched.Sleep(ctx, delay); err != nil {
			return err
		}
		fmt.Fprintln(out, f.Frame)
	}
	return nil
}
