package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"innerwork/internal/bootstrap"
	historydto "innerwork/internal/modules/history/dto"
	recorderdto "innerwork/internal/modules/recorder/dto"
	"innerwork/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var journalPath string

	root := &cobra.Command{
		Use:           "innerwork",
		Short:         "Shadow work journal and 369 manifestation companion",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&journalPath, "journal", ".", "journal directory path")

	root.AddCommand(newTUICmd(&journalPath))
	root.AddCommand(newJournalCmd(&journalPath))
	root.AddCommand(newRitualCmd(&journalPath))
	root.AddCommand(newHistoryCmd(&journalPath))
	root.AddCommand(newInsightsCmd(&journalPath))
	root.AddCommand(newRecorderCmd(&journalPath))
	root.AddCommand(newReindexCmd(&journalPath))
	return root
}

func loadApp(journalPath string) (*bootstrap.App, error) {
	cfg, err := config.New(journalPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(journalPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run innerwork terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(*journalPath, app)
		},
	}
}

func newJournalCmd(journalPath *string) *cobra.Command {
	journal := &cobra.Command{Use: "journal", Short: "Shadow work reflections"}

	journal.AddCommand(&cobra.Command{
		Use:   "prompt",
		Short: "Show today's reflection prompt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			prompt, err := app.JournalCLI.PromptToday(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", prompt.Day, prompt.Prompt)
			return nil
		},
	})

	var text, mood, mediaKind, mediaFile, recordWith string
	var maxSeconds int
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a reflection entry for today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			payload, err := resolveMediaPayload(context.Background(), app.RecorderCLI.Capture, mediaOptions{
				RecordWith: recordWith,
				MediaKind:  mediaKind,
				MediaFile:  mediaFile,
				MaxSeconds: maxSeconds,
			})
			if err != nil {
				return err
			}
			out, err := app.JournalCLI.AddEntry(context.Background(), text, mood, mediaKind, payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "entry added: %s mood=%s note=%s\n", out.ID, out.Mood, out.NotePath)
			if out.MediaPath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "media=%s\n", out.MediaPath)
			}
			return nil
		},
	}
	add.Flags().StringVar(&text, "text", "", "reflection text")
	add.Flags().StringVar(&mood, "mood", "neutral", "mood: happy|neutral|sad")
	add.Flags().StringVar(&mediaKind, "media-kind", "", "recording kind: audio|video")
	add.Flags().StringVar(&mediaFile, "media-file", "", "recording payload file")
	add.Flags().StringVar(&recordWith, "record-with", "", "capture the recording through this recorder plugin")
	add.Flags().IntVar(&maxSeconds, "max-seconds", 0, "capture duration limit for --record-with")
	journal.AddCommand(add)

	journal.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List reflection entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			entries, err := app.JournalCLI.ListEntries(context.Background())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no entries")
				return nil
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", e.ID, e.Date.Format("2006-01-02"), e.Mood, e.Prompt)
			}
			return nil
		},
	})

	var showID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show one reflection entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			e, err := app.JournalCLI.GetEntry(context.Background(), showID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\ndate: %s\nmood: %s\nprompt: %s\nnote: %s\n", e.ID, e.Date.Format(time.RFC3339), e.Mood, e.Prompt, e.NotePath)
			if e.MediaKind != "" && e.MediaKind != "none" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "media: %s (%s)\n", e.MediaPath, e.MediaKind)
			}
			if strings.TrimSpace(e.Text) != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), e.Text)
			}
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "entry id")
	journal.AddCommand(show)

	var deleteID string
	deleteCmd := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a reflection entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			if err := app.JournalCLI.DeleteEntry(context.Background(), deleteID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "entry deleted: %s\n", deleteID)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "entry id")
	journal.AddCommand(deleteCmd)

	return journal
}

// captureFunc matches RecorderCLI.Capture so the flag plumbing can be
// exercised without a live plugin binary.
type captureFunc func(ctx context.Context, recorderName, kind string, maxSeconds int) (recorderdto.CaptureOutput, error)

type mediaOptions struct {
	RecordWith string
	MediaKind  string
	MediaFile  string
	MaxSeconds int
}

// resolveMediaPayload produces the base64 recording payload for a new
// entry: captured live through a recorder plugin, or read from a local
// file. Text-only entries resolve to an empty payload.
func resolveMediaPayload(ctx context.Context, capture captureFunc, opts mediaOptions) (string, error) {
	switch {
	case opts.RecordWith != "" && opts.MediaFile != "":
		return "", fmt.Errorf("--record-with and --media-file are mutually exclusive")
	case opts.RecordWith != "":
		if strings.TrimSpace(opts.MediaKind) == "" {
			return "", fmt.Errorf("--media-kind is required with --record-with")
		}
		out, err := capture(ctx, opts.RecordWith, opts.MediaKind, opts.MaxSeconds)
		if err != nil {
			return "", err
		}
		return out.PayloadBase64, nil
	case opts.MediaFile != "":
		raw, err := os.ReadFile(opts.MediaFile)
		if err != nil {
			return "", fmt.Errorf("read media file: %w", err)
		}
		return base64.StdEncoding.EncodeToString(raw), nil
	}
	return "", nil
}

func newRitualCmd(journalPath *string) *cobra.Command {
	ritual := &cobra.Command{Use: "ritual", Short: "369 manifestation sessions"}

	goal := &cobra.Command{
		Use:   "goal <text>",
		Short: "Set today's manifestation goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			status, err := app.RitualCLI.SetGoal(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal set for %s: %s\n", status.Day, status.Goal)
			return nil
		},
	}
	ritual.AddCommand(goal)

	ritual.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show today's ritual progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			status, err := app.RitualCLI.Status(context.Background())
			if err != nil {
				return err
			}
			goal := status.Goal
			if goal == "" {
				goal = "(not set)"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "day: %s\ngoal: %s\n", status.Day, goal)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "morning (x3): %s\nafternoon (x6): %s\nnight (x9): %s\n",
				slotMark(status.Morning), slotMark(status.Afternoon), slotMark(status.Night))
			return nil
		},
	})

	var kind string
	var repetitions []string
	complete := &cobra.Command{
		Use:   "complete --kind <kind> --rep <text> ...",
		Short: "Record a completed session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			out, err := app.RitualCLI.CompleteSession(context.Background(), kind, repetitions)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s session recorded: %s note=%s\n", out.Kind, out.ID, out.NotePath)
			return nil
		},
	}
	complete.Flags().StringVar(&kind, "kind", "", "session kind: morning|afternoon|night")
	complete.Flags().StringArrayVar(&repetitions, "rep", nil, "one written repetition (repeat the flag)")
	ritual.AddCommand(complete)

	ritual.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List completed sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			sessions, err := app.RitualCLI.ListSessions(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", s.ID, s.Date.Format("2006-01-02"), s.Kind, s.Goal)
			}
			return nil
		},
	})

	var deleteID string
	deleteCmd := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a completed session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			if err := app.RitualCLI.DeleteSession(context.Background(), deleteID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session deleted: %s\n", deleteID)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "session id")
	ritual.AddCommand(deleteCmd)

	return ritual
}

func slotMark(done bool) string {
	if done {
		return "done"
	}
	return "pending"
}

func newHistoryCmd(journalPath *string) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Merged record timeline"}

	var filter string
	list := &cobra.Command{
		Use:   "list",
		Short: "List journal and ritual records newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			items, err := app.HistoryCLI.List(context.Background(), filter)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no records")
				return nil
			}
			for _, item := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t[%s]\t%s\t%s\n", item.ID, item.Category, item.Date.Format("2006-01-02"), item.Title)
			}
			return nil
		},
	}
	list.Flags().StringVar(&filter, "filter", historydto.FilterAll, "filter: all|journal|ritual")
	history.AddCommand(list)

	var deleteID, category string
	deleteCmd := &cobra.Command{
		Use:   "delete --id <id> --category <category>",
		Short: "Delete a record through its owning module",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteID) == "" || strings.TrimSpace(category) == "" {
				return fmt.Errorf("--id and --category are required")
			}
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			if err := app.HistoryCLI.Delete(context.Background(), deleteID, category); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "record deleted: %s\n", deleteID)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "record id")
	deleteCmd.Flags().StringVar(&category, "category", "", "record category: journal|ritual")
	history.AddCommand(deleteCmd)

	return history
}

func newInsightsCmd(journalPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show derived practice statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			summary, err := app.InsightsCLI.Summary(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "entries: %d (streak %d)\nsessions: %d (streak %d)\n",
				summary.TotalEntries, summary.EntryStreak, summary.TotalSessions, summary.SessionStreak)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "moods: happy=%d neutral=%d sad=%d\n",
				summary.Moods.Happy, summary.Moods.Neutral, summary.Moods.Sad)
			for _, day := range summary.WeeklyActivity {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", day.Label, day.Count)
			}
			return nil
		},
	}
}

func newRecorderCmd(journalPath *string) *cobra.Command {
	recorder := &cobra.Command{Use: "recorder", Short: "Recorder plugin operations"}

	recorder.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorder manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			recorders, err := app.RecorderCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(recorders) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no recorders configured")
				return nil
			}
			for _, r := range recorders {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t kinds=%s binary=%s\n", r.Name, r.Version, r.Enabled, strings.Join(r.Kinds, ","), r.Binary)
			}
			return nil
		},
	})

	recorder.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate recorder checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			results, err := app.RecorderCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no recorders configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	var recorderName, kind, outPath string
	var maxSeconds int
	capture := &cobra.Command{
		Use:   "capture --recorder <name> --kind <kind>",
		Short: "Capture a recording through a plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(recorderName) == "" || strings.TrimSpace(kind) == "" {
				return fmt.Errorf("--recorder and --kind are required")
			}
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			out, err := app.RecorderCLI.Capture(context.Background(), recorderName, kind, maxSeconds)
			if err != nil {
				return err
			}
			payload, err := base64.StdEncoding.DecodeString(out.PayloadBase64)
			if err != nil {
				return fmt.Errorf("decode capture payload: %w", err)
			}
			if outPath != "" {
				if err := os.WriteFile(outPath, payload, 0o644); err != nil {
					return fmt.Errorf("write capture payload: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "captured %s (%s) %d bytes -> %s\n", out.Kind, out.MIME, len(payload), outPath)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "captured %s (%s) %d bytes\n", out.Kind, out.MIME, len(payload))
			return nil
		},
	}
	capture.Flags().StringVar(&recorderName, "recorder", "", "recorder name")
	capture.Flags().StringVar(&kind, "kind", "", "capture kind: audio|video")
	capture.Flags().IntVar(&maxSeconds, "max-seconds", 0, "capture duration limit")
	capture.Flags().StringVar(&outPath, "out", "", "write decoded payload to this file")
	recorder.AddCommand(capture)

	return recorder
}

func newReindexCmd(journalPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild SQLite projections from journal markdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*journalPath)
			if err != nil {
				return err
			}
			if err := app.JournalCLI.Reindex(context.Background()); err != nil {
				return err
			}
			if err := app.RitualCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}
