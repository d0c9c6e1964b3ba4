package main

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	recorderdto "innerwork/internal/modules/recorder/dto"
)

func TestResolveMediaPayloadCapturesThroughRecorder(t *testing.T) {
	t.Parallel()
	var gotName, gotKind string
	var gotMax int
	capture := func(_ context.Context, name, kind string, maxSeconds int) (recorderdto.CaptureOutput, error) {
		gotName, gotKind, gotMax = name, kind, maxSeconds
		return recorderdto.CaptureOutput{
			RecorderName:  name,
			Kind:          kind,
			MIME:          "audio/webm",
			PayloadBase64: base64.StdEncoding.EncodeToString([]byte("captured-bytes")),
		}, nil
	}

	payload, err := resolveMediaPayload(context.Background(), capture, mediaOptions{
		RecordWith: "reference",
		MediaKind:  "audio",
		MaxSeconds: 30,
	})
	if err != nil {
		t.Fatalf("resolve payload: %v", err)
	}
	if gotName != "reference" || gotKind != "audio" || gotMax != 30 {
		t.Fatalf("capture called with %s/%s/%d", gotName, gotKind, gotMax)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload must stay base64 for AddEntry: %v", err)
	}
	if string(raw) != "captured-bytes" {
		t.Fatalf("payload mangled: %q", raw)
	}
}

func TestResolveMediaPayloadPropagatesCaptureErrors(t *testing.T) {
	t.Parallel()
	boom := errors.New("recorder exploded")
	capture := func(context.Context, string, string, int) (recorderdto.CaptureOutput, error) {
		return recorderdto.CaptureOutput{}, boom
	}

	_, err := resolveMediaPayload(context.Background(), capture, mediaOptions{
		RecordWith: "reference",
		MediaKind:  "video",
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the capture error, got %v", err)
	}
}

func TestResolveMediaPayloadValidatesFlagCombinations(t *testing.T) {
	t.Parallel()
	noCapture := func(context.Context, string, string, int) (recorderdto.CaptureOutput, error) {
		t.Fatal("capture must not run for invalid flag combinations")
		return recorderdto.CaptureOutput{}, nil
	}

	if _, err := resolveMediaPayload(context.Background(), noCapture, mediaOptions{
		RecordWith: "reference", MediaKind: "audio", MediaFile: "x.webm",
	}); err == nil {
		t.Fatalf("record-with combined with media-file should fail")
	}
	if _, err := resolveMediaPayload(context.Background(), noCapture, mediaOptions{
		RecordWith: "reference",
	}); err == nil {
		t.Fatalf("record-with without media-kind should fail")
	}
}

func TestResolveMediaPayloadReadsLocalFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "take.webm")
	if err := os.WriteFile(path, []byte("opaque-bytes"), 0o644); err != nil {
		t.Fatalf("write media file: %v", err)
	}
	noCapture := func(context.Context, string, string, int) (recorderdto.CaptureOutput, error) {
		t.Fatal("capture must not run for a local file")
		return recorderdto.CaptureOutput{}, nil
	}

	payload, err := resolveMediaPayload(context.Background(), noCapture, mediaOptions{
		MediaKind: "audio", MediaFile: path,
	})
	if err != nil {
		t.Fatalf("resolve payload: %v", err)
	}
	if payload != base64.StdEncoding.EncodeToString([]byte("opaque-bytes")) {
		t.Fatalf("unexpected payload: %q", payload)
	}

	empty, err := resolveMediaPayload(context.Background(), noCapture, mediaOptions{})
	if err != nil || empty != "" {
		t.Fatalf("text-only entry should resolve to no payload, got %q err=%v", empty, err)
	}
}

func TestJournalAddExposesRecordingFlags(t *testing.T) {
	t.Parallel()
	journalPath := "."
	journal := newJournalCmd(&journalPath)
	var add *cobra.Command
	for _, sub := range journal.Commands() {
		if sub.Use == "add" {
			add = sub
		}
	}
	if add == nil {
		t.Fatalf("journal has no add subcommand")
	}
	for _, flag := range []string{"record-with", "max-seconds", "media-kind", "media-file"} {
		if add.Flags().Lookup(flag) == nil {
			t.Fatalf("journal add is missing --%s", flag)
		}
	}
}
