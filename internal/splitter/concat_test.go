package splitter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"chapsplit/internal/chapters"
)

func TestConcatMergesExtractedSegments(t *testing.T) {
	var manifest string
	var workDir string
	client := &fakeClient{}
	client.onRun = func(call int, args []string) {
		switch {
		case slices.Contains(args, "concat"):
			idx := slices.Index(args, "-i")
			data, err := os.ReadFile(args[idx+1])
			if err != nil {
				t.Fatalf("read manifest: %v", err)
			}
			manifest = string(data)
		case call == 1:
			workDir = filepath.Dir(args[len(args)-1])
		}
	}
	sup := New(client, nil, nil)

	dir := t.TempDir()
	outputPath := filepath.Join(dir, "movie_edited.mp4")
	annotationPath := filepath.Join(dir, "movie_edited.txt")
	err := sup.Concat(context.Background(), Job{
		InputPath: "/in/movie.mp4",
		Intervals: []chapters.Interval{
			{Start: "00:00:00", End: "00:00:10", Title: "Opening"},
			{Start: "00:00:20", End: "00:00:30", Title: "Closing"},
		},
	}, outputPath, annotationPath)
	if err != nil {
		t.Fatalf("Concat() error = %v", err)
	}

	// Two extracts plus one merge.
	if len(client.calls) != 3 {
		t.Fatalf("ran %d commands, want 3", len(client.calls))
	}
	lines := strings.Split(strings.TrimRight(manifest, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("manifest has %d entries, want 2:\n%s", len(lines), manifest)
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "file '") || !strings.HasSuffix(line, "'") {
			t.Fatalf("manifest line %d malformed: %q", i, line)
		}
	}
	if !strings.Contains(lines[0], "segment_001") || !strings.Contains(lines[1], "segment_002") {
		t.Fatalf("segments out of order:\n%s", manifest)
	}

	data, err := os.ReadFile(annotationPath)
	if err != nil {
		t.Fatalf("read annotation file: %v", err)
	}
	want := "00:00:00.000 Opening\n00:00:10.000 Closing\n"
	if string(data) != want {
		t.Fatalf("annotation file = %q, want %q", data, want)
	}

	if _, err := os.Stat(workDir); !os.IsNotExist(err) {
		t.Fatalf("work directory %q not cleaned up: %v", workDir, err)
	}
}

func TestConcatExtractFailureIsFatal(t *testing.T) {
	var workDir string
	client := &fakeClient{errs: map[int]error{1: errors.New("disc full")}}
	client.onRun = func(call int, args []string) {
		if call == 1 {
			workDir = filepath.Dir(args[len(args)-1])
		}
	}
	sup := New(client, nil, nil)

	dir := t.TempDir()
	annotationPath := filepath.Join(dir, "movie_edited.txt")
	err := sup.Concat(context.Background(), Job{
		InputPath: "/in/movie.mp4",
		Intervals: []chapters.Interval{
			{Start: "00:00:00", End: "00:00:10", Title: "Opening"},
			{Start: "00:00:20", End: "00:00:30", Title: "Closing"},
		},
	}, filepath.Join(dir, "movie_edited.mp4"), annotationPath)
	if err == nil || !strings.Contains(err.Error(), "Opening") {
		t.Fatalf("Concat() error = %v, want extract failure naming the chapter", err)
	}
	if len(client.calls) != 1 {
		t.Fatalf("ran %d commands after fatal extract, want 1", len(client.calls))
	}
	if _, err := os.Stat(annotationPath); !os.IsNotExist(err) {
		t.Fatal("annotation file written despite failure")
	}
	if _, err := os.Stat(workDir); !os.IsNotExist(err) {
		t.Fatalf("work directory %q not cleaned up after failure: %v", workDir, err)
	}
}

func TestConcatRejectsNonPositiveDuration(t *testing.T) {
	client := &fakeClient{}
	sup := New(client, nil, nil)

	dir := t.TempDir()
	err := sup.Concat(context.Background(), Job{
		InputPath: "/in/movie.mp4",
		Intervals: []chapters.Interval{
			{Start: "00:00:10", End: "00:00:00", Title: "Backwards"},
		},
	}, filepath.Join(dir, "out.mp4"), "")
	if err == nil {
		t.Fatal("Concat() accepted a non-positive duration")
	}
	if len(client.calls) != 0 {
		t.Fatalf("ran %d commands, want 0", len(client.calls))
	}
}

func TestConcatNoChapters(t *testing.T) {
	sup := New(&fakeClient{}, nil, nil)
	err := sup.Concat(context.Background(), Job{}, "/tmp/out.mp4", "")
	if !errors.Is(err, chapters.ErrNoChapters) {
		t.Fatalf("Concat() error = %v, want ErrNoChapters", err)
	}
}

func TestWriteManifestEscapesQuotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segments.txt")
	if err := writeManifest(path, []string{"/tmp/it's here.mp4"}); err != nil {
		t.Fatalf("writeManifest() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	want := `file '/tmp/it'\''s here.mp4'` + "\n"
	if string(data) != want {
		t.Fatalf("manifest = %q, want %q", data, want)
	}
}
