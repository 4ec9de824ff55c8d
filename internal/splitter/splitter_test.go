package splitter

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"chapsplit/internal/chapters"
	"chapsplit/internal/media/ffmpeg"
)

type fakeClient struct {
	calls   [][]string
	errs    map[int]error // 1-based call ordinal -> error to return
	reports []float64     // progress offsets emitted during every run
	onRun   func(call int, args []string)
}

func (f *fakeClient) Run(_ context.Context, args []string, progress func(ffmpeg.ProgressUpdate)) error {
	f.calls = append(f.calls, args)
	call := len(f.calls)
	if f.onRun != nil {
		f.onRun(call, args)
	}
	if progress != nil {
		for _, offset := range f.reports {
			progress(ffmpeg.ProgressUpdate{OutTimeSeconds: offset})
		}
	}
	return f.errs[call]
}

func (f *fakeClient) ProbeEncoder(context.Context, string, []string) error {
	return nil
}

func TestSplitNoChapters(t *testing.T) {
	sup := New(&fakeClient{}, nil, nil)
	if _, err := sup.Split(context.Background(), Job{OutputDir: t.TempDir()}); !errors.Is(err, chapters.ErrNoChapters) {
		t.Fatalf("Split() error = %v, want ErrNoChapters", err)
	}
}

func TestSplitContinuesAfterChapterFailure(t *testing.T) {
	client := &fakeClient{errs: map[int]error{2: errors.New("encoder exploded")}}
	sup := New(client, nil, nil)

	outputDir := t.TempDir()
	report, err := sup.Split(context.Background(), Job{
		InputPath:  "/in/movie.mp4",
		OutputDir:  outputDir,
		VideoCodec: "copy",
		AudioCodec: "copy",
		Intervals: []chapters.Interval{
			{Start: "00:00:00", End: "00:05:00", Title: "Intro"},
			{Start: "00:05:00", End: "00:06:00", Title: "Middle"},
			{Start: "00:06:00", End: "00:10:00", Title: "Ending"},
		},
	})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(client.calls) != 3 {
		t.Fatalf("attempted %d chapters, want 3", len(client.calls))
	}
	if len(report.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(report.Results))
	}
	failed := report.Failed()
	if len(failed) != 1 || failed[0].Index != 2 {
		t.Fatalf("Failed() = %+v, want exactly chapter 2", failed)
	}
	if report.Results[0].Err != nil || report.Results[2].Err != nil {
		t.Fatalf("chapters around the failure should succeed: %+v", report.Results)
	}
	want := filepath.Join(outputDir, "001_Intro.mp4")
	if report.Results[0].OutputPath != want {
		t.Fatalf("output path = %q, want %q", report.Results[0].OutputPath, want)
	}
}

func TestSplitSkipsUnusableIntervalsWithoutSpawning(t *testing.T) {
	client := &fakeClient{}
	sup := New(client, nil, nil)

	report, err := sup.Split(context.Background(), Job{
		InputPath:  "/in/movie.mp4",
		OutputDir:  t.TempDir(),
		VideoCodec: "copy",
		AudioCodec: "copy",
		Intervals: []chapters.Interval{
			{Start: "00:00:10", End: "00:00:00", Title: "Backwards"},
			{Start: "bogus", End: "00:00:10", Title: "Unparseable"},
			{Start: "00:00:00", End: "00:00:10", Title: "Fine"},
		},
	})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(client.calls) != 1 {
		t.Fatalf("spawned %d processes, want 1", len(client.calls))
	}
	if report.Results[0].Err == nil || report.Results[1].Err == nil {
		t.Fatalf("unusable intervals must be recorded as failures: %+v", report.Results)
	}
	if report.Results[2].Err != nil {
		t.Fatalf("valid interval failed: %v", report.Results[2].Err)
	}
}

func TestSplitProgressClampsToPlannedDuration(t *testing.T) {
	// One 10 second chapter whose process over-reports at 12 seconds. The
	// aggregate must hold at 10 and finish exactly at the total.
	client := &fakeClient{reports: []float64{5, 12}}
	var published []float64
	sup := New(client, nil, func(elapsed, total float64) {
		published = append(published, elapsed)
		if elapsed > total {
			t.Fatalf("elapsed %.3f exceeded total %.3f", elapsed, total)
		}
	})

	_, err := sup.Split(context.Background(), Job{
		InputPath:  "/in/movie.mp4",
		OutputDir:  t.TempDir(),
		VideoCodec: "copy",
		AudioCodec: "copy",
		Intervals: []chapters.Interval{
			{Start: "00:00:00", End: "00:00:10", Title: "Only"},
		},
	})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(published) == 0 {
		t.Fatal("no progress published")
	}
	for _, value := range published {
		if value == 12 {
			t.Fatal("over-reported offset leaked through unclamped")
		}
	}
	if final := published[len(published)-1]; final != 10 {
		t.Fatalf("final elapsed = %.3f, want 10", final)
	}
}

func TestSplitProgressReachesTotalDespiteFailures(t *testing.T) {
	client := &fakeClient{errs: map[int]error{1: errors.New("boom")}}
	var final, total float64
	sup := New(client, nil, func(elapsed, planned float64) {
		final, total = elapsed, planned
	})

	_, err := sup.Split(context.Background(), Job{
		InputPath:  "/in/movie.mp4",
		OutputDir:  t.TempDir(),
		VideoCodec: "copy",
		AudioCodec: "copy",
		Intervals: []chapters.Interval{
			{Start: "00:00:00", End: "00:00:10", Title: "Fails"},
			{Start: "00:00:10", End: "00:00:20", Title: "Works"},
		},
	})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if final != total || total != 20 {
		t.Fatalf("final progress %.3f/%.3f, want 20/20", final, total)
	}
}

func TestChapterFileName(t *testing.T) {
	got := chapterFileName(7, `Part 2: "Return"`)
	want := "007_Part 2_ _Return_.mp4"
	if got != want {
		t.Fatalf("chapterFileName() = %q, want %q", got, want)
	}
}
