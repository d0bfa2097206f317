package batch

import (
	"context"
	"errors"
	"testing"

	"github.com/wudi/convertkit/scripting"
)

var errBoom = errors.New("boom")

func TestRunProcessesInOrder(t *testing.T) {
	runner, err := New(Config{})
	if err != nil {
		t.Fatal(err)
	}

	var seen []string
	report, err := runner.Run(context.Background(), []string{"a.png", "b.png", "c.png"},
		func(_ context.Context, path string, _ scripting.HookResult) error {
			seen = append(seen, path)
			return nil
		})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"a.png", "b.png", "c.png"}
	if len(seen) != len(want) {
		t.Fatalf("processed %d files, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
	if report.Processed != 3 || report.Failed != 0 {
		t.Errorf("report = %+v", report)
	}
}

func TestRunFailFast(t *testing.T) {
	runner, _ := New(Config{ContinueOnError: false})

	var count int
	_, err := runner.Run(context.Background(), []string{"a", "b", "c"},
		func(_ context.Context, path string, _ scripting.HookResult) error {
			count++
			if path == "b" {
				return errBoom
			}
			return nil
		})
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want errBoom", err)
	}
	if count != 2 {
		t.Errorf("processed %d files before abort, want 2", count)
	}
}

func TestRunContinueOnError(t *testing.T) {
	runner, _ := New(Config{ContinueOnError: true})

	report, err := runner.Run(context.Background(), []string{"a", "b", "c"},
		func(_ context.Context, path string, _ scripting.HookResult) error {
			if path == "b" {
				return errBoom
			}
			return nil
		})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Processed != 2 || report.Failed != 1 {
		t.Errorf("report = %+v", report)
	}
	if len(report.Errors) != 1 || !errors.Is(report.Errors[0], errBoom) {
		t.Errorf("Errors = %v", report.Errors)
	}
}

func TestRunAllFailed(t *testing.T) {
	runner, _ := New(Config{ContinueOnError: true})
	_, err := runner.Run(context.Background(), []string{"a", "b"},
		func(context.Context, string, scripting.HookResult) error { return errBoom })
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want wrapped errBoom", err)
	}
}

func TestRunProgressCallback(t *testing.T) {
	type event struct {
		index int
		path  string
		ok    bool
	}
	var events []event

	runner, _ := New(Config{
		ContinueOnError: true,
		Progress: func(index int, path string, err error) {
			events = append(events, event{index, path, err == nil})
		},
	})
	_, err := runner.Run(context.Background(), []string{"x", "y"},
		func(_ context.Context, path string, _ scripting.HookResult) error {
			if path == "x" {
				return errBoom
			}
			return nil
		})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d progress events, want 2", len(events))
	}
	if events[0].ok || events[0].index != 0 {
		t.Errorf("event 0 = %+v", events[0])
	}
	if !events[1].ok || events[1].path != "y" {
		t.Errorf("event 1 = %+v", events[1])
	}
}

func TestRunHookSkipsAndRenames(t *testing.T) {
	runner, err := New(Config{
		Engine: scripting.NewEngine(),
		Hook:   `file.ext === ".tmp" ? {skip: true} : file.base + ".out"`,
	})
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	report, err := runner.Run(context.Background(), []string{"keep.png", "drop.tmp"},
		func(_ context.Context, _ string, hook scripting.HookResult) error {
			names = append(names, hook.OutputName)
			return nil
		})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Processed != 1 || report.Skipped != 1 {
		t.Errorf("report = %+v", report)
	}
	if len(names) != 1 || names[0] != "keep.out" {
		t.Errorf("names = %v", names)
	}
}

func TestNewHookWithoutEngine(t *testing.T) {
	if _, err := New(Config{Hook: "1"}); err == nil {
		t.Fatal("expected error for hook without engine")
	}
}

func TestRunEmptyFiles(t *testing.T) {
	runner, _ := New(Config{})
	_, err := runner.Run(context.Background(), nil,
		func(context.Context, string, scripting.HookResult) error { return nil })
	if !errors.Is(err, ErrNoFiles) {
		t.Fatalf("err = %v, want ErrNoFiles", err)
	}
}

func TestRunCanceledContext(t *testing.T) {
	runner, _ := New(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runner.Run(ctx, []string{"a"},
		func(context.Context, string, scripting.HookResult) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
