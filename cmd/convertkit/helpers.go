package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wudi/convertkit/batch"
	"github.com/wudi/convertkit/scripting"
)

// batchConfig assembles a batch runner from the shared batch flags
// (--continue-on-error, --hook) plus a progress printer.
func batchConfig(cmd *cobra.Command) (batch.Config, error) {
	cont, _ := cmd.Flags().GetBool("continue-on-error")
	hook, _ := cmd.Flags().GetString("hook")

	cfg := batch.Config{
		ContinueOnError: cont,
		Logger:          cmdLogger(cmd),
		Progress: func(index int, path string, err error) {
			switch {
			case err == nil:
				fmt.Fprintf(os.Stderr, "%4d  %s\n", index+1, path)
			case errors.Is(err, batch.ErrSkipped):
				fmt.Fprintf(os.Stderr, "%4d  %s: skipped\n", index+1, path)
			default:
				fmt.Fprintf(os.Stderr, "%4d  %s: %v\n", index+1, path, err)
			}
		},
	}
	if hook != "" {
		script, err := readHook(hook)
		if err != nil {
			return cfg, err
		}
		cfg.Hook = script
		cfg.Engine = scripting.NewEngine()
	}
	return cfg, nil
}

// readHook treats the flag value as a file path when such a file exists,
// and as inline script text otherwise.
func readHook(v string) (string, error) {
	if st, err := os.Stat(v); err == nil && !st.IsDir() {
		data, err := os.ReadFile(v)
		if err != nil {
			return "", fmt.Errorf("read hook %s: %w", v, err)
		}
		return string(data), nil
	}
	return v, nil
}

// outName picks the output file name for one batch item: the hook's choice
// when present, otherwise base+suffix+ext.
func outName(path string, hook scripting.HookResult, suffix, ext string) string {
	if hook.OutputName != "" {
		return hook.OutputName
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return base + suffix + ext
}

// ensureOutDir creates dir if needed and returns it.
func ensureOutDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("out-dir")
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return dir, nil
}

// parsePages parses a one-based page list like "1,3,5".
func parsePages(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	pages := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad page %q", p)
		}
		pages = append(pages, n)
	}
	return pages, nil
}

// reportSummary prints the end-of-run tally for batch commands.
func reportSummary(report batch.Report) {
	fmt.Fprintf(os.Stderr, "done: %d converted, %d failed, %d skipped\n",
		report.Processed, report.Failed, report.Skipped)
}
