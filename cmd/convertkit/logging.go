package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wudi/convertkit/observability"
)

// cmdLogger returns a stderr logger when --verbose is set, and a no-op
// logger otherwise.
func cmdLogger(cmd *cobra.Command) observability.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return observability.NopLogger{}
	}
	return stderrLogger{}
}

type stderrLogger struct {
	fields []observability.Field
}

func (l stderrLogger) log(level, msg string, fields []observability.Field) {
	fmt.Fprintf(os.Stderr, "%s %s", level, msg)
	for _, f := range append(l.fields, fields...) {
		fmt.Fprintf(os.Stderr, " %s=%v", f.Key(), f.Value())
	}
	fmt.Fprintln(os.Stderr)
}

func (l stderrLogger) Debug(msg string, fields ...observability.Field) { l.log("DEBUG", msg, fields) }
func (l stderrLogger) Info(msg string, fields ...observability.Field)  { l.log("INFO", msg, fields) }
func (l stderrLogger) Warn(msg string, fields ...observability.Field)  { l.log("WARN", msg, fields) }
func (l stderrLogger) Error(msg string, fields ...observability.Field) { l.log("ERROR", msg, fields) }

func (l stderrLogger) With(fields ...observability.Field) observability.Logger {
	return stderrLogger{fields: append(append([]observability.Field{}, l.fields...), fields...)}
}
