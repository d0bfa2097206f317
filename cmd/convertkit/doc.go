package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wudi/convertkit/docconv"
)

var md2htmlCmd = &cobra.Command{
	Use:   "md2html [file]",
	Short: "Render Markdown (GFM + math) to HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		out, err := docconv.MarkdownToHTML(src)
		if err != nil {
			return err
		}
		return writeOutput(cmd, out)
	},
}

var html2mdCmd = &cobra.Command{
	Use:   "html2md [file]",
	Short: "Convert HTML to Markdown",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		out, err := docconv.HTMLToMarkdown(string(src))
		if err != nil {
			return err
		}
		return writeOutput(cmd, []byte(out))
	},
}

var html2textCmd = &cobra.Command{
	Use:   "html2text [file]",
	Short: "Strip HTML down to plain text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		out, err := docconv.HTMLToText(string(src))
		if err != nil {
			return err
		}
		return writeOutput(cmd, []byte(out))
	},
}

// readInput reads the single file argument, or stdin when none is given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}

func writeOutput(cmd *cobra.Command, data []byte) error {
	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(out, data, 0o644)
}

func init() {
	for _, c := range []*cobra.Command{md2htmlCmd, html2mdCmd, html2textCmd} {
		c.Flags().StringP("output", "o", "", "write result here instead of stdout")
		rootCmd.AddCommand(c)
	}
}
