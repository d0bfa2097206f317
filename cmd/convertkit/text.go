package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wudi/convertkit/pdfops"
)

var textCmd = &cobra.Command{
	Use:   "text <pdf>",
	Short: "Extract the embedded text layer of a PDF",
	Long: `Text reads the PDF's own text layer and prints it. Scanned documents
have no text layer; use the ocr command for those.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		text, err := pdfops.New(cmdLogger(cmd)).ExtractText(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if out == "" {
			fmt.Print(text)
			return nil
		}
		return os.WriteFile(out, []byte(text), 0o644)
	},
}

func init() {
	textCmd.Flags().StringP("output", "o", "", "write text here instead of stdout")

	rootCmd.AddCommand(textCmd)
}
