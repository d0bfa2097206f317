package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wudi/convertkit/ocr"
	"github.com/wudi/convertkit/ocr/tesseract"
	"github.com/wudi/convertkit/pdfops"
)

var ocrCmd = &cobra.Command{
	Use:   "ocr [files...]",
	Short: "Recognize text in images or scanned PDFs",
	Long: `OCR runs Tesseract over the inputs and prints the recognized text.
Image inputs are read directly; with --pdf each input is rasterized at
--dpi first and every page is recognized in order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		langArg, _ := cmd.Flags().GetString("lang")
		isPDF, _ := cmd.Flags().GetBool("pdf")
		dpi, _ := cmd.Flags().GetFloat64("dpi")
		out, _ := cmd.Flags().GetString("output")

		var opts []ocr.InputOption
		if langArg != "" {
			opts = append(opts, ocr.WithLanguages(strings.Split(langArg, "+")...))
		}

		engine := tesseract.New()
		var results []ocr.Result
		if isPDF {
			ops := pdfops.New(cmdLogger(cmd))
			for _, path := range args {
				pages, err := ocr.RecognizePDF(cmd.Context(), engine, ops, path, dpi, opts...)
				if err != nil {
					return err
				}
				results = append(results, pages...)
			}
		} else {
			var err error
			results, err = ocr.RecognizeFiles(cmd.Context(), engine, args, opts...)
			if err != nil {
				return err
			}
		}

		text := ocr.PlainText(results)
		if out == "" {
			fmt.Print(text)
			return nil
		}
		return os.WriteFile(out, []byte(text), 0o644)
	},
}

func init() {
	ocrCmd.Flags().String("lang", "eng", `Tesseract languages, "+"-joined like "eng+deu"`)
	ocrCmd.Flags().Bool("pdf", false, "treat inputs as PDFs and rasterize them first")
	ocrCmd.Flags().Float64("dpi", 150, "rasterization resolution for --pdf")
	ocrCmd.Flags().StringP("output", "o", "", "write text here instead of stdout")

	rootCmd.AddCommand(ocrCmd)
}
