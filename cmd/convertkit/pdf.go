package main

import (
	"github.com/spf13/cobra"

	"github.com/wudi/convertkit/pdfops"
)

var img2pdfCmd = &cobra.Command{
	Use:   "img2pdf [images...]",
	Short: "Assemble images into a PDF, one page per image",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		pageSize, _ := cmd.Flags().GetString("page-size")
		fullPage, _ := cmd.Flags().GetBool("full-page")

		ops := pdfops.New(cmdLogger(cmd))
		return ops.ImagesToPDF(cmd.Context(), args, out, pdfops.ImportOptions{
			PageSize: pageSize,
			FullPage: fullPage,
		})
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge [pdfs...]",
	Short: "Merge PDFs into one document, in argument order",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		return pdfops.New(cmdLogger(cmd)).Merge(cmd.Context(), args, out)
	},
}

var splitCmd = &cobra.Command{
	Use:   "split <pdf>",
	Short: "Split a PDF into span-sized pieces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, err := ensureOutDir(cmd)
		if err != nil {
			return err
		}
		span, _ := cmd.Flags().GetInt("span")
		return pdfops.New(cmdLogger(cmd)).Split(cmd.Context(), args[0], outDir, span)
	},
}

var optimizeCmd = &cobra.Command{
	Use:   "pdf-optimize <pdf>",
	Short: "Rewrite a PDF with redundant objects removed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		return pdfops.New(cmdLogger(cmd)).Optimize(cmd.Context(), args[0], out)
	},
}

func init() {
	img2pdfCmd.Flags().StringP("output", "o", "out.pdf", "output PDF path")
	img2pdfCmd.Flags().String("page-size", "", `page form size like "A4" (default: size pages to their images)`)
	img2pdfCmd.Flags().Bool("full-page", false, "scale each image to cover its whole page")

	mergeCmd.Flags().StringP("output", "o", "merged.pdf", "output PDF path")

	splitCmd.Flags().String("out-dir", ".", "directory for the split pieces")
	splitCmd.Flags().Int("span", 1, "pages per output file")

	optimizeCmd.Flags().StringP("output", "o", "", "output path (default: overwrite input)")

	rootCmd.AddCommand(img2pdfCmd, mergeCmd, splitCmd, optimizeCmd)
}
