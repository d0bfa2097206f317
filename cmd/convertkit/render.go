package main

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wudi/convertkit/pdfops"
)

var renderCmd = &cobra.Command{
	Use:   "render <pdf>",
	Short: "Rasterize PDF pages to images",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, err := ensureOutDir(cmd)
		if err != nil {
			return err
		}
		dpi, _ := cmd.Flags().GetFloat64("dpi")
		format, _ := cmd.Flags().GetString("format")
		quality, _ := cmd.Flags().GetInt("quality")
		if format != "png" && format != "jpg" {
			return fmt.Errorf("bad --format %q: want png or jpg", format)
		}

		ops := pdfops.New(cmdLogger(cmd))
		pages, err := ops.RenderPages(cmd.Context(), args[0], dpi)
		if err != nil {
			return err
		}

		base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		for i, img := range pages {
			name := fmt.Sprintf("%s-%03d.%s", base, i+1, format)
			f, err := os.Create(filepath.Join(outDir, name))
			if err != nil {
				return err
			}
			if format == "png" {
				err = png.Encode(f, img)
			} else {
				err = jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
			}
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("write page %d: %w", i+1, err)
			}
		}
		fmt.Fprintf(os.Stderr, "rendered %d pages to %s\n", len(pages), outDir)
		return nil
	},
}

func init() {
	renderCmd.Flags().String("out-dir", ".", "output directory")
	renderCmd.Flags().Float64("dpi", 150, "render resolution")
	renderCmd.Flags().String("format", "png", "output format: png or jpg")
	renderCmd.Flags().Int("quality", 85, "JPEG quality when --format jpg")

	rootCmd.AddCommand(renderCmd)
}
