package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wudi/convertkit/batch"
	"github.com/wudi/convertkit/filters"
	"github.com/wudi/convertkit/raster"
	"github.com/wudi/convertkit/scripting"
)

var filterCmd = &cobra.Command{
	Use:   "filter [images...]",
	Short: "Apply a color filter to images",
	Long: `Filter applies one color effect per run: grayscale, sepia, or
brightness (--amount shifts -100..100 percent). Outputs are written as PNG
named <base>-<kind>.png unless a --hook overrides the name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kindName, _ := cmd.Flags().GetString("kind")
		amount, _ := cmd.Flags().GetFloat64("amount")

		kind, err := filters.ParseKind(kindName)
		if err != nil {
			return err
		}
		filter, err := filters.New(filters.Config{
			Kind:   kind,
			Amount: amount,
			Logger: cmdLogger(cmd),
		})
		if err != nil {
			return err
		}
		outDir, err := ensureOutDir(cmd)
		if err != nil {
			return err
		}

		bcfg, err := batchConfig(cmd)
		if err != nil {
			return err
		}
		runner, err := batch.New(bcfg)
		if err != nil {
			return err
		}

		report, err := runner.Run(cmd.Context(), args,
			func(ctx context.Context, path string, hook scripting.HookResult) error {
				src, err := raster.DecodeFile(path)
				if err != nil {
					return err
				}
				out, err := filter.Apply(ctx, src)
				if err != nil {
					return err
				}
				name := outName(path, hook, "-"+kind.String(), ".png")
				return raster.WritePNGFile(filepath.Join(outDir, name), out)
			})
		reportSummary(report)
		return err
	},
}

func init() {
	filterCmd.Flags().String("kind", "grayscale", "effect: grayscale, sepia, or brightness")
	filterCmd.Flags().Float64("amount", 0, "brightness shift in percent (-100 to 100)")
	filterCmd.Flags().String("out-dir", ".", "output directory")
	filterCmd.Flags().Bool("continue-on-error", false, "keep going when a file fails")
	filterCmd.Flags().String("hook", "", "JavaScript naming hook (inline or path)")

	rootCmd.AddCommand(filterCmd)
}
