package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wudi/convertkit/batch"
	"github.com/wudi/convertkit/compress"
	"github.com/wudi/convertkit/scripting"
)

var compressCmd = &cobra.Command{
	Use:   "compress [images...]",
	Short: "Compress images to fit a byte budget",
	Long: `Compress re-encodes images as JPEG, searching quality and then
dimensions until the output fits under --target-kb. When even the smallest
allowed encoding exceeds the budget the best effort is still written and
the file is reported as over budget.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetKB, _ := cmd.Flags().GetInt("target-kb")
		minQ, _ := cmd.Flags().GetInt("min-quality")
		maxQ, _ := cmd.Flags().GetInt("max-quality")
		minDim, _ := cmd.Flags().GetInt("min-dimension")

		comp, err := compress.New(compress.Config{
			TargetBytes:  targetKB * 1024,
			MinQuality:   minQ,
			MaxQuality:   maxQ,
			MinDimension: minDim,
			Logger:       cmdLogger(cmd),
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
				res, err := comp.CompressFile(ctx, path)
				overBudget := errors.Is(err, compress.ErrTargetUnreachable)
				if err != nil && !overBudget {
					return err
				}
				name := outName(path, hook, "", ".jpg")
				if err := os.WriteFile(filepath.Join(outDir, name), res.Data, 0o644); err != nil {
					return err
				}
				note := ""
				if overBudget {
					note = " (over budget, best effort)"
				}
				fmt.Fprintf(os.Stderr, "      %s: %d bytes, q=%d, %dx%d%s\n",
					name, len(res.Data), res.Quality, res.Width, res.Height, note)
				return nil
			})
		reportSummary(report)
		return err
	},
}

func init() {
	compressCmd.Flags().Int("target-kb", 200, "output size budget in KiB")
	compressCmd.Flags().Int("min-quality", 20, "lowest JPEG quality to try")
	compressCmd.Flags().Int("max-quality", 90, "highest JPEG quality to try")
	compressCmd.Flags().Int("min-dimension", 64, "stop shrinking once the longer side would drop below this")
	compressCmd.Flags().String("out-dir", ".", "output directory")
	compressCmd.Flags().Bool("continue-on-error", false, "keep going when a file fails")
	compressCmd.Flags().String("hook", "", "JavaScript naming hook (inline or path)")

	rootCmd.AddCommand(compressCmd)
}
