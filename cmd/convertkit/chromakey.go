package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wudi/convertkit/batch"
	"github.com/wudi/convertkit/chromakey"
	"github.com/wudi/convertkit/raster"
	"github.com/wudi/convertkit/scripting"
)

var chromakeyCmd = &cobra.Command{
	Use:   "chromakey [images...]",
	Short: "Replace a key-colored background in images",
	Long: `Chromakey removes pixels close to the key color and composites the
remainder over a replacement background, either a solid color or another
image scaled to fit. With --cutout the background step is skipped and the
output keeps its soft alpha matte instead.

Outputs are written as PNG next to --out-dir, named <base>-keyed.png unless
a --hook overrides the name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := chromakeyConfig(cmd)
		if err != nil {
			return err
		}
		pipeline, err := chromakey.New(cfg)
		if err != nil {
			return err
		}
		cutout, _ := cmd.Flags().GetBool("cutout")
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
				var out *raster.Buffer
				if cutout {
					out, err = pipeline.Cutout(ctx, src)
				} else {
					out, err = pipeline.Process(ctx, src)
				}
				if err != nil {
					return err
				}
				name := outName(path, hook, "-keyed", ".png")
				return raster.WritePNGFile(filepath.Join(outDir, name), out)
			})
		reportSummary(report)
		return err
	},
}

// chromakeyConfig resolves the keying parameters, letting a convertkit.yaml
// chromakey section supply defaults under the flags.
func chromakeyConfig(cmd *cobra.Command) (chromakey.Config, error) {
	cfg := chromakey.Config{
		KeyColor:      viper.GetString("chromakey.key"),
		Tolerance:     viper.GetFloat64("chromakey.tolerance"),
		LuminanceGate: viper.GetFloat64("chromakey.luma-gate"),
		Feather:       viper.GetInt("chromakey.feather"),
		EdgeBias:      viper.GetInt("chromakey.edge-bias"),
		SpillStrength: viper.GetFloat64("chromakey.spill"),
		Opacity:       viper.GetInt("chromakey.opacity"),
		Logger:        cmdLogger(cmd),
	}

	blend, err := chromakey.ParseBlendMode(viper.GetString("chromakey.blend"))
	if err != nil {
		return cfg, err
	}
	cfg.Blend = blend

	bgColor, err := chromakey.ParseHexColor(viper.GetString("chromakey.bg-color"))
	if err != nil {
		return cfg, fmt.Errorf("parse --bg-color: %w", err)
	}
	cfg.Background = chromakey.Background{Mode: chromakey.BackgroundColor, Color: bgColor}

	if bgPath := viper.GetString("chromakey.bg-image"); bgPath != "" {
		img, err := raster.DecodeFile(bgPath)
		if err != nil {
			return cfg, fmt.Errorf("load --bg-image: %w", err)
		}
		cfg.Background.Mode = chromakey.BackgroundImage
		cfg.Background.Image = img
	}
	return cfg, nil
}

func init() {
	chromakeyCmd.Flags().String("key", "00ff00", "key color as RGB hex")
	chromakeyCmd.Flags().Float64("tolerance", 60, "chroma distance where keying stops (1-255)")
	chromakeyCmd.Flags().Float64("luma-gate", 0, "max luma drift from the key (0 derives from tolerance)")
	chromakeyCmd.Flags().Int("feather", 0, "matte blur passes (0-4)")
	chromakeyCmd.Flags().Int("edge-bias", 0, "expand (>0) or shrink (<0) the kept region (-3 to 3)")
	chromakeyCmd.Flags().Float64("spill", 0.4, "key-spill suppression strength (0-1)")
	chromakeyCmd.Flags().String("bg-color", "#000000", "replacement background color")
	chromakeyCmd.Flags().String("bg-image", "", "replacement background image")
	chromakeyCmd.Flags().String("blend", "normal", "foreground blend mode: normal, multiply, screen, overlay, darken, lighten")
	chromakeyCmd.Flags().Int("opacity", 100, "foreground opacity percent")
	chromakeyCmd.Flags().Bool("cutout", false, "emit a transparent cutout instead of compositing")
	chromakeyCmd.Flags().String("out-dir", ".", "output directory")
	chromakeyCmd.Flags().Bool("continue-on-error", false, "keep going when a file fails")
	chromakeyCmd.Flags().String("hook", "", "JavaScript naming hook (inline or path)")

	viper.BindPFlag("chromakey.key", chromakeyCmd.Flags().Lookup("key"))
	viper.BindPFlag("chromakey.tolerance", chromakeyCmd.Flags().Lookup("tolerance"))
	viper.BindPFlag("chromakey.luma-gate", chromakeyCmd.Flags().Lookup("luma-gate"))
	viper.BindPFlag("chromakey.feather", chromakeyCmd.Flags().Lookup("feather"))
	viper.BindPFlag("chromakey.edge-bias", chromakeyCmd.Flags().Lookup("edge-bias"))
	viper.BindPFlag("chromakey.spill", chromakeyCmd.Flags().Lookup("spill"))
	viper.BindPFlag("chromakey.opacity", chromakeyCmd.Flags().Lookup("opacity"))
	viper.BindPFlag("chromakey.bg-color", chromakeyCmd.Flags().Lookup("bg-color"))
	viper.BindPFlag("chromakey.bg-image", chromakeyCmd.Flags().Lookup("bg-image"))
	viper.BindPFlag("chromakey.blend", chromakeyCmd.Flags().Lookup("blend"))

	rootCmd.AddCommand(chromakeyCmd)
}
