// Package main is the entry point for the convertkit CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the convertkit CLI.
var rootCmd = &cobra.Command{
	Use:   "convertkit",
	Short: "File conversion and image editing toolkit",
	Long: `convertkit converts and edits files locally: chroma-key background
replacement, target-size image compression, image-to-PDF assembly, PDF
merging, splitting, watermarking and protection, page rendering, OCR, and
Markdown/HTML document conversion.

Each tool is a subcommand. Image tools accept multiple inputs and process
them as a batch; --hook attaches a JavaScript naming hook evaluated per
file.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./convertkit.yaml or ~/.config/convertkit/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("convertkit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "convertkit"))
		}
	}

	viper.SetEnvPrefix("CONVERTKIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
