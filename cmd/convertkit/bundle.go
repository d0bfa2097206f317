package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wudi/convertkit/archive"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle [files...]",
	Short: "Pack files into a ZIP, optionally password-sealed",
	Long: `Bundle zips the inputs under their base names. With --password the
archive is additionally encrypted; such bundles can only be opened again
with unbundle and the same password.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		password, _ := cmd.Flags().GetString("password")

		var buf bytes.Buffer
		if err := archive.BundlePaths(cmd.Context(), &buf, args); err != nil {
			return err
		}
		data := buf.Bytes()
		if password != "" {
			sealed, err := archive.Seal(data, password)
			if err != nil {
				return err
			}
			data = sealed
		}
		return os.WriteFile(out, data, 0o644)
	},
}

var unbundleCmd = &cobra.Command{
	Use:   "unbundle <bundle>",
	Short: "Unpack a bundle created by bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		outDir, err := ensureOutDir(cmd)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if opened, err := archive.Open(data, password); err == nil {
			data = opened
		} else if !errors.Is(err, archive.ErrNotSealed) {
			return err
		}

		files, err := archive.Extract(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return err
		}
		for _, f := range files {
			// Entry names come from the archive; refuse path escapes.
			if strings.Contains(f.Name, "..") {
				return errors.New("bundle entry escapes output dir: " + f.Name)
			}
			if err := writeEntry(outDir, f); err != nil {
				return err
			}
		}
		return nil
	},
}

func writeEntry(outDir string, f archive.File) error {
	dest := filepath.Join(outDir, f.Name)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, f.Data, 0o644)
}

func init() {
	bundleCmd.Flags().StringP("output", "o", "bundle.zip", "output path")
	bundleCmd.Flags().String("password", "", "seal the bundle with this password")

	unbundleCmd.Flags().String("password", "", "password for sealed bundles")
	unbundleCmd.Flags().String("out-dir", ".", "output directory")

	rootCmd.AddCommand(bundleCmd, unbundleCmd)
}
