package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wudi/convertkit/pdfops"
)

var protectCmd = &cobra.Command{
	Use:   "protect <pdf>",
	Short: "Encrypt a PDF with AES-256",
	Long: `Protect encrypts a PDF. The user password opens the document; the owner
password (falling back to the user password) controls permission changes.
--permissions limits what an opened document allows: none, print, or all.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		ownerPW, _ := cmd.Flags().GetString("owner-pw")
		userPW, _ := cmd.Flags().GetString("user-pw")
		permsArg, _ := cmd.Flags().GetString("permissions")

		perms, err := parsePermissions(permsArg)
		if err != nil {
			return err
		}
		return pdfops.New(cmdLogger(cmd)).Encrypt(cmd.Context(), args[0], out, ownerPW, userPW, perms)
	},
}

var unprotectCmd = &cobra.Command{
	Use:   "unprotect <pdf>",
	Short: "Remove PDF encryption",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		password, _ := cmd.Flags().GetString("password")
		return pdfops.New(cmdLogger(cmd)).Decrypt(cmd.Context(), args[0], out, password)
	},
}

func parsePermissions(s string) (pdfops.Permissions, error) {
	switch s {
	case "none", "":
		return pdfops.PermissionsNone, nil
	case "print":
		return pdfops.PermissionsPrint, nil
	case "all":
		return pdfops.PermissionsAll, nil
	}
	return 0, fmt.Errorf("bad --permissions %q: want none, print, or all", s)
}

func init() {
	protectCmd.Flags().StringP("output", "o", "", "output path (default: overwrite input)")
	protectCmd.Flags().String("owner-pw", "", "owner password (default: the user password)")
	protectCmd.Flags().String("user-pw", "", "user password")
	protectCmd.Flags().String("permissions", "none", "permissions after opening: none, print, or all")

	unprotectCmd.Flags().StringP("output", "o", "", "output path (default: overwrite input)")
	unprotectCmd.Flags().String("password", "", "owner or user password")

	rootCmd.AddCommand(protectCmd, unprotectCmd)
}
