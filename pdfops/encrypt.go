package pdfops

import (
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/wudi/convertkit/observability"
)

// Permissions selects what an opener holding only the user password may do.
type Permissions uint8

const (
	// PermissionsNone forbids printing, copying and modification.
	PermissionsNone Permissions = iota
	// PermissionsPrint allows printing only.
	PermissionsPrint
	// PermissionsAll grants every permission bit.
	PermissionsAll
)

func (p Permissions) flags() model.PermissionFlags {
	switch p {
	case PermissionsPrint:
		return model.PermissionsPrint
	case PermissionsAll:
		return model.PermissionsAll
	}
	return model.PermissionsNone
}

// Encrypt password-protects inPath with AES-256 and writes it to outPath.
// The owner password unlocks everything; the user password opens the
// document under the given permissions. An empty owner password falls back
// to the user password so the file is never silently left without one.
func (o *Ops) Encrypt(ctx context.Context, inPath, outPath, ownerPW, userPW string, perms Permissions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ownerPW == "" && userPW == "" {
		return fmt.Errorf("pdfops: encrypt requires at least one password")
	}
	if ownerPW == "" {
		ownerPW = userPW
	}

	conf := o.conf()
	conf.OwnerPW = ownerPW
	conf.UserPW = userPW
	conf.EncryptUsingAES = true
	conf.EncryptKeyLength = 256
	conf.Permissions = perms.flags()

	if err := api.EncryptFile(inPath, outPath, conf); err != nil {
		return fmt.Errorf("pdfops: encrypt: %w", err)
	}
	o.logger.Info("encrypted pdf", observability.String("out", outPath))
	return nil
}

// Decrypt removes encryption from inPath using the supplied password and
// writes the clear document to outPath.
func (o *Ops) Decrypt(ctx context.Context, inPath, outPath, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	conf := o.conf()
	conf.OwnerPW = password
	conf.UserPW = password

	if err := api.DecryptFile(inPath, outPath, conf); err != nil {
		return fmt.Errorf("pdfops: decrypt: %w", err)
	}
	o.logger.Info("decrypted pdf", observability.String("out", outPath))
	return nil
}
