package archive

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// Sealed bundle layout: magic, 16-byte scrypt salt, 12-byte GCM nonce,
// ciphertext. The key is derived with scrypt N=32768, r=8, p=1.
var sealMagic = []byte("CKSEAL1\x00")

const (
	saltSize  = 16
	nonceSize = 12
	scryptN   = 32768
	scryptR   = 8
	scryptP   = 1
)

// ErrBadPassword is returned when a sealed bundle cannot be authenticated
// with the supplied password.
var ErrBadPassword = errors.New("archive: wrong password or corrupted bundle")

// ErrNotSealed is returned when the input lacks the sealed-bundle header.
var ErrNotSealed = errors.New("archive: not a sealed bundle")

// Seal encrypts data under a password. The result can only be recovered by
// Open with the same password.
func Seal(data []byte, password string) ([]byte, error) {
	if password == "" {
		return nil, errors.New("archive: empty password")
	}
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("archive: salt: %w", err)
	}
	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("archive: nonce: %w", err)
	}

	out := make([]byte, 0, len(sealMagic)+saltSize+nonceSize+len(data)+gcm.Overhead())
	out = append(out, sealMagic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, data, nil), nil
}

// Open decrypts a bundle produced by Seal.
func Open(sealed []byte, password string) ([]byte, error) {
	header := len(sealMagic) + saltSize + nonceSize
	if len(sealed) < header || string(sealed[:len(sealMagic)]) != string(sealMagic) {
		return nil, ErrNotSealed
	}
	salt := sealed[len(sealMagic) : len(sealMagic)+saltSize]
	nonce := sealed[len(sealMagic)+saltSize : header]
	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}
	data, err := gcm.Open(nil, nonce, sealed[header:], nil)
	if err != nil {
		return nil, ErrBadPassword
	}
	return data, nil
}

func newGCM(password string, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, 32)
	if err != nil {
		return nil, fmt.Errorf("archive: derive key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("archive: cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("archive: gcm: %w", err)
	}
	return gcm, nil
}
