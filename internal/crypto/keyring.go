// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// keyringSalt is a fixed application salt for the Argon2id stretch. It must
// never change: both sides derive their keys independently from the shared
// secret, so the derivation has to be fully deterministic.
var keyringSalt = []byte("expense-keeper/keyring/v1")

// HKDF purpose labels. Each label yields an independent subkey from the
// same master key.
const (
	purposeTokenSign = "expense-keeper/token-sign"
	purposeBodyHash  = "expense-keeper/body-hash"
)

// subKeyLen is the length of every derived subkey: 32 bytes (256 bits).
const subKeyLen = 32

// keyringService is the private implementation of [KeyringService].
type keyringService struct {
	// Derived once at construction and never rotated within a process
	// lifetime.
	tokenSignKey []byte
	bodyHashKey  []byte
}

// NewKeyringService derives the transport keys from the shared secret and
// returns a ready [KeyringService].
//
// The secret is first stretched into a 256-bit master key with Argon2id
// using the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//
// The master key is then expanded with HKDF-SHA256 into one subkey per
// purpose. The stretch runs once per process start, so the Argon2id memory
// cost is paid only at construction.
//
// Returns an error if the secret is empty or key expansion fails.
func NewKeyringService(secret string) (KeyringService, error) {
	if secret == "" {
		return nil, errors.New("empty secret for keyring")
	}

	master := argon2.IDKey(
		[]byte(secret),
		keyringSalt,
		1,
		64*1024, // 64 MiB
		4,
		subKeyLen,
	)

	tokenSignKey, err := expandKey(master, purposeTokenSign)
	if err != nil {
		return nil, fmt.Errorf("error deriving token sign key: %w", err)
	}

	bodyHashKey, err := expandKey(master, purposeBodyHash)
	if err != nil {
		return nil, fmt.Errorf("error deriving body hash key: %w", err)
	}

	return &keyringService{
		tokenSignKey: tokenSignKey,
		bodyHashKey:  bodyHashKey,
	}, nil
}

// TokenSignKey implements [KeyringService].
func (k *keyringService) TokenSignKey() []byte {
	return k.tokenSignKey
}

// BodyHashKey implements [KeyringService].
func (k *keyringService) BodyHashKey() []byte {
	return k.bodyHashKey
}

// expandKey reads one subKeyLen-byte subkey from an HKDF-SHA256 stream
// keyed by master and bound to the given purpose label.
func expandKey(master []byte, purpose string) ([]byte, error) {
	r := hkdf.New(sha256.New, master, nil, []byte(purpose))

	key := make([]byte, subKeyLen)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}

	return key, nil
}
