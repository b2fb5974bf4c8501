// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"testing"
)

func TestNewKeyringService_EmptySecret(t *testing.T) {
	_, err := NewKeyringService("")
	if err == nil {
		t.Fatal("expected error for empty secret, got nil")
	}
}

func TestNewKeyringService_KeyLengths(t *testing.T) {
	svc, err := NewKeyringService("shared-secret")
	if err != nil {
		t.Fatalf("NewKeyringService error: %v", err)
	}

	if len(svc.TokenSignKey()) != 32 {
		t.Fatalf("token sign key length = %d, want 32", len(svc.TokenSignKey()))
	}
	if len(svc.BodyHashKey()) != 32 {
		t.Fatalf("body hash key length = %d, want 32", len(svc.BodyHashKey()))
	}
}

func TestNewKeyringService_DeterministicForSameSecret(t *testing.T) {
	// Two independent keyrings with the same secret must derive identical
	// keys. This is what lets a client and a server agree on key material
	// without ever exchanging it.
	svc1, err := NewKeyringService("shared-secret")
	if err != nil {
		t.Fatalf("NewKeyringService error: %v", err)
	}
	svc2, err := NewKeyringService("shared-secret")
	if err != nil {
		t.Fatalf("NewKeyringService error: %v", err)
	}

	if !bytes.Equal(svc1.TokenSignKey(), svc2.TokenSignKey()) {
		t.Fatal("expected token sign keys to match for the same secret")
	}
	if !bytes.Equal(svc1.BodyHashKey(), svc2.BodyHashKey()) {
		t.Fatal("expected body hash keys to match for the same secret")
	}
}

func TestNewKeyringService_DifferentSecrets(t *testing.T) {
	svc1, err := NewKeyringService("secret-one")
	if err != nil {
		t.Fatalf("NewKeyringService error: %v", err)
	}
	svc2, err := NewKeyringService("secret-two")
	if err != nil {
		t.Fatalf("NewKeyringService error: %v", err)
	}

	if bytes.Equal(svc1.TokenSignKey(), svc2.TokenSignKey()) {
		t.Fatal("expected token sign keys to differ for different secrets")
	}
	if bytes.Equal(svc1.BodyHashKey(), svc2.BodyHashKey()) {
		t.Fatal("expected body hash keys to differ for different secrets")
	}
}

func TestKeyring_PurposeSeparation(t *testing.T) {
	svc, err := NewKeyringService("shared-secret")
	if err != nil {
		t.Fatalf("NewKeyringService error: %v", err)
	}

	if bytes.Equal(svc.TokenSignKey(), svc.BodyHashKey()) {
		t.Fatal("expected token sign key and body hash key to differ")
	}
}
