package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keyring_service_mock.go -package=mock

// KeyringService derives the transport keys both sides of the sync protocol
// need from the single shared secret. It knows nothing about the network,
// the database, or expenses. Its only job is to turn one low-entropy secret
// into strong purpose-bound keys.
//
// Derivation scheme:
//
//	master       = Argon2id(secret, fixed salt)
//	TokenSignKey = HKDF(master, "token-sign")
//	BodyHashKey  = HKDF(master, "body-hash")
//
// Because the salt and purpose labels are fixed, a client and a server
// configured with the same secret derive byte-identical keys without ever
// exchanging key material.
type KeyringService interface {
	// TokenSignKey returns the key used to sign and verify session tokens
	// (HMAC-SHA256 JWT).
	TokenSignKey() []byte

	// BodyHashKey returns the key used to sign and verify request body
	// hashes on the sync transport.
	BodyHashKey() []byte
}
