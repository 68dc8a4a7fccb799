package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// sessionIDBytes is the number of random bytes behind a session identifier.
// Hex encoding doubles it to 64 characters.
const sessionIDBytes = 32

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// A new HMAC instance is created on each call.
//
// Parameters:
//
//	data    - string to be hashed
//	hashKey - secret key used for the HMAC operation
//
// Returns:
//
//	string - hex-encoded HMAC-SHA256 digest
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// VerifyHashString reports whether signature is the hex-encoded HMAC-SHA256
// of data under hashKey. The comparison is constant-time.
func VerifyHashString(data, signature, hashKey string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
//
// This is an internal helper used by HashString and VerifyHashString.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// NewSessionID returns a fresh 64-character hex session identifier drawn
// from crypto/rand.
func NewSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// SignSessionID returns the cookie value "<id>.<hmac(id)>".
func SignSessionID(id, hashKey string) string {
	return id + "." + HashString(id, hashKey)
}

// UnsignSessionID splits a cookie value produced by SignSessionID and checks
// its signature. ok is false for any malformed or tampered value.
func UnsignSessionID(value, hashKey string) (id string, ok bool) {
	id, signature, found := strings.Cut(value, ".")
	if !found || len(id) != sessionIDBytes*2 {
		return "", false
	}
	if !VerifyHashString(id, signature, hashKey) {
		return "", false
	}
	return id, true
}
