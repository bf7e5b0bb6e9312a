package helpers

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/scrypt"
)

const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltBytes    = 16
)

// HashPassword hashes plain with scrypt and returns "<hex key>.<hex salt>".
func HashPassword(plain string) (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(raw)
	key, err := scrypt.Key([]byte(plain), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key) + "." + salt, nil
}

// CompareHashAndPassword reports whether plain matches hash. Hashes written
// by older bcrypt-based deployments are still accepted.
func CompareHashAndPassword(hash, plain string) bool {
	if strings.HasPrefix(hash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
	}
	want, salt, err := splitHash(hash)
	if err != nil {
		return false
	}
	got, err := scrypt.Key([]byte(plain), []byte(salt), scryptN, scryptR, scryptP, len(want))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(want, got) == 1
}

func splitHash(hash string) ([]byte, string, error) {
	keyHex, salt, ok := strings.Cut(hash, ".")
	if !ok || salt == "" {
		return nil, "", errors.New("malformed password hash")
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) == 0 {
		return nil, "", errors.New("malformed password hash")
	}
	return key, salt, nil
}
