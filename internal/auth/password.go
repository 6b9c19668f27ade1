// internal/auth/password.go
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"golang.org/x/crypto/argon2"
)

const minPasswordLength = 8

type PasswordConfig struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

type PasswordHasher struct {
	config PasswordConfig
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{
		config: PasswordConfig{
			time:    1,
			memory:  64 * 1024,
			threads: 4,
			keyLen:  32,
		},
	}
}

// CheckStrength rejects passwords shorter than eight characters or missing
// either a letter or a digit.
func CheckStrength(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return domain.ErrPasswordTooWeak
	}
	var letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !letter || !digit {
		return domain.ErrPasswordTooWeak
	}
	return nil
}

func (p *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.config.time, p.config.memory, p.config.threads, p.config.keyLen)

	// Format: $argon2id$v=19$m=65536,t=1,p=4$salt$hash
	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.config.memory,
		p.config.time,
		p.config.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func decodeHash(encodedHash string) (PasswordConfig, []byte, []byte, error) {
	var config PasswordConfig
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return config, nil, nil, fmt.Errorf("invalid hash format")
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &config.memory, &config.time, &config.threads); err != nil {
		return config, nil, nil, fmt.Errorf("invalid hash format: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return config, nil, nil, fmt.Errorf("invalid salt: %w", err)
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return config, nil, nil, fmt.Errorf("invalid hash: %w", err)
	}
	config.keyLen = uint32(len(hash))
	return config, salt, hash, nil
}

func (p *PasswordHasher) Verify(password, encodedHash string) (bool, error) {
	config, salt, decodedHash, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	comparisonHash := argon2.IDKey([]byte(password), salt, config.time, config.memory, config.threads, config.keyLen)
	return subtle.ConstantTimeCompare(decodedHash, comparisonHash) == 1, nil
}

// NeedsRehash reports whether encodedHash was produced with weaker
// parameters than the hasher's current ones.
func (p *PasswordHasher) NeedsRehash(encodedHash string) bool {
	config, _, _, err := decodeHash(encodedHash)
	if err != nil {
		return true
	}
	return config.memory < p.config.memory || config.time < p.config.time || config.keyLen < p.config.keyLen
}
