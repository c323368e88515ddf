package password

import (
	"crypto/rand"
	"errors"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultGeneratedLength = 12
	generatorAlphabet      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%"
)

var ErrEmptyPassword = errors.New("password must not be empty")

// Hash returns a bcrypt hash of plain.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares plain against hash. A malformed hash never matches.
func Verify(plain, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Generate returns a random password of length n drawn from letters, digits and !@#$%.
func Generate(n int) (string, error) {
	if n <= 0 {
		n = DefaultGeneratedLength
	}
	max := big.NewInt(int64(len(generatorAlphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = generatorAlphabet[idx.Int64()]
	}
	return string(out), nil
}
