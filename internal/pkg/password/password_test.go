package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("SecurePass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "SecurePass123!", hash)

	assert.True(t, Verify("SecurePass123!", hash))
	assert.False(t, Verify("securepass123!", hash))
}

func TestHash_Empty(t *testing.T) {
	_, err := Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerify_MalformedHash(t *testing.T) {
	assert.False(t, Verify("anything", ""))
	assert.False(t, Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, Verify("anything", "$2a$10$short"))
}

func TestGenerate(t *testing.T) {
	pw, err := Generate(DefaultGeneratedLength)
	require.NoError(t, err)
	assert.Len(t, pw, 12)
	for _, r := range pw {
		assert.True(t, strings.ContainsRune(generatorAlphabet, r), "unexpected rune %q", r)
	}

	other, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, other, DefaultGeneratedLength)
}
