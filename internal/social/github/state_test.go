package github

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateTokenIsDeterministic(t *testing.T) {
	first := StateToken("https://app.example.com/login")
	second := StateToken("https://app.example.com/login")

	assert.Equal(t, first, second)
}

func TestStateTokenDiffersPerRedirectURI(t *testing.T) {
	assert.NotEqual(t,
		StateToken("https://app.example.com/login"),
		StateToken("https://other.example.com/login"),
	)
}

func TestStateTokenIsNameBased(t *testing.T) {
	parsed, err := uuid.Parse(StateToken("https://app.example.com/login"))
	require.NoError(t, err)

	assert.Equal(t, uuid.Version(5), parsed.Version())
}
