package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokensRoundTrip(t *testing.T) {
	m := NewSessionTokens("k1", time.Hour)
	tok, exp, err := m.Issue("sid-1", 42)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	c, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", c.SessionID)
	uid, err := c.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), uid)
}

func TestSessionTokensReject(t *testing.T) {
	m := NewSessionTokens("k1", time.Hour)
	tok, _, err := m.Issue("sid-1", 1)
	require.NoError(t, err)

	_, err = NewSessionTokens("other", time.Hour).Parse(tok)
	assert.Error(t, err)

	expired := NewSessionTokens("k1", -time.Minute)
	old, _, err := expired.Issue("sid-2", 1)
	require.NoError(t, err)
	_, err = m.Parse(old)
	assert.Error(t, err)

	_, err = m.Parse("garbage")
	assert.Error(t, err)
}
