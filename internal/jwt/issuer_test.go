package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewIssuer(t *testing.T) {
	_, err := NewIssuer("webshop", "", time.Hour)
	require.Error(t, err, "empty secret must be rejected")

	i, err := NewIssuer("webshop", "secret", 0)
	require.NoError(t, err)
	require.Equal(t, 24*time.Hour, i.TTL, "non-positive TTL falls back to 24h")
}

func TestIssueAndParse(t *testing.T) {
	i, err := NewIssuer("webshop", "secret", time.Hour)
	require.NoError(t, err)

	token, err := i.IssueToken("user-1", "ana@example.com")
	require.NoError(t, err)

	claims, err := i.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", Subject(claims))
	require.Equal(t, "ana@example.com", claims["email"])
	require.Equal(t, "webshop", claims["iss"])
}

func TestParse_WrongSecret(t *testing.T) {
	a, err := NewIssuer("webshop", "secret-a", time.Hour)
	require.NoError(t, err)
	b, err := NewIssuer("webshop", "secret-b", time.Hour)
	require.NoError(t, err)

	token, err := a.IssueToken("user-1", "ana@example.com")
	require.NoError(t, err)

	_, err = b.Parse(token)
	require.Error(t, err)
}

func TestParse_WrongIssuer(t *testing.T) {
	a, err := NewIssuer("other-service", "secret", time.Hour)
	require.NoError(t, err)
	b, err := NewIssuer("webshop", "secret", time.Hour)
	require.NoError(t, err)

	token, err := a.IssueToken("user-1", "ana@example.com")
	require.NoError(t, err)

	_, err = b.Parse(token)
	require.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	i, err := NewIssuer("webshop", "secret", time.Hour)
	require.NoError(t, err)
	i.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := i.IssueToken("user-1", "ana@example.com")
	require.NoError(t, err)

	_, err = i.Parse(token)
	require.Error(t, err, "token issued 2h ago with 1h TTL must be expired")
}

func TestParse_Garbage(t *testing.T) {
	i, err := NewIssuer("webshop", "secret", time.Hour)
	require.NoError(t, err)

	_, err = i.Parse("not.a.jwt")
	require.Error(t, err)
}
