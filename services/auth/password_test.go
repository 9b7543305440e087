package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"bookingsite/database/memstore"
	userRepo "bookingsite/database/repository/user"
	"bookingsite/models"
	"bookingsite/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memorySessions is a SessionStore that ignores TTLs.
type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttls     map[string]time.Duration
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: map[string]Session{}, ttls: map[string]time.Duration{}}
}

func (m *memorySessions) Save(_ context.Context, id string, s Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
	m.ttls[id] = ttl
	return nil
}

func (m *memorySessions) Load(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memorySessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

var testSecret = []byte("test-secret")

func newPasswordProvider(t *testing.T) (*PasswordProvider, *memorySessions) {
	t.Helper()
	users := userRepo.NewUserRepo(memstore.New())
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = users.Create(context.Background(), models.User{Email: "owner@example.com", PasswordHash: string(hash)})
	require.NoError(t, err)

	sessions := newMemorySessions()
	return &PasswordProvider{Users: users, Sessions: sessions, Secret: testSecret, TTL: time.Hour}, sessions
}

func TestPasswordProvider_SignIn(t *testing.T) {
	p, sessions := newPasswordProvider(t)
	ctx := WithSessionID(context.Background(), "s1")

	session, err := p.SignIn(ctx, "owner@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", session.Email)
	assert.NotEmpty(t, session.UserID)

	claims, err := utils.ValidateToken(testSecret, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, claims.Subject)
	assert.Equal(t, time.Hour, sessions.ttls["s1"])

	current, err := p.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "owner@example.com", current.Email)

	// Other session ids are unaffected.
	other, err := p.CurrentSession(WithSessionID(context.Background(), "s2"))
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestPasswordProvider_RejectsBadCredentials(t *testing.T) {
	p, sessions := newPasswordProvider(t)
	ctx := context.Background()

	_, err := p.SignIn(ctx, "owner@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = p.SignIn(ctx, "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.Empty(t, sessions.sessions)
}

func TestPasswordProvider_SignOut(t *testing.T) {
	p, _ := newPasswordProvider(t)
	ctx := WithSessionID(context.Background(), "s1")

	_, err := p.SignIn(ctx, "owner@example.com", "hunter2")
	require.NoError(t, err)
	require.NoError(t, p.SignOut(ctx))

	current, err := p.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestPasswordProvider_DropsInvalidToken(t *testing.T) {
	p, sessions := newPasswordProvider(t)
	ctx := WithSessionID(context.Background(), "s1")
	require.NoError(t, sessions.Save(ctx, "s1", Session{Email: "owner@example.com", Token: "garbage"}, time.Hour))

	current, err := p.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
	assert.NotContains(t, sessions.sessions, "s1")
}

func TestPasswordProvider_DefaultTTL(t *testing.T) {
	p, sessions := newPasswordProvider(t)
	p.TTL = 0

	_, err := p.SignIn(context.Background(), "owner@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultSessionTTL, sessions.ttls[DefaultSessionID])
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2")))
}

func TestSessionIDFrom(t *testing.T) {
	assert.Equal(t, DefaultSessionID, SessionIDFrom(context.Background()))
	assert.Equal(t, DefaultSessionID, SessionIDFrom(WithSessionID(context.Background(), "")))
	assert.Equal(t, "abc", SessionIDFrom(WithSessionID(context.Background(), "abc")))
}
