package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCreatesAndReuses(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Close()

	id, page, created := s.Resolve("")
	require.True(t, created)
	require.NotNil(t, page)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	again, samePage, created := s.Resolve(id)
	assert.False(t, created)
	assert.Equal(t, id, again)
	assert.Same(t, page, samePage)
	assert.Equal(t, 1, s.Count())
}

func TestResolveUnknownIDStartsNewSession(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Close()

	id, _, created := s.Resolve("not-a-session")
	assert.True(t, created)
	assert.NotEqual(t, "not-a-session", id)
}

func TestSessionsAreIndependent(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Close()

	_, a := s.Create()
	_, b := s.Create()
	a.Nav.Toggle()

	assert.True(t, a.Nav.Open())
	assert.False(t, b.Nav.Open())
}

func TestSessionExpires(t *testing.T) {
	s := NewStore(50 * time.Millisecond)
	defer s.Close()

	id, _ := s.Create()
	// Count does not touch entries, so polling it cannot extend the TTL
	assert.Eventually(t, func() bool { return s.Count() == 0 }, 2*time.Second, 20*time.Millisecond)

	_, ok := s.Get(id)
	assert.False(t, ok)
}
