package session

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/loomctl/internal/client/models"
	"github.com/loomworks/loomctl/internal/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(logging.NewTextLogger(io.Discard, "error"))
}

func TestStore_InitialState(t *testing.T) {
	st := newTestStore(t)

	require.Equal(t, StateUnknown, st.State())
	snap := st.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.True(t, snap.Loading)
	assert.Nil(t, snap.User)
}

func TestStore_Checking(t *testing.T) {
	st := newTestStore(t)
	st.SetChecking()

	snap := st.Snapshot()
	assert.True(t, snap.Loading)
	assert.False(t, snap.Authenticated)
}

func TestStore_Authenticated(t *testing.T) {
	st := newTestStore(t)
	st.SetAuthenticated(&models.User{Username: "jdoe", Credits: 10})

	snap := st.Snapshot()
	assert.True(t, snap.Authenticated)
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.User)
	assert.Equal(t, "jdoe", snap.User.Username)
}

func TestStore_AuthenticatedWithNilUser(t *testing.T) {
	st := newTestStore(t)
	st.SetAuthenticated(nil)

	snap := st.Snapshot()
	assert.True(t, snap.Authenticated)
	assert.Nil(t, snap.User)
}

func TestStore_Unauthenticated_DropsUser(t *testing.T) {
	st := newTestStore(t)
	st.SetAuthenticated(&models.User{Username: "jdoe"})
	st.SetUnauthenticated()

	snap := st.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.False(t, snap.Loading)
	assert.Nil(t, snap.User)
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	st := newTestStore(t)
	st.SetAuthenticated(&models.User{Username: "jdoe", Credits: 10})

	snap := st.Snapshot()
	snap.User.Credits = 9999
	snap.User.Username = "mallory"

	again := st.Snapshot()
	assert.Equal(t, "jdoe", again.User.Username)
	assert.Equal(t, int64(10), again.User.Credits)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unknown", StateUnknown.String())
	assert.Equal(t, "checking", StateChecking.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
	assert.Equal(t, "unauthenticated", StateUnauthenticated.String())
}
