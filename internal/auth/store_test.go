package auth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/jornada/internal/domain"
	"github.com/alexanderramin/jornada/internal/repository"
	"github.com/alexanderramin/jornada/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedVerifier blocks Verify for emails that have a gate until the gate is
// closed, and reports every call on entered.
type gatedVerifier struct {
	inner   Verifier
	mu      sync.Mutex
	gates   map[string]chan struct{}
	entered chan string
}

func newGatedVerifier(inner Verifier, emails ...string) *gatedVerifier {
	g := &gatedVerifier{
		inner:   inner,
		gates:   make(map[string]chan struct{}),
		entered: make(chan string, 8),
	}
	for _, e := range emails {
		g.gates[e] = make(chan struct{})
	}
	return g
}

func (g *gatedVerifier) Verify(ctx context.Context, email, password string) (*domain.User, bool) {
	g.entered <- email
	g.mu.Lock()
	gate := g.gates[email]
	g.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return g.inner.Verify(ctx, email, password)
}

func (g *gatedVerifier) release(email string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	close(g.gates[email])
}

func newTestStore(t *testing.T, kv repository.KVRepo, v Verifier) *Store {
	t.Helper()
	if kv == nil {
		kv = repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	}
	if v == nil {
		v = newTestVerifier(t)
	}
	return NewStore(context.Background(), kv, v, WithDelay(0))
}

func loginAsync(s *Store, email, password string) <-chan bool {
	done := make(chan bool, 1)
	go func() { done <- s.Login(context.Background(), email, password) }()
	return done
}

func waitResult(t *testing.T, ch <-chan bool) bool {
	t.Helper()
	select {
	case ok := <-ch:
		return ok
	case <-time.After(5 * time.Second):
		t.Fatal("login did not resolve")
		return false
	}
}

func TestStore_StartsEmpty(t *testing.T) {
	s := newTestStore(t, nil, nil)

	sess := s.Session()
	assert.Nil(t, sess.User)
	assert.False(t, sess.IsAuthenticated)
	assert.False(t, sess.IsLoading)
}

func TestStore_Login_Success(t *testing.T) {
	s := newTestStore(t, nil, nil)

	ok := s.Login(context.Background(), "joao@gmail.com", "123")

	require.True(t, ok)
	sess := s.Session()
	require.NotNil(t, sess.User)
	assert.Equal(t, "João Silva", sess.User.Name)
	assert.True(t, sess.IsAuthenticated)
	assert.False(t, sess.IsLoading)
}

func TestStore_Login_Failure(t *testing.T) {
	s := newTestStore(t, nil, nil)

	pairs := [][2]string{
		{"joao@gmail.com", "wrong"},
		{"someone@gmail.com", "123"},
		{"", ""},
	}
	for _, p := range pairs {
		ok := s.Login(context.Background(), p[0], p[1])
		assert.False(t, ok, "pair %v", p)

		sess := s.Session()
		assert.Nil(t, sess.User)
		assert.False(t, sess.IsAuthenticated)
		assert.False(t, sess.IsLoading)
	}
}

func TestStore_Logout_ClearsRegardlessOfState(t *testing.T) {
	s := newTestStore(t, nil, nil)

	s.Logout()
	assert.Equal(t, domain.Session{}, s.Session())

	require.True(t, s.Login(context.Background(), "joao@gmail.com", "123"))
	s.Logout()
	assert.Equal(t, domain.Session{}, s.Session())

	s.SetLoading(true)
	s.Logout()
	s.Logout()
	assert.Equal(t, domain.Session{}, s.Session())
}

func TestStore_SetLoading(t *testing.T) {
	s := newTestStore(t, nil, nil)

	s.SetLoading(true)
	assert.True(t, s.Session().IsLoading)

	s.SetLoading(false)
	assert.False(t, s.Session().IsLoading)
}

func TestStore_LoadingOnlyWhileInFlight(t *testing.T) {
	gv := newGatedVerifier(newTestVerifier(t), "joao@gmail.com")
	s := newTestStore(t, nil, gv)

	assert.False(t, s.Session().IsLoading)

	done := loginAsync(s, "joao@gmail.com", "123")
	<-gv.entered
	assert.True(t, s.Session().IsLoading)
	assert.False(t, s.Session().IsAuthenticated)

	gv.release("joao@gmail.com")
	require.True(t, waitResult(t, done))
	assert.False(t, s.Session().IsLoading)
}

func TestStore_LoginHonoursDelay(t *testing.T) {
	kv := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	s := NewStore(context.Background(), kv, newTestVerifier(t), WithDelay(30*time.Millisecond))

	start := time.Now()
	ok := s.Login(context.Background(), "joao@gmail.com", "123")

	assert.True(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestStore_Login_ContextCancelled(t *testing.T) {
	kv := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	s := NewStore(context.Background(), kv, newTestVerifier(t), WithDelay(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan bool, 1)
	go func() { done <- s.Login(ctx, "joao@gmail.com", "123") }()

	require.Eventually(t, func() bool { return s.Session().IsLoading }, time.Second, time.Millisecond)
	cancel()

	assert.False(t, waitResult(t, done))
	sess := s.Session()
	assert.False(t, sess.IsLoading)
	assert.False(t, sess.IsAuthenticated)
}

func TestStore_StaleLoginDoesNotOverwriteNewer(t *testing.T) {
	gv := newGatedVerifier(newTestVerifier(t), "joao@gmail.com")
	s := newTestStore(t, nil, gv)

	first := loginAsync(s, "joao@gmail.com", "123")
	<-gv.entered

	// A newer attempt with bad credentials resolves while the first waits.
	assert.False(t, s.Login(context.Background(), "intruder@gmail.com", "123"))
	<-gv.entered

	gv.release("joao@gmail.com")
	assert.False(t, waitResult(t, first), "superseded attempt must not report success")

	sess := s.Session()
	assert.False(t, sess.IsAuthenticated)
	assert.Nil(t, sess.User)
	assert.False(t, sess.IsLoading)
}

func TestStore_LogoutSupersedesInFlightLogin(t *testing.T) {
	gv := newGatedVerifier(newTestVerifier(t), "joao@gmail.com")
	s := newTestStore(t, nil, gv)

	done := loginAsync(s, "joao@gmail.com", "123")
	<-gv.entered

	s.Logout()
	assert.False(t, s.Session().IsLoading)

	gv.release("joao@gmail.com")
	assert.False(t, waitResult(t, done))
	assert.False(t, s.Session().IsAuthenticated)
}

func TestStore_PersistsUnderStorageKey(t *testing.T) {
	kv := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	s := newTestStore(t, kv, nil)

	require.True(t, s.Login(context.Background(), "joao@gmail.com", "123"))

	raw, err := kv.Get(context.Background(), StorageKey)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	state, ok := decoded["state"].(map[string]any)
	require.True(t, ok, "payload: %s", raw)
	assert.Equal(t, true, state["isAuthenticated"])
	assert.Equal(t, false, state["isLoading"])
	user, ok := state["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "joao@gmail.com", user["email"])
	assert.Equal(t, float64(0), decoded["version"])
}

func TestStore_LogoutRemovesPersistedRecord(t *testing.T) {
	kv := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	s := newTestStore(t, kv, nil)
	require.True(t, s.Login(context.Background(), "joao@gmail.com", "123"))

	s.Logout()

	_, err := kv.Get(context.Background(), StorageKey)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	s.Logout()
	_, err = kv.Get(context.Background(), StorageKey)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_RehydratesAcrossRestart(t *testing.T) {
	kv := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	first := newTestStore(t, kv, nil)
	require.True(t, first.Login(context.Background(), "joao@gmail.com", "123"))

	second := newTestStore(t, kv, nil)

	sess := second.Session()
	assert.True(t, sess.IsAuthenticated)
	require.NotNil(t, sess.User)
	assert.Equal(t, "1", sess.User.ID)

	second.Logout()
	third := newTestStore(t, kv, nil)
	assert.Equal(t, domain.Session{}, third.Session())
}

func TestStore_Rehydrate_BadDataYieldsEmptySession(t *testing.T) {
	cases := map[string]string{
		"corrupt json":           `{"state":`,
		"wrong shape":            `[1,2,3]`,
		"authenticated w/o user": `{"state":{"user":null,"isAuthenticated":true,"isLoading":false},"version":0}`,
		"user w/o flag":          `{"state":{"user":{"id":"1","name":"x","email":"e"},"isAuthenticated":false},"version":0}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			kv := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
			require.NoError(t, kv.Put(context.Background(), StorageKey, payload))

			s := newTestStore(t, kv, nil)
			assert.Equal(t, domain.Session{}, s.Session())
		})
	}
}

func TestStore_Rehydrate_ClearsStaleLoading(t *testing.T) {
	kv := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	payload := `{"state":{"user":null,"isAuthenticated":false,"isLoading":true},"version":0}`
	require.NoError(t, kv.Put(context.Background(), StorageKey, payload))

	s := newTestStore(t, kv, nil)
	assert.False(t, s.Session().IsLoading)
}

func TestStore_ReadFailureYieldsEmptySession(t *testing.T) {
	conn := &testutil.FailingDBTX{DBTX: testutil.NewTestDB(t), FailReads: true, Err: errors.New("io")}
	kv := repository.NewSQLiteKVRepo(conn)

	s := newTestStore(t, kv, nil)
	assert.Equal(t, domain.Session{}, s.Session())
}

func TestStore_WriteFailureIsNotPropagated(t *testing.T) {
	conn := &testutil.FailingDBTX{DBTX: testutil.NewTestDB(t), Err: errors.New("read-only")}
	kv := repository.NewSQLiteKVRepo(conn)
	s := newTestStore(t, kv, nil)

	ok := s.Login(context.Background(), "joao@gmail.com", "123")

	assert.True(t, ok)
	assert.True(t, s.Session().IsAuthenticated)
	s.Logout()
	assert.False(t, s.Session().IsAuthenticated)
}

func TestStore_SessionSnapshotIsIsolated(t *testing.T) {
	s := newTestStore(t, nil, nil)
	require.True(t, s.Login(context.Background(), "joao@gmail.com", "123"))

	snap := s.Session()
	snap.User.Name = "mutated"

	assert.Equal(t, "João Silva", s.Session().User.Name)
}
