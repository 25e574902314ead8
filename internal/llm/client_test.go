package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) AskConfig {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	return cfg
}

type recordingObserver struct {
	mu     sync.Mutex
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) all() []CallEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]CallEvent(nil), o.events...)
}

func TestClient_Ask_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.Stream)
		assert.Equal(t, 1000, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "Quem foi Davi?", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Um rei de Israel."}}],"confidence":0.9,"sources":["1 Samuel 16"]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	ans, err := client.Ask(context.Background(), "Quem foi Davi?", "")

	require.NoError(t, err)
	assert.Equal(t, "Um rei de Israel.", ans.Text)
	require.NotNil(t, ans.Confidence)
	assert.InDelta(t, 0.9, *ans.Confidence, 0.0001)
	assert.Equal(t, []string{"1 Samuel 16"}, ans.Sources)
}

func TestClient_Ask_ContextAndAuth(t *testing.T) {
	var got chatRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL + "/")
	cfg.APIKey = "k-123"
	cfg.MaxTokens = 64
	_, err := NewClient(cfg, nil).Ask(context.Background(), "Pergunta", "Salmos 23")

	require.NoError(t, err)
	assert.Equal(t, "Bearer k-123", auth)
	assert.Equal(t, 64, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, chatMessage{Role: "system", Content: "Contexto: Salmos 23"}, got.Messages[0])
	assert.Equal(t, chatMessage{Role: "user", Content: "Pergunta"}, got.Messages[1])
}

func TestClient_Ask_FallbackAnswer(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"choices":[]}`,
		`{"choices":[{"message":{"content":""}}]}`,
	}
	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		ans, err := NewClient(testConfig(srv.URL), nil).Ask(context.Background(), "q", "")
		srv.Close()

		require.NoError(t, err, body)
		assert.Equal(t, FallbackAnswer, ans.Text, body)
		assert.Nil(t, ans.Confidence)
		assert.Nil(t, ans.Sources)
	}
}

func TestClient_Ask_Failures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"unauthorized": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		},
		"malformed body": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":`))
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()

			obs := &recordingObserver{}
			ans, err := NewClient(testConfig(srv.URL), obs).Ask(context.Background(), "q", "")

			assert.Nil(t, ans)
			assert.ErrorIs(t, err, ErrRequestFailed)
			events := obs.all()
			require.Len(t, events, 1)
			assert.False(t, events[0].Success)
		})
	}
}

func TestClient_Ask_NoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(testConfig(srv.URL), nil).Ask(context.Background(), "q", "")

	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Ask_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	obs := &recordingObserver{}
	start := time.Now()
	_, err := NewClient(cfg, obs).Ask(context.Background(), "q", "")

	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Less(t, time.Since(start), 5*time.Second)
	require.Len(t, obs.all(), 1)
	assert.Equal(t, "TIMEOUT", obs.all()[0].ErrorCode)
}

func TestClient_Ask_Unavailable(t *testing.T) {
	obs := &recordingObserver{}
	_, err := NewClient(testConfig("http://127.0.0.1:1"), obs).Ask(context.Background(), "q", "")

	assert.ErrorIs(t, err, ErrRequestFailed)
	require.Len(t, obs.all(), 1)
	assert.Equal(t, "UNAVAILABLE", obs.all()[0].ErrorCode)
}

func TestClient_Ask_Disabled(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Enabled = false

	_, err := NewClient(cfg, nil).Ask(context.Background(), "q", "")

	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestClient_Ask_LogCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	quiet := &recordingObserver{}
	_, err := NewClient(testConfig(srv.URL), quiet).Ask(context.Background(), "q", "")
	require.NoError(t, err)
	assert.Empty(t, quiet.all())

	cfg := testConfig(srv.URL)
	cfg.LogCalls = true
	loud := &recordingObserver{}
	_, err = NewClient(cfg, loud).Ask(context.Background(), "q", "")
	require.NoError(t, err)
	require.Len(t, loud.all(), 1)
	assert.True(t, loud.all()[0].Success)
	assert.Equal(t, http.StatusOK, loud.all()[0].Status)
}

func TestLogObserver_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	obs.OnCallComplete(CallEvent{Endpoint: "http://x", LatencyMs: 12, Status: 502, ErrorCode: "STATUS"})

	out := buf.String()
	assert.Contains(t, out, "msg=ask_call")
	assert.Contains(t, out, "latency_ms=12")
	assert.Contains(t, out, "status=502")
	assert.Contains(t, out, "error_code=STATUS")
	assert.Contains(t, out, "level=WARN")
}
