// Package llm is the outbound chat-completions collaborator used by the
// chat screen and the ask command.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// FallbackAnswer is returned when the service replies without content.
const FallbackAnswer = "No response received"

// Answer is the result of a successful Ask.
type Answer struct {
	Text       string
	Confidence *float64
	Sources    []string
}

// Asker answers free-text questions.
type Asker interface {
	Ask(ctx context.Context, question, contextText string) (*Answer, error)
}

// Client implements Asker against a chat-completions HTTP API.
type Client struct {
	cfg      AskConfig
	http     *http.Client
	observer Observer
}

// NewClient creates a Client. A nil observer discards events.
func NewClient(cfg AskConfig, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the JSON body sent to POST /chat/completions.
type chatRequest struct {
	Messages  []chatMessage `json:"messages"`
	Stream    bool          `json:"stream"`
	MaxTokens int           `json:"max_tokens"`
}

// chatResponse is the subset of the reply the client reads.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Confidence *float64 `json:"confidence,omitempty"`
	Sources    []string `json:"sources,omitempty"`
}

// statusError carries a non-2xx HTTP status.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("service returned status %d: %s", e.code, e.body)
}

// Ask sends question, prefixed by an optional context system message, and
// returns the first choice. Every failure wraps ErrRequestFailed; there is no
// retry.
func (c *Client) Ask(ctx context.Context, question, contextText string) (*Answer, error) {
	if !c.cfg.Enabled {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, ErrDisabled)
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	resp, err := c.doRequest(ctx, buildRequest(question, contextText, c.cfg.MaxTokens))

	event := CallEvent{
		Endpoint:  c.cfg.Endpoint,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	var se *statusError
	if errors.As(err, &se) {
		event.Status = se.code
	} else if err == nil {
		event.Status = http.StatusOK
	}
	if err != nil {
		event.ErrorCode = errorCode(ctx, err)
	}
	if c.cfg.LogCalls || err != nil {
		c.observer.OnCallComplete(event)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	answer := &Answer{
		Text:       FallbackAnswer,
		Confidence: resp.Confidence,
		Sources:    resp.Sources,
	}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		answer.Text = resp.Choices[0].Message.Content
	}
	return answer, nil
}

func buildRequest(question, contextText string, maxTokens int) chatRequest {
	var msgs []chatMessage
	if contextText != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: "Contexto: " + contextText})
	}
	msgs = append(msgs, chatMessage{Role: "user", Content: question})
	return chatRequest{Messages: msgs, Stream: false, MaxTokens: maxTokens}
}

func (c *Client) doRequest(ctx context.Context, body chatRequest) (*chatResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := strings.TrimRight(c.cfg.Endpoint, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, &statusError{code: httpResp.StatusCode, body: string(respBody)}
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

func errorCode(ctx context.Context, err error) string {
	var se *statusError
	var netErr *net.OpError
	switch {
	case ctx.Err() != nil:
		return "TIMEOUT"
	case errors.As(err, &se):
		return "STATUS"
	case errors.As(err, &netErr):
		return "UNAVAILABLE"
	default:
		return "INVALID_OUTPUT"
	}
}
