package connection

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/yourusername/cheesecake-chat/internal/protocol"
)

// maxResponseSize caps how much of a /chat body is read
const maxResponseSize = 1 << 20

// StatusError is returned when /chat answers with a non-2xx status
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chat: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// Manager sends chat turns to the /chat endpoint
type Manager struct {
	endpoint      string
	httpClient    *http.Client
	state         *State
	eventCallback func(Event)
	mu            sync.RWMutex
	wg            sync.WaitGroup
}

// Option customizes a Manager
type Option func(*Manager)

// WithHTTPClient replaces the HTTP client used for requests
func WithHTTPClient(c *http.Client) Option {
	return func(m *Manager) {
		if c != nil {
			m.httpClient = c
		}
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) {
		m.httpClient.Timeout = d
	}
}

// NewManager creates a new connection manager for the given /chat URL
func NewManager(endpoint string, opts ...Option) *Manager {
	m := &Manager{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		state:      NewState(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Endpoint returns the /chat URL
func (m *Manager) Endpoint() string {
	return m.endpoint
}

// OnEvent sets the callback for events
func (m *Manager) OnEvent(callback func(Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventCallback = callback
}

// InFlight returns the number of requests awaiting an answer
func (m *Manager) InFlight() int {
	return m.state.InFlight()
}

// Send asks /chat in the background and reports the outcome as a ReplyEvent
// or FailedEvent tagged with placeholderID. Each call issues exactly one
// request; concurrent sends are not serialized.
func (m *Manager) Send(placeholderID, query string) {
	m.state.begin(placeholderID)
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		resp, err := m.Ask(context.Background(), query)
		took := m.state.finish(placeholderID)
		if err != nil {
			log.Printf("[chat] request %s failed after %s: %v", placeholderID, took, err)
			m.sendEvent(FailedEvent{PlaceholderID: placeholderID, Err: err})
			return
		}
		log.Printf("[chat] request %s answered in %s with %d products", placeholderID, took, len(resp.Products))
		m.sendEvent(ReplyEvent{PlaceholderID: placeholderID, Response: resp})
	}()
}

// Wait blocks until every background send has reported
func (m *Manager) Wait() {
	m.wg.Wait()
}

// Ask performs one /chat round trip
func (m *Manager) Ask(ctx context.Context, query string) (*protocol.ChatResponse, error) {
	body, err := protocol.EncodeRequest(query)
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post chat request: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: res.StatusCode,
			URL:        m.endpoint,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	resp, err := protocol.DecodeResponse(data)
	if err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	return resp, nil
}

// sendEvent sends an event to the callback if set
func (m *Manager) sendEvent(event Event) {
	m.mu.RLock()
	callback := m.eventCallback
	m.mu.RUnlock()

	if callback != nil {
		callback(event)
	}
}
