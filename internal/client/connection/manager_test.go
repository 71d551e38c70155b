package connection

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Ask
// ---------------------------------------------------------------------------

func TestAsk_PostsQueryAndDecodes(t *testing.T) {
	var gotBody string
	var gotMethod, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"response":"Hi!","products":[{"asin":"B001","title":"Cheddar","avg_rating":4.5}]}`)
	}))
	defer srv.Close()

	m := NewManager(srv.URL + "/chat")
	resp, err := m.Ask(context.Background(), "hello")
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "application/json", gotType)
	require.JSONEq(t, `{"query":"hello"}`, gotBody)
	require.Equal(t, "Hi!", resp.Response)
	require.Len(t, resp.Products, 1)
	require.Equal(t, "Cheddar", resp.Products[0].Title)
}

func TestAsk_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewManager(srv.URL).Ask(context.Background(), "hello")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusInternalServerError, se.StatusCode)
	require.Equal(t, "boom", se.Body)
}

func TestAsk_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	}))
	defer srv.Close()

	_, err := NewManager(srv.URL).Ask(context.Background(), "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode chat response")
}

func TestAsk_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewManager(url).Ask(context.Background(), "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "post chat request")
}

func TestAsk_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	m := NewManager(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := m.Ask(context.Background(), "hello")
	require.Error(t, err)
}

// ---------------------------------------------------------------------------
// Send
// ---------------------------------------------------------------------------

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func TestSend_EmitsReplyEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(map[string]string{"response": "echo " + req.Query})
	}))
	defer srv.Close()

	rec := &recorder{}
	m := NewManager(srv.URL)
	m.OnEvent(rec.record)

	m.Send("msg-1", "cheese")
	m.Wait()

	events := rec.all()
	require.Len(t, events, 1)
	reply, ok := events[0].(ReplyEvent)
	require.True(t, ok)
	require.Equal(t, "msg-1", reply.PlaceholderID)
	require.Equal(t, "echo cheese", reply.Response.Response)
	require.Zero(t, m.InFlight())
}

func TestSend_EmitsFailedEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	rec := &recorder{}
	m := NewManager(srv.URL)
	m.OnEvent(rec.record)

	m.Send("msg-2", "cheese")
	m.Wait()

	events := rec.all()
	require.Len(t, events, 1)
	failed, ok := events[0].(FailedEvent)
	require.True(t, ok)
	require.Equal(t, "msg-2", failed.PlaceholderID)
	require.Error(t, failed.Err)
}

func TestSend_TracksInFlight(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		io.WriteString(w, `{"response":"ok"}`)
	}))
	defer srv.Close()

	m := NewManager(srv.URL)
	m.Send("a", "one")
	m.Send("b", "two")
	require.Equal(t, 2, m.InFlight())

	close(release)
	m.Wait()
	require.Zero(t, m.InFlight())
}
