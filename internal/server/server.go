package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yourusername/cheesecake-chat/internal/protocol"
)

const maxRequestSize = 16 << 10

// Server is the development /chat endpoint
type Server struct {
	catalog     *Catalog
	chatManager *ChatManager
}

// NewServer creates a server answering from the given catalog
func NewServer(catalog *Catalog) *Server {
	return &Server{
		catalog:     catalog,
		chatManager: NewChatManager(catalog),
	}
}

// Router wires the HTTP routes
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	s.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers the chat and product routes
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Post(protocol.ChatPath, s.handleChat)
	r.Get(protocol.ProductRoot+"{asin}", s.handleProduct)
}

// handleChat answers one chat turn
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload protocol.ChatRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestSize)).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	query := strings.TrimSpace(payload.Query)
	if query == "" {
		respondError(w, http.StatusBadRequest, "query is required")
		return
	}

	resp := s.chatManager.Answer(query)
	log.Printf("[server] query=%q products=%d request_id=%s", query, len(resp.Products), middleware.GetReqID(r.Context()))
	respondJSON(w, http.StatusOK, resp)
}

// handleProduct returns one product, the target of product card links
func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	asin := chi.URLParam(r, "asin")
	p, ok := s.catalog.Get(asin)
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[server] failed to write response: %v", err)
	}
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, protocol.ErrorPayload{Error: message})
}
