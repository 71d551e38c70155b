package protocol // wire format between the chat widget and the /chat endpoint

import (
	"encoding/json"
	"net/url"
	"strings"
)

const (
	ChatPath    = "/chat"
	ProductRoot = "/product/"
)

// ChatRequest is the body POSTed to /chat
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse is what /chat answers with
type ChatResponse struct {
	Response   string    `json:"response"`
	Products   []Product `json:"products,omitempty"`
	Categories []string  `json:"categories,omitempty"` // informational, the widget ignores them
	Groups     []string  `json:"groups,omitempty"`
}

// Product is a suggested product. AvgRating is nil when the server has no rating.
type Product struct {
	ASIN      string   `json:"asin"`
	Title     string   `json:"title"`
	AvgRating *float64 `json:"avg_rating,omitempty"`
}

// HasRating reports whether a rating should be displayed.
// A zero rating is treated as absent.
func (p Product) HasRating() bool {
	return p.AvgRating != nil && *p.AvgRating != 0
}

// Rating returns the rating or 0 when absent
func (p Product) Rating() float64 {
	if p.AvgRating == nil {
		return 0
	}
	return *p.AvgRating
}

// ErrorPayload is returned by the server on bad requests
type ErrorPayload struct {
	Error string `json:"error"`
}

// ProductPath returns the product detail page path, e.g. /product/B001
func ProductPath(asin string) string {
	return ProductRoot + url.PathEscape(asin)
}

// ProductURL resolves the product page against the widget's origin.
// An empty or unparsable base yields the bare path.
func ProductURL(base, asin string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return ProductPath(asin)
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ProductPath(asin)
	}
	origin := url.URL{Scheme: u.Scheme, Host: u.Host}
	return origin.String() + ProductPath(asin)
}

// Rating is a helper for building products with a rating
func Rating(v float64) *float64 {
	return &v
}

// EncodeRequest encodes a chat request body
func EncodeRequest(query string) ([]byte, error) {
	return json.Marshal(ChatRequest{Query: query})
}

// DecodeResponse decodes a chat response body
func DecodeResponse(data []byte) (*ChatResponse, error) {
	var resp ChatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
