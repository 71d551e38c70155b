package server

import (
	"fmt"
	"strings"

	"github.com/yourusername/cheesecake-chat/internal/protocol"
)

const (
	maxProducts    = 10 // products returned per answer
	perSourceLimit = 5  // products pulled from each category / group lookup
	topMatches     = 3  // categories and groups considered
	namesInReply   = 2  // category / group names quoted in the reply
)

// ChatManager answers chat queries from the catalog
type ChatManager struct {
	catalog *Catalog
}

// NewChatManager creates a chat manager over a catalog
func NewChatManager(catalog *Catalog) *ChatManager {
	return &ChatManager{catalog: catalog}
}

// Answer builds the reply for one query. Direct title matches come first,
// then products from matching categories and groups, without duplicates.
func (cm *ChatManager) Answer(query string) protocol.ChatResponse {
	terms := tokenize(query)

	direct := cm.catalog.MatchTitles(terms, maxProducts)
	categories := cm.catalog.MatchCategories(terms, topMatches)
	groups := cm.catalog.MatchGroups(terms, topMatches)

	seen := make(map[string]bool)
	products := make([]protocol.Product, 0, maxProducts)
	add := func(list []CatalogProduct) {
		for _, p := range list {
			if seen[p.ASIN] {
				continue
			}
			seen[p.ASIN] = true
			products = append(products, toProtocol(p))
		}
	}
	add(direct)
	add(cm.catalog.InCategories(categories, perSourceLimit))
	add(cm.catalog.InGroups(groups, perSourceLimit))

	reply := composeReply(query, categories, groups, len(products), len(direct) > 0)
	if len(products) > maxProducts {
		products = products[:maxProducts]
	}

	return protocol.ChatResponse{
		Response:   reply,
		Products:   products,
		Categories: categories,
		Groups:     groups,
	}
}

// composeReply phrases the answer. found counts every candidate, including
// those beyond the response cap.
func composeReply(query string, categories, groups []string, found int, hasDirect bool) string {
	if found == 0 {
		return fmt.Sprintf("I couldn't find any products related to '%s'. Try a different search term.", query)
	}

	var b strings.Builder
	if hasDirect {
		fmt.Fprintf(&b, "I found products that directly match your query '%s'", query)
		if len(categories) > 0 || len(groups) > 0 {
			b.WriteString(", as well as products in ")
			writeSources(&b, categories, groups)
		}
	} else {
		fmt.Fprintf(&b, "Based on your query '%s', I found products in ", query)
		writeSources(&b, categories, groups)
	}
	fmt.Fprintf(&b, ". I've found %d relevant products for you.", found)
	return b.String()
}

func writeSources(b *strings.Builder, categories, groups []string) {
	if len(categories) > 0 {
		b.WriteString("categories like " + strings.Join(head(categories, namesInReply), ", "))
	}
	if len(groups) > 0 {
		if len(categories) > 0 {
			b.WriteString(" and ")
		}
		b.WriteString("groups like " + strings.Join(head(groups, namesInReply), ", "))
	}
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func toProtocol(p CatalogProduct) protocol.Product {
	out := protocol.Product{ASIN: p.ASIN, Title: p.Title}
	if p.AvgRating > 0 {
		out.AvgRating = protocol.Rating(p.AvgRating)
	}
	return out
}
