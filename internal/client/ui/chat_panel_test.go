package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/cheesecake-chat/internal/protocol"
	"github.com/yourusername/cheesecake-chat/internal/widget"
)

func TestRenderProducts_OneCardPerProduct(t *testing.T) {
	c := NewChatPanel("http://localhost:8080/chat")
	c.SetWidth(80)

	out := c.Render([]widget.Message{{
		ID:      "p",
		Sender:  widget.SenderAssistant,
		Content: widget.ProductsTitle,
		Products: []protocol.Product{
			{ASIN: "B001", Title: "Cheddar", AvgRating: protocol.Rating(4.5)},
			{ASIN: "B002", Title: "Brie"},
			{ASIN: "B003", Title: "Gouda", AvgRating: protocol.Rating(0)},
		},
	}})

	require.Contains(t, out, widget.ProductsTitle)
	require.Equal(t, 3, strings.Count(out, "• "))
	for _, asin := range []string{"B001", "B002", "B003"} {
		require.Contains(t, out, "http://localhost:8080/product/"+asin)
	}
	require.Contains(t, out, "★★★★⯪ 4.5")
	require.Equal(t, 1, strings.Count(out, "★★★★⯪"), "unrated products show no stars")
}

func TestRenderMessages(t *testing.T) {
	c := NewChatPanel("")
	c.SetWidth(60)
	c.SetTyping("∙●∙")

	out := c.Render([]widget.Message{
		{Sender: widget.SenderUser, Content: "hello"},
		{Sender: widget.SenderAssistant, IsPlaceholder: true},
		{Sender: widget.SenderAssistant, Content: widget.ErrorText, IsError: true},
	})
	require.Contains(t, out, "hello")
	require.Contains(t, out, "∙●∙")
	require.Contains(t, out, widget.ErrorText)
	require.Contains(t, out, userAvatar)
	require.Contains(t, out, botAvatar)
}

func TestFormatRating(t *testing.T) {
	require.Equal(t, "4.5", formatRating(4.5))
	require.Equal(t, "4", formatRating(4))
	require.Equal(t, "3.25", formatRating(3.25))
}
