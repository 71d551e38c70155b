package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/cheesecake-chat/internal/protocol"
	"github.com/yourusername/cheesecake-chat/internal/widget"
)

const (
	botAvatar  = "🤖"
	userAvatar = "👤"
)

// ChatPanel renders the conversation log into the panel's scroll area
type ChatPanel struct {
	width       int
	productBase string // origin used for product links
	typing      string // current frame of the typing indicator
}

// NewChatPanel creates a log renderer. productBase is the /chat endpoint,
// whose origin product links are resolved against.
func NewChatPanel(productBase string) *ChatPanel {
	return &ChatPanel{
		width:       40,
		productBase: productBase,
	}
}

// SetWidth sets the width of the scroll area
func (c *ChatPanel) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	c.width = width
}

// SetTyping sets the frame shown in placeholder messages
func (c *ChatPanel) SetTyping(frame string) {
	c.typing = frame
}

// Render renders every message, oldest first
func (c *ChatPanel) Render(messages []widget.Message) string {
	blocks := make([]string, 0, len(messages))
	for _, msg := range messages {
		blocks = append(blocks, c.renderMessage(msg))
	}
	return strings.Join(blocks, "\n\n")
}

func (c *ChatPanel) renderMessage(msg widget.Message) string {
	bubbleWidth := c.width * 3 / 4

	if msg.Sender == widget.SenderUser {
		bubble := userBubbleStyle.MaxWidth(bubbleWidth).Render(wrap(msg.Content, bubbleWidth-2))
		row := lipgloss.JoinHorizontal(lipgloss.Top, bubble, " "+userAvatar)
		return lipgloss.PlaceHorizontal(c.width, lipgloss.Right, row)
	}

	var body string
	switch {
	case msg.IsPlaceholder:
		body = assistantBubbleStyle.Render(spinnerStyle.Render(c.typing) + mutedStyle.Render(" typing"))
	case msg.IsProductBlock():
		body = c.renderProducts(msg, bubbleWidth)
	case msg.IsError:
		body = errorBubbleStyle.Render(wrap(msg.Content, bubbleWidth-2))
	default:
		body = assistantBubbleStyle.Render(wrap(msg.Content, bubbleWidth-2))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, botAvatar+" ", body)
}

// renderProducts renders the product block: a heading and one card per product
func (c *ChatPanel) renderProducts(msg widget.Message, width int) string {
	cards := []string{productTitleStyle.Render(msg.Content)}
	for _, p := range msg.Products {
		cards = append(cards, c.renderProductCard(p, width))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(accentColor).
		PaddingLeft(1).
		Render(strings.Join(cards, "\n"))
}

func (c *ChatPanel) renderProductCard(p protocol.Product, width int) string {
	lines := []string{"• " + productTitleStyle.Render(wrap(p.Title, width-2))}
	if p.HasRating() {
		lines = append(lines, "  "+renderRating(p.Rating()))
	}
	lines = append(lines, "  "+linkStyle.Render(protocol.ProductURL(c.productBase, p.ASIN)))
	return strings.Join(lines, "\n")
}

// renderRating renders the stars followed by the numeric rating
func renderRating(rating float64) string {
	stars := widget.Stars(rating)
	return starStyle.Render(stars.String()) + " " + mutedStyle.Render(formatRating(rating))
}

func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

// wrap soft-wraps text on word boundaries
func wrap(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
