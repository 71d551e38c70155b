// Package widget holds the framework independent parts of the chat widget:
// the panel controller, the conversation log and the star rating renderer.
package widget

import (
	"strings"

	"github.com/google/uuid"
	"github.com/yourusername/cheesecake-chat/internal/protocol"
)

const (
	AssistantName = "CheeseCake Assistant"
	WelcomeText   = "Hello! I'm CheeseCake Assistant. How can I help you today?"
	ErrorText     = "Sorry, there was an error processing your request."
	ProductsTitle = "Suggested Products:"
)

// Sender identifies who wrote a message
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one entry of the conversation log
type Message struct {
	ID            string
	Sender        Sender
	Content       string
	IsPlaceholder bool
	IsError       bool
	Products      []protocol.Product // set only on product block entries
}

// IsProductBlock reports whether the message is a product suggestion block
func (m Message) IsProductBlock() bool {
	return len(m.Products) > 0
}

// Turn is a user message awaiting its answer
type Turn struct {
	PlaceholderID string
	Query         string
}

// Conversation is the ordered message log of one widget session
type Conversation struct {
	messages []Message
}

// NewConversation creates an empty conversation
func NewConversation() *Conversation {
	return &Conversation{messages: []Message{}}
}

// Messages returns a copy of the log
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int { return len(c.messages) }

// Pending returns the number of placeholders still in the log
func (c *Conversation) Pending() int {
	n := 0
	for _, m := range c.messages {
		if m.IsPlaceholder {
			n++
		}
	}
	return n
}

// Greet appends the welcome message
func (c *Conversation) Greet() Message {
	return c.append(SenderAssistant, WelcomeText)
}

// Begin appends the user's message and a loading placeholder. It returns
// false, and leaves the log untouched, when text is blank.
func (c *Conversation) Begin(text string) (Turn, bool) {
	query := strings.TrimSpace(text)
	if query == "" {
		return Turn{}, false
	}

	c.append(SenderUser, query)
	placeholder := Message{
		ID:            newMessageID(),
		Sender:        SenderAssistant,
		IsPlaceholder: true,
	}
	c.messages = append(c.messages, placeholder)

	return Turn{PlaceholderID: placeholder.ID, Query: query}, true
}

// Complete replaces the placeholder with the assistant's answer and, when
// products were suggested, one product block.
func (c *Conversation) Complete(placeholderID string, resp *protocol.ChatResponse) {
	c.remove(placeholderID)
	if resp == nil {
		c.appendError()
		return
	}

	c.append(SenderAssistant, resp.Response)

	if len(resp.Products) > 0 {
		products := make([]protocol.Product, len(resp.Products))
		copy(products, resp.Products)
		c.messages = append(c.messages, Message{
			ID:       newMessageID(),
			Sender:   SenderAssistant,
			Content:  ProductsTitle,
			Products: products,
		})
	}
}

// Fail replaces the placeholder with the generic error message. The cause is
// not shown to the user.
func (c *Conversation) Fail(placeholderID string, _ error) {
	c.remove(placeholderID)
	c.appendError()
}

func (c *Conversation) appendError() {
	c.append(SenderAssistant, ErrorText)
	c.messages[len(c.messages)-1].IsError = true
}

func (c *Conversation) append(sender Sender, content string) Message {
	msg := Message{
		ID:      newMessageID(),
		Sender:  sender,
		Content: content,
	}
	c.messages = append(c.messages, msg)
	return msg
}

// remove drops the placeholder with the given id. Unknown ids are ignored.
func (c *Conversation) remove(id string) {
	kept := c.messages[:0:0]
	for _, m := range c.messages {
		if m.IsPlaceholder && m.ID == id {
			continue
		}
		kept = append(kept, m)
	}
	c.messages = kept
}

func newMessageID() string {
	return "msg-" + uuid.New().String()
}
