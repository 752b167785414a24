package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RZeijlon/ResumeRobertZeijlon/content"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation transcript.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`
	Sources   []Source  `json:"sources,omitempty"`
}

// User-facing failure phrasings. Chat failures are scoped to the widget and
// surface as assistant-authored messages, never as page failures.
const (
	networkErrorText = "Cannot connect to the chat service. Please check your network connection."
	serviceErrorText = "The chat service returned an error. Please try again."
	genericErrorText = "I'm experiencing technical difficulties. Please try again later."

	defaultWelcomeText = "Hi! I'm here to help answer questions about Robert Zeijlon's background, skills, and projects. What would you like to know?"
)

// WelcomeText picks the widget greeting: the welcome document's body when
// one was loaded, otherwise the built-in fallback.
func WelcomeText(welcome *content.Record) string {
	if welcome != nil && welcome.Body != "" {
		return welcome.Body
	}
	return defaultWelcomeText
}

// FailureMessage maps a send error to its assistant-authored phrasing,
// differentiating only "unreachable" from "service responded with failure".
func FailureMessage(err error) string {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return networkErrorText
	}
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErrorText
	}
	return genericErrorText
}

// Session is one conversation with the remote service. It seeds the
// transcript with the welcome message, adopts the conversation id from the
// first reply and converts failures into assistant messages.
type Session struct {
	mu             sync.Mutex
	client         *Client
	useRag         bool
	conversationID string
	messages       []Message
}

func NewSession(client *Client, useRag bool, welcome *content.Record) *Session {
	s := &Session{
		client: client,
		useRag: useRag,
	}
	s.messages = append(s.messages, Message{
		ID:        "welcome",
		Content:   WelcomeText(welcome),
		Role:      RoleAssistant,
		Timestamp: time.Now(),
	})
	return s
}

// ResumeSession continues a conversation the service already knows about.
func ResumeSession(client *Client, useRag bool, conversationID string) *Session {
	return &Session{
		client:         client,
		useRag:         useRag,
		conversationID: conversationID,
	}
}

// Send appends the user message, forwards it and returns the assistant
// reply. The error is also returned for callers that log it; the reply is
// always usable.
func (s *Session) Send(ctx context.Context, text string) (Message, error) {
	s.mu.Lock()
	s.messages = append(s.messages, Message{
		ID:        uuid.New().String(),
		Content:   text,
		Role:      RoleUser,
		Timestamp: time.Now(),
	})
	conversationID := s.conversationID
	s.mu.Unlock()

	resp, err := s.client.Send(ctx, Request{
		Message:        text,
		ConversationID: conversationID,
		UseRag:         s.useRag,
	})

	reply := Message{
		ID:        uuid.New().String(),
		Role:      RoleAssistant,
		Timestamp: time.Now(),
	}
	if err != nil {
		reply.Content = FailureMessage(err)
	} else {
		reply.Content = resp.Message
		reply.Sources = resp.Sources
		if reply.Content == "" {
			reply.Content = "Sorry, I couldn't process that request."
		}
	}

	s.mu.Lock()
	if err == nil && s.conversationID == "" {
		s.conversationID = resp.ConversationID
	}
	s.messages = append(s.messages, reply)
	s.mu.Unlock()

	return reply, err
}

func (s *Session) ConversationID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversationID
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}
