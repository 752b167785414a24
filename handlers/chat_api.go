package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/RZeijlon/ResumeRobertZeijlon/chat"
	"github.com/RZeijlon/ResumeRobertZeijlon/content"
)

type chatMessageRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

type chatMessageResponse struct {
	Message        string        `json:"message"`
	ConversationID string        `json:"conversation_id"`
	Sources        []chat.Source `json:"sources,omitempty"`
	Timestamp      string        `json:"timestamp"`
}

// ChatMessageHandler forwards a widget message to the remote conversational
// service. Failures stay scoped to the widget: they come back as
// assistant-authored messages, never as a page-level failure.
func ChatMessageHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		manifests, _, _, _ := app.snapshot()
		if manifests == nil || !manifests.Site.Features.ChatBot.Enabled {
			http.NotFound(w, r)
			return
		}

		var req chatMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
			http.Error(w, "missing message", http.StatusBadRequest)
			return
		}

		session := app.sessionFor(req.ConversationID)
		reply, err := session.Send(r.Context(), req.Message)
		if err != nil {
			log.Printf("chat: %v", err)
		}
		app.rememberSession(session)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatMessageResponse{
			Message:        reply.Content,
			ConversationID: session.ConversationID(),
			Sources:        reply.Sources,
			Timestamp:      time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// ChatWelcomeHandler returns the widget greeting, from the welcome document
// when one was loaded.
func ChatWelcomeHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		manifests, _, _, _ := app.snapshot()
		if manifests == nil || !manifests.Site.Features.ChatBot.Enabled {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": chat.WelcomeText(app.welcomeRecord()),
		})
	}
}

func (a *App) welcomeRecord() *content.Record {
	manifests, index, _, _ := a.snapshot()
	if manifests == nil || index == nil {
		return nil
	}
	welcomeFile := manifests.Site.Features.ChatBot.WelcomeFile
	if welcomeFile == "" {
		return nil
	}
	record, _ := index.Lookup(welcomeFile)
	return record
}

// sessionFor returns the session for a known conversation, or starts a new
// one seeded with the welcome message.
func (a *App) sessionFor(conversationID string) *chat.Session {
	manifests, _, _, _ := a.snapshot()
	useRag := manifests != nil && manifests.Site.Features.ChatBot.RagEnabled

	a.sessionMu.Lock()
	defer a.sessionMu.Unlock()

	if conversationID != "" {
		if session, ok := a.sessions[conversationID]; ok {
			return session
		}
		return chat.ResumeSession(a.chatClient, useRag, conversationID)
	}
	return chat.NewSession(a.chatClient, useRag, a.welcomeRecord())
}

// rememberSession indexes the session once the service has assigned it a
// conversation id.
func (a *App) rememberSession(session *chat.Session) {
	id := session.ConversationID()
	if id == "" {
		return
	}
	a.sessionMu.Lock()
	defer a.sessionMu.Unlock()
	a.sessions[id] = session
}
