package server

import (
	"encoding/gob"
	"log"
	"net/http"
)

const sessionName = "skycast_session"

// flashMessage is a one-shot notification shown on the next rendered page
type flashMessage struct {
	Text     string
	Category string // "success" or "error"
}

func init() {
	gob.Register(flashMessage{})
}

// flash queues a message for the next rendered page
func (s *Server) flash(w http.ResponseWriter, r *http.Request, text, category string) {
	session, err := s.sessions.Get(r, sessionName)
	if err != nil {
		// A tampered or stale cookie yields a fresh session alongside the error
		log.Printf("Failed to decode session cookie: %v", err)
	}
	session.AddFlash(flashMessage{Text: text, Category: category})
	if err := session.Save(r, w); err != nil {
		log.Printf("Failed to save session: %v", err)
	}
}

// flashes drains the queued messages, clearing them from the cookie
func (s *Server) flashes(w http.ResponseWriter, r *http.Request) []flashMessage {
	session, err := s.sessions.Get(r, sessionName)
	if err != nil {
		log.Printf("Failed to decode session cookie: %v", err)
	}

	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(r, w); err != nil {
			log.Printf("Failed to save session: %v", err)
		}
	}

	messages := make([]flashMessage, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(flashMessage); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
