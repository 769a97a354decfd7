package rag

import "context"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Asker interface {
	Ask(ctx context.Context, userQuery string, mode Mode) Answer
}

// Session is a conversation owned by the caller. The engine keeps no
// per-conversation state.
type Session struct {
	Mode     Mode
	Messages []Message
}

func NewSession(mode Mode) *Session {
	s := &Session{}
	s.Reset(mode)
	return s
}

// Reset switches mode and starts over with that mode's welcome message.
func (s *Session) Reset(mode Mode) {
	s.Mode = mode
	s.Messages = []Message{{Role: RoleAssistant, Content: mode.Welcome()}}
}

func (s *Session) Ask(ctx context.Context, a Asker, input string) Answer {
	s.Messages = append(s.Messages, Message{Role: RoleUser, Content: input})
	ans := a.Ask(ctx, input, s.Mode)
	s.Messages = append(s.Messages, Message{Role: RoleAssistant, Content: ans.Text})

	return ans
}
