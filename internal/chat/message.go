// Package chat implements the session controller: it owns the conversation
// transcript and the progress record, and orchestrates the track-select,
// topic-toggle, and send-turn actions. The transcript lives and dies with
// the session; only progress survives a restart.
package chat

import "time"

// Role identifies the author of a transcript turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is a single turn in the transcript. Append-only: never mutated
// after creation.
type Message struct {
	Role      Role
	Text      string
	Timestamp time.Time
}

// WelcomeText seeds the transcript of every fresh session.
const WelcomeText = "# Welcome to Skill Bridge AI!\n\n" +
	"I'm your intelligent personal mentor. You can ask me **anything**—from debugging complex code to explaining how the universe works.\n\n" +
	"Want to start a specific learning track? Select one from the sidebar, or just start typing!"
