// Package gateway adapts the session controller's transcript to the LLM
// provider layer. One call per turn, best effort: every failure mode comes
// back as a human-readable string, never an error.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillbridge-ai/skillbridge/internal/catalog"
	"github.com/skillbridge-ai/skillbridge/internal/chat"
	"github.com/skillbridge-ai/skillbridge/internal/llm"
	"github.com/skillbridge-ai/skillbridge/internal/progress"
)

const (
	// EmptyReplyFallback is returned when the model produced no text.
	EmptyReplyFallback = "I'm sorry, I encountered an issue generating a response."

	// ErrorReplyFallback is returned for any transport, API, or auth failure.
	ErrorReplyFallback = "I'm currently experiencing high traffic or a connection issue. Please try again in a moment."
)

// Generation parameters for the chat persona.
const (
	temperature = 0.8
	topP        = 0.95
)

// Gateway performs the single remote call per turn.
type Gateway struct {
	provider llm.Provider
	initErr  error
	log      *slog.Logger
}

// New creates a Gateway over the given provider.
func New(provider llm.Provider, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{provider: provider, log: log}
}

// NewUnavailable creates a Gateway whose provider could not be constructed.
// Every call logs the construction error and returns the standard fallback,
// mirroring what a remote auth rejection would produce.
func NewUnavailable(err error, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{initErr: err, log: log}
}

// GenerateResponse sends the full transcript (no windowing) plus the
// composed context instruction and returns the reply text. On failure it
// logs one diagnostic line and returns the fallback string. Single shot:
// no retry, no backoff.
func (g *Gateway) GenerateResponse(ctx context.Context, transcript []chat.Message, prog progress.UserProgress, track *catalog.Track) string {
	if g.initErr != nil {
		g.log.Error("gateway unavailable", "error", g.initErr)
		return ErrorReplyFallback
	}

	req := llm.Request{
		System:      systemInstruction(prog, track),
		Messages:    buildHistory(transcript),
		Temperature: temperature,
		TopP:        topP,
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "chat"), req)
	if err != nil {
		g.log.Error("gateway request failed", "model", g.provider.ModelID(), "error", err)
		return ErrorReplyFallback
	}

	if resp.Text == "" {
		return EmptyReplyFallback
	}
	return resp.Text
}

// buildHistory maps the transcript to provider messages, preserving
// chronological order. Every turn is included, the seeded welcome and the
// local "Now Tracking" announcements among them; the model treats them as
// prior context.
func buildHistory(transcript []chat.Message) []llm.Message {
	out := make([]llm.Message, len(transcript))
	for i, m := range transcript {
		role := llm.RoleUser
		if m.Role == chat.RoleModel {
			role = llm.RoleAssistant
		}
		out[i] = llm.Message{Role: role, Content: m.Text}
	}
	return out
}

// systemInstruction composes the per-turn context string: persona preamble,
// active track, and completed-topic count.
func systemInstruction(prog progress.UserProgress, track *catalog.Track) string {
	trackName := "General Chat (No track active)"
	topicHint := "programming"
	if track != nil {
		trackName = track.Name
		topicHint = track.Name
	}

	return fmt.Sprintf(`
      You are Skill Bridge AI, an advanced, world-class intelligent assistant powered by Google Gemini.
      You behave like ChatGPT: conversational, insightful, and highly capable of answering any question.

      Your specialization is technical education and programming.

      CURRENT CONTEXT:
      - Active Track: %s
      - Completed Topics: %d

      RULES:
      1. Provide comprehensive, accurate, and helpful answers to ANY prompt.
      2. If asked about programming, provide clean, modern code examples in Markdown blocks.
      3. Use Markdown (bold, lists, headers) to make responses readable.
      4. Be encouraging and proactive. If a user asks something related to %s, mention how it fits into their learning journey.
      5. If the user mentions they finished a task, congratulate them warmly.
      6. If they ask a non-technical question, answer it gracefully while pivoting slightly back to how it might relate to their skills if possible.
    `, trackName, prog.CompletedCount(), topicHint)
}
