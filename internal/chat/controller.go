package chat

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/skillbridge-ai/skillbridge/internal/catalog"
	"github.com/skillbridge-ai/skillbridge/internal/progress"
)

// Persister loads and saves the progress record. Failures stay inside the
// implementation; the controller never sees them.
type Persister interface {
	Load() progress.UserProgress
	Save(progress.UserProgress)
}

// Snapshot is the context captured at gateway dispatch time. Toggles or
// track changes made while the request is in flight do not retroactively
// influence the pending reply.
type Snapshot struct {
	Messages []Message
	Progress progress.UserProgress
	Track    *catalog.Track
}

// Controller is the session controller. It is not safe for concurrent use;
// the Bubble Tea update loop is its single caller.
type Controller struct {
	messages []Message
	progress progress.UserProgress
	store    Persister
	awaiting bool
	now      func() time.Time
}

// NewController loads progress, seeds the welcome turn, and returns a ready
// controller.
func NewController(store Persister) *Controller {
	c := &Controller{
		store: store,
		now:   time.Now,
	}
	c.progress = store.Load()
	c.append(RoleModel, WelcomeText)
	return c
}

// Messages returns the transcript in chronological order. The slice is
// shared; callers must not mutate it.
func (c *Controller) Messages() []Message {
	return c.messages
}

// Progress returns the current progress record.
func (c *Controller) Progress() progress.UserProgress {
	return c.progress
}

// IsAwaitingReply reports whether a gateway request is in flight.
func (c *Controller) IsAwaitingReply() bool {
	return c.awaiting
}

// CurrentTrack resolves the active track against the catalog. A stale or
// absent id yields nil: no track active, no error.
func (c *Controller) CurrentTrack() *catalog.Track {
	if c.progress.SelectedSkillID == "" {
		return nil
	}
	track, ok := catalog.Find(c.progress.SelectedSkillID)
	if !ok {
		return nil
	}
	return &track
}

// ProgressPercentage returns the completion percentage for the active
// track, counting only topics that belong to it. Stale ids from other
// tracks never inflate the number.
func (c *Controller) ProgressPercentage() int {
	track := c.CurrentTrack()
	if track == nil || len(track.Topics) == 0 {
		return 0
	}
	done := c.progress.CompletedIn(track.TopicSet())
	return int(math.Round(100 * float64(done) / float64(len(track.Topics))))
}

// SelectTrack activates the track and announces it in the transcript with a
// locally generated model turn (no remote call). Re-selecting the active
// track appends a fresh announcement.
func (c *Controller) SelectTrack(trackID string) {
	name := trackID
	if track, ok := catalog.Find(trackID); ok {
		name = track.Name
	}

	c.progress.SelectedSkillID = trackID
	c.store.Save(c.progress)

	c.append(RoleModel, fmt.Sprintf(
		"### Now Tracking: %s\nGreat! I've activated the %s curriculum for you. You can see your progress in the sidebar. What's the first thing you'd like to dive into?",
		name, name,
	))
}

// ToggleTopic flips the completion state of the topic and persists. The
// transcript is untouched.
func (c *Controller) ToggleTopic(topicID string) {
	c.progress.Toggle(topicID)
	c.store.Save(c.progress)
}

// BeginTurn starts a send-turn action. Blank input or an in-flight request
// refuses the turn (ok=false) with no state change. Otherwise the user turn
// is appended, the awaiting flag is set, and the returned snapshot carries
// the transcript and context to hand to the gateway.
func (c *Controller) BeginTurn(text string) (Snapshot, bool) {
	if strings.TrimSpace(text) == "" || c.awaiting {
		return Snapshot{}, false
	}

	c.append(RoleUser, text)
	c.awaiting = true

	return Snapshot{
		Messages: slices.Clone(c.messages),
		Progress: c.progress.Clone(),
		Track:    c.CurrentTrack(),
	}, true
}

// CompleteTurn appends the model reply for the in-flight turn and clears
// the awaiting flag.
func (c *Controller) CompleteTurn(reply string) {
	c.append(RoleModel, reply)
	c.awaiting = false
}

func (c *Controller) append(role Role, text string) {
	c.messages = append(c.messages, Message{
		Role:      role,
		Text:      text,
		Timestamp: c.now(),
	})
}
