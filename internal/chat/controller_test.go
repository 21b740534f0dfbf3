package chat

import (
	"strings"
	"testing"

	"github.com/skillbridge-ai/skillbridge/internal/progress"
)

// memPersister is an in-memory Persister that counts saves.
type memPersister struct {
	stored    progress.UserProgress
	hasStored bool
	saves     int
}

func (m *memPersister) Load() progress.UserProgress {
	if !m.hasStored {
		return progress.UserProgress{}
	}
	return m.stored.Clone()
}

func (m *memPersister) Save(p progress.UserProgress) {
	m.stored = p.Clone()
	m.hasStored = true
	m.saves++
}

func TestFreshSessionSeedsWelcome(t *testing.T) {
	c := NewController(&memPersister{})

	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected exactly 1 seeded message, got %d", len(msgs))
	}
	if msgs[0].Role != RoleModel {
		t.Errorf("welcome role = %q, want model", msgs[0].Role)
	}
	if !strings.HasPrefix(msgs[0].Text, "# Welcome to Skill Bridge AI!") {
		t.Errorf("welcome text = %q", msgs[0].Text)
	}
	if c.ProgressPercentage() != 0 {
		t.Errorf("fresh percentage = %d, want 0", c.ProgressPercentage())
	}
	if c.CurrentTrack() != nil {
		t.Error("fresh session must have no active track")
	}
}

func TestSelectTrack(t *testing.T) {
	store := &memPersister{}
	c := NewController(store)

	c.SelectTrack("python")

	if got := c.Progress().SelectedSkillID; got != "python" {
		t.Errorf("selectedSkillId = %q", got)
	}
	if store.saves != 1 {
		t.Errorf("expected 1 persist, got %d", store.saves)
	}
	if store.stored.SelectedSkillID != "python" {
		t.Error("persisted record missing track selection")
	}

	msgs := c.Messages()
	last := msgs[len(msgs)-1]
	if last.Role != RoleModel || !strings.Contains(last.Text, "Now Tracking: Python") {
		t.Errorf("announcement = %+v", last)
	}

	// Re-selection is not suppressed.
	c.SelectTrack("python")
	if len(c.Messages()) != 3 {
		t.Errorf("expected a fresh announcement on re-select, transcript len = %d", len(c.Messages()))
	}
}

func TestToggleTopicParityAndPersist(t *testing.T) {
	store := &memPersister{}
	c := NewController(store)
	c.SelectTrack("python")

	c.ToggleTopic("py1")
	c.ToggleTopic("py3")
	if !c.Progress().Completed("py1") || !c.Progress().Completed("py3") {
		t.Fatalf("completed = %v", c.Progress().CompletedTopicIDs)
	}
	if c.ProgressPercentage() != 33 {
		t.Errorf("percentage after 2/6 = %d, want 33", c.ProgressPercentage())
	}

	before := len(c.Messages())
	c.ToggleTopic("py1")
	if c.Progress().Completed("py1") {
		t.Error("double toggle must clear py1")
	}
	if c.ProgressPercentage() != 17 {
		t.Errorf("percentage after 1/6 = %d, want 17", c.ProgressPercentage())
	}
	if len(c.Messages()) != before {
		t.Error("toggle must not touch the transcript")
	}

	// Every mutation persisted: select + 3 toggles.
	if store.saves != 4 {
		t.Errorf("expected 4 persists, got %d", store.saves)
	}
}

func TestProgressPercentageIgnoresForeignTopics(t *testing.T) {
	store := &memPersister{
		stored: progress.UserProgress{
			SelectedSkillID:   "sql",
			CompletedTopicIDs: []string{"sql1", "sql2", "py1", "stale-id"},
		},
		hasStored: true,
	}
	c := NewController(store)

	// 2 of 4 sql topics; the python and stale ids don't inflate.
	if got := c.ProgressPercentage(); got != 50 {
		t.Errorf("percentage = %d, want 50", got)
	}
}

func TestStaleTrackIDFallsBackToNoTrack(t *testing.T) {
	store := &memPersister{
		stored:    progress.UserProgress{SelectedSkillID: "cobol"},
		hasStored: true,
	}
	c := NewController(store)

	if c.CurrentTrack() != nil {
		t.Error("stale track id must resolve to no active track")
	}
	if c.ProgressPercentage() != 0 {
		t.Errorf("percentage = %d, want 0", c.ProgressPercentage())
	}
}

func TestBeginTurnAppendsAndSnapshots(t *testing.T) {
	c := NewController(&memPersister{})
	c.SelectTrack("python")
	c.ToggleTopic("py1")

	snap, ok := c.BeginTurn("What's a dictionary?")
	if !ok {
		t.Fatal("turn refused")
	}
	if !c.IsAwaitingReply() {
		t.Error("awaiting flag not set")
	}

	msgs := c.Messages()
	last := msgs[len(msgs)-1]
	if last.Role != RoleUser || last.Text != "What's a dictionary?" {
		t.Errorf("user turn = %+v", last)
	}

	if len(snap.Messages) != len(msgs) {
		t.Errorf("snapshot transcript len = %d, want %d", len(snap.Messages), len(msgs))
	}
	if snap.Track == nil || snap.Track.ID != "python" {
		t.Errorf("snapshot track = %+v", snap.Track)
	}
	if snap.Progress.CompletedCount() != 1 {
		t.Errorf("snapshot progress count = %d", snap.Progress.CompletedCount())
	}

	// Context is captured at dispatch time: later toggles don't leak in.
	c.ToggleTopic("py2")
	if snap.Progress.CompletedCount() != 1 {
		t.Error("snapshot progress mutated after dispatch")
	}

	c.CompleteTurn("A dictionary is...")
	if c.IsAwaitingReply() {
		t.Error("awaiting flag not cleared")
	}
	msgs = c.Messages()
	if msgs[len(msgs)-1].Role != RoleModel || msgs[len(msgs)-1].Text != "A dictionary is..." {
		t.Errorf("reply turn = %+v", msgs[len(msgs)-1])
	}
}

func TestSendTurnGrowsTranscriptByTwo(t *testing.T) {
	c := NewController(&memPersister{})
	before := len(c.Messages())

	if _, ok := c.BeginTurn("hi"); !ok {
		t.Fatal("turn refused")
	}
	c.CompleteTurn("hello")

	msgs := c.Messages()
	if len(msgs) != before+2 {
		t.Fatalf("transcript grew by %d, want 2", len(msgs)-before)
	}
	if msgs[before].Role != RoleUser || msgs[before+1].Role != RoleModel {
		t.Error("turn order must be user then model")
	}
}

func TestBeginTurnGuards(t *testing.T) {
	c := NewController(&memPersister{})
	before := len(c.Messages())

	// Blank input.
	for _, text := range []string{"", "   ", "\n\t "} {
		if _, ok := c.BeginTurn(text); ok {
			t.Errorf("blank input %q accepted", text)
		}
	}
	if len(c.Messages()) != before {
		t.Error("refused turns must not touch the transcript")
	}

	// In-flight request.
	if _, ok := c.BeginTurn("first"); !ok {
		t.Fatal("first turn refused")
	}
	if _, ok := c.BeginTurn("second"); ok {
		t.Error("turn accepted while awaiting reply")
	}
	if got := len(c.Messages()); got != before+1 {
		t.Errorf("transcript len = %d, want %d", got, before+1)
	}

	// Actions during the in-flight window take effect immediately.
	c.SelectTrack("java")
	c.ToggleTopic("java1")
	if !c.Progress().Completed("java1") {
		t.Error("toggle during in-flight window must apply")
	}

	c.CompleteTurn("done")
	if _, ok := c.BeginTurn("third"); !ok {
		t.Error("turn refused after reply arrived")
	}
}

func TestReloadKeepsProgressReseedsTranscript(t *testing.T) {
	store := &memPersister{}
	c := NewController(store)
	c.SelectTrack("python")
	c.ToggleTopic("py1")
	c.ToggleTopic("py3")
	c.ToggleTopic("py1")

	// Reload: fresh controller over the same store.
	c2 := NewController(store)
	if len(c2.Messages()) != 1 {
		t.Errorf("reloaded transcript len = %d, want just the welcome", len(c2.Messages()))
	}
	if c2.Progress().SelectedSkillID != "python" {
		t.Error("track selection lost across reload")
	}
	if !c2.Progress().Completed("py3") || c2.Progress().Completed("py1") {
		t.Errorf("completed topics lost: %v", c2.Progress().CompletedTopicIDs)
	}
	if c2.ProgressPercentage() != 17 {
		t.Errorf("percentage = %d, want 17", c2.ProgressPercentage())
	}
}
