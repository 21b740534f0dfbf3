// Package progress owns the learner's persisted state: which track is active
// and which topics have been checked off. It is the only package that names
// the storage key or the serialization format.
package progress

import (
	"encoding/json"
	"slices"
)

// Difficulty is the declared difficulty level. It is part of the persisted
// schema but no code path currently assigns it.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// UserProgress is the persisted progress record. The zero value is the
// fresh-learner default: no track selected, nothing completed.
type UserProgress struct {
	// SelectedSkillID is the active track id; empty means no track active.
	SelectedSkillID string

	// Difficulty is persisted but never written by any action.
	Difficulty Difficulty

	// CompletedTopicIDs holds checked-off topic ids. Order is irrelevant;
	// insertion order is kept for stable serialization. Stale ids (topics
	// that no longer exist in the catalog) are tolerated silently.
	CompletedTopicIDs []string

	// extra preserves unknown persisted fields across read-modify-write.
	extra map[string]json.RawMessage
}

// Completed reports whether the topic is checked off.
func (p UserProgress) Completed(topicID string) bool {
	return slices.Contains(p.CompletedTopicIDs, topicID)
}

// Toggle flips the completion state of the topic: symmetric difference with
// a singleton. Toggling twice is the identity.
func (p *UserProgress) Toggle(topicID string) {
	if i := slices.Index(p.CompletedTopicIDs, topicID); i >= 0 {
		p.CompletedTopicIDs = slices.Delete(p.CompletedTopicIDs, i, i+1)
		return
	}
	p.CompletedTopicIDs = append(p.CompletedTopicIDs, topicID)
}

// CompletedCount returns the total number of checked-off topics, regardless
// of which track they belong to.
func (p UserProgress) CompletedCount() int {
	return len(p.CompletedTopicIDs)
}

// CompletedIn counts completed topics restricted to the given topic id set.
func (p UserProgress) CompletedIn(topicSet map[string]bool) int {
	n := 0
	for _, id := range p.CompletedTopicIDs {
		if topicSet[id] {
			n++
		}
	}
	return n
}

// Clone returns an independent copy, for snapshots captured at gateway
// dispatch time.
func (p UserProgress) Clone() UserProgress {
	c := p
	c.CompletedTopicIDs = slices.Clone(p.CompletedTopicIDs)
	if p.extra != nil {
		c.extra = make(map[string]json.RawMessage, len(p.extra))
		for k, v := range p.extra {
			c.extra[k] = v
		}
	}
	return c
}
