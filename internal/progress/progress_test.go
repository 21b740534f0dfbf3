package progress

import (
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

// memKV is an in-memory store.KV for tests.
type memKV struct {
	data    map[string][]byte
	failPut bool
	failGet bool
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(key string) ([]byte, bool, error) {
	if m.failGet {
		return nil, false, errors.New("storage disabled")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Put(key string, value []byte) error {
	if m.failPut {
		return errors.New("quota exceeded")
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func newTestAdapter(kv *memKV) *Adapter {
	return NewAdapter(kv, slog.New(slog.DiscardHandler))
}

func TestLoadDefaults(t *testing.T) {
	cases := map[string]string{
		"absent":      "",
		"not JSON":    "{oops",
		"wrong shape": `{"selectedSkillId": 42}`,
		"bad topics":  `{"completedTopicIds": "py1"}`,
		"bad enum":    `{"difficulty": "Expert"}`,
	}
	for name, blob := range cases {
		kv := newMemKV()
		if blob != "" {
			kv.data[StorageKey] = []byte(blob)
		}
		p := newTestAdapter(kv).Load()
		if p.SelectedSkillID != "" || p.Difficulty != "" || len(p.CompletedTopicIDs) != 0 {
			t.Errorf("%s: expected zero record, got %+v", name, p)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := newMemKV()
	a := newTestAdapter(kv)

	p := UserProgress{
		SelectedSkillID:   "python",
		CompletedTopicIDs: []string{"py1", "py3"},
	}
	a.Save(p)

	got := a.Load()
	if got.SelectedSkillID != "python" {
		t.Errorf("selectedSkillId: got %q", got.SelectedSkillID)
	}
	if got.Difficulty != "" {
		t.Errorf("difficulty: got %q", got.Difficulty)
	}
	if len(got.CompletedTopicIDs) != 2 || !got.Completed("py1") || !got.Completed("py3") {
		t.Errorf("completedTopicIds: got %v", got.CompletedTopicIDs)
	}
}

func TestSavedBlobFormat(t *testing.T) {
	kv := newMemKV()
	a := newTestAdapter(kv)

	a.Save(UserProgress{SelectedSkillID: "python"})

	var fields map[string]any
	if err := json.Unmarshal(kv.data[StorageKey], &fields); err != nil {
		t.Fatalf("stored blob is not JSON: %v", err)
	}
	if fields["selectedSkillId"] != "python" {
		t.Errorf("selectedSkillId: got %v", fields["selectedSkillId"])
	}
	if fields["difficulty"] != nil {
		t.Errorf("difficulty must serialize as null, got %v", fields["difficulty"])
	}
	ids, ok := fields["completedTopicIds"].([]any)
	if !ok || len(ids) != 0 {
		t.Errorf("completedTopicIds must be an empty array, got %v", fields["completedTopicIds"])
	}
}

func TestUnknownFieldsPreserved(t *testing.T) {
	kv := newMemKV()
	a := newTestAdapter(kv)
	kv.data[StorageKey] = []byte(`{"selectedSkillId":"sql","completedTopicIds":["sql1"],"theme":"dark","v":2}`)

	p := a.Load()
	p.Toggle("sql2")
	a.Save(p)

	var fields map[string]any
	if err := json.Unmarshal(kv.data[StorageKey], &fields); err != nil {
		t.Fatal(err)
	}
	if fields["theme"] != "dark" {
		t.Errorf("unknown field dropped: theme=%v", fields["theme"])
	}
	if fields["v"] != float64(2) {
		t.Errorf("unknown field dropped: v=%v", fields["v"])
	}
}

func TestToggleParity(t *testing.T) {
	var p UserProgress
	for i := 1; i <= 5; i++ {
		p.Toggle("py1")
		want := i%2 == 1
		if p.Completed("py1") != want {
			t.Fatalf("after %d toggles: completed=%v want %v", i, p.Completed("py1"), want)
		}
	}
}

func TestCompletedIn(t *testing.T) {
	p := UserProgress{CompletedTopicIDs: []string{"py1", "py3", "stale-id", "sql1"}}
	set := map[string]bool{"py1": true, "py2": true, "py3": true}
	if got := p.CompletedIn(set); got != 2 {
		t.Errorf("CompletedIn = %d, want 2", got)
	}
	if got := p.CompletedCount(); got != 4 {
		t.Errorf("CompletedCount = %d, want 4", got)
	}
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	kv := newMemKV()
	kv.failPut = true
	a := newTestAdapter(kv)
	// Must not panic or surface the failure.
	a.Save(UserProgress{SelectedSkillID: "java"})
}

func TestCloneIsIndependent(t *testing.T) {
	p := UserProgress{SelectedSkillID: "java", CompletedTopicIDs: []string{"java1"}}
	c := p.Clone()
	c.Toggle("java2")
	if p.Completed("java2") {
		t.Error("mutating the clone leaked into the original")
	}
}

// The read accessors take value receivers so callers can chain them off
// function returns (c.Progress().Completed(...)) without binding a
// variable first. Every call here is on a non-addressable value.
func TestReadAccessorsOnReturnedValues(t *testing.T) {
	p := UserProgress{CompletedTopicIDs: []string{"py1", "sql1"}}

	if !p.Clone().Completed("py1") {
		t.Error("Completed on a returned value missed py1")
	}
	if got := p.Clone().CompletedCount(); got != 2 {
		t.Errorf("CompletedCount on a returned value = %d, want 2", got)
	}
	if got := p.Clone().CompletedIn(map[string]bool{"py1": true}); got != 1 {
		t.Errorf("CompletedIn on a returned value = %d, want 1", got)
	}
}
