package llm

import "testing"

func TestBuildGeminiContents(t *testing.T) {
	msgs := []Message{
		{Role: RoleAssistant, Content: "welcome"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	}

	contents := buildGeminiContents(msgs)
	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}

	wantRoles := []string{"model", "user", "model"}
	for i, c := range contents {
		if c.Role != wantRoles[i] {
			t.Errorf("content %d: role %q, want %q", i, c.Role, wantRoles[i])
		}
		if len(c.Parts) != 1 || c.Parts[0].Text != msgs[i].Content {
			t.Errorf("content %d: parts not mapped from %q", i, msgs[i].Content)
		}
	}
}
