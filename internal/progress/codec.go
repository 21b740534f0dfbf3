package progress

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// blobSchema shape-checks a persisted blob before it is trusted. A blob that
// fails validation is treated as malformed and replaced with defaults.
// Unknown fields are allowed; they ride along untouched.
const blobSchema = `{
	"type": "object",
	"properties": {
		"selectedSkillId":   {"type": ["string", "null"]},
		"difficulty":        {"enum": ["Beginner", "Intermediate", "Advanced", null]},
		"completedTopicIds": {"type": "array", "items": {"type": "string"}}
	}
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var parsed any
	if err := json.Unmarshal([]byte(blobSchema), &parsed); err != nil {
		return nil, fmt.Errorf("parse blob schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://progress.json", parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile("schema://progress.json")
})

const (
	fieldSelectedSkill   = "selectedSkillId"
	fieldDifficulty      = "difficulty"
	fieldCompletedTopics = "completedTopicIds"
)

// decode parses a persisted blob. Any malformation (bad JSON, wrong shape)
// returns an error; callers fall back to the zero record.
func decode(blob []byte) (UserProgress, error) {
	var parsed any
	if err := json.Unmarshal(blob, &parsed); err != nil {
		return UserProgress{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return UserProgress{}, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return UserProgress{}, fmt.Errorf("schema validation: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(blob, &fields); err != nil {
		return UserProgress{}, fmt.Errorf("decode fields: %w", err)
	}

	var p UserProgress
	if raw, ok := fields[fieldSelectedSkill]; ok {
		var id *string
		if err := json.Unmarshal(raw, &id); err != nil {
			return UserProgress{}, fmt.Errorf("decode %s: %w", fieldSelectedSkill, err)
		}
		if id != nil {
			p.SelectedSkillID = *id
		}
		delete(fields, fieldSelectedSkill)
	}
	if raw, ok := fields[fieldDifficulty]; ok {
		var d *Difficulty
		if err := json.Unmarshal(raw, &d); err != nil {
			return UserProgress{}, fmt.Errorf("decode %s: %w", fieldDifficulty, err)
		}
		if d != nil {
			p.Difficulty = *d
		}
		delete(fields, fieldDifficulty)
	}
	if raw, ok := fields[fieldCompletedTopics]; ok {
		if err := json.Unmarshal(raw, &p.CompletedTopicIDs); err != nil {
			return UserProgress{}, fmt.Errorf("decode %s: %w", fieldCompletedTopics, err)
		}
		delete(fields, fieldCompletedTopics)
	}
	if len(fields) > 0 {
		p.extra = fields
	}
	return p, nil
}

// encode serializes the record, emitting null for the unset track and
// difficulty and an empty array (never null) for completed topics. Unknown
// fields captured at decode time are written back unchanged.
func encode(p UserProgress) ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(p.extra)+3)
	for k, v := range p.extra {
		fields[k] = v
	}

	if p.SelectedSkillID == "" {
		fields[fieldSelectedSkill] = json.RawMessage("null")
	} else {
		raw, err := json.Marshal(p.SelectedSkillID)
		if err != nil {
			return nil, err
		}
		fields[fieldSelectedSkill] = raw
	}

	if p.Difficulty == "" {
		fields[fieldDifficulty] = json.RawMessage("null")
	} else {
		raw, err := json.Marshal(p.Difficulty)
		if err != nil {
			return nil, err
		}
		fields[fieldDifficulty] = raw
	}

	ids := p.CompletedTopicIDs
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return nil, err
	}
	fields[fieldCompletedTopics] = raw

	return json.Marshal(fields)
}
