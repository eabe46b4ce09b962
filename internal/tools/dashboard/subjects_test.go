package dashboard

import (
	"context"
	"encoding/json"
	"testing"
)

func TestSubjectsTool(t *testing.T) {
	tool := &SubjectsTool{}

	if tool.Name() != "get_available_subjects" {
		t.Errorf("expected name 'get_available_subjects', got '%s'", tool.Name())
	}
	if tool.Description() == "" {
		t.Error("description should not be empty")
	}
	if len(tool.Schema()) == 0 {
		t.Error("schema should not be empty")
	}
	if tool.Annotations()["readOnlyHint"] != true {
		t.Error("subjects tool should be read-only")
	}
}

func TestSubjectsExecute(t *testing.T) {
	tool := &SubjectsTool{}

	resp, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env := resp.(Envelope)
	if env.Status != "success" {
		t.Errorf("expected status 'success', got %q", env.Status)
	}

	data := env.Data.(SubjectsResponse)
	if len(data.Subjects) != 7 {
		t.Fatalf("expected 7 subjects, got %d", len(data.Subjects))
	}
	for _, s := range data.Subjects {
		if s.Name == "" || s.Description == "" {
			t.Errorf("subject %s has empty name or description", s.ID)
		}
	}
}
