package dashboard

import (
	"context"
	"encoding/json"

	"github.com/david-aftergut/ILHealth-mcp/internal/catalog"
	"github.com/david-aftergut/ILHealth-mcp/internal/tools"
)

type SubjectsResponse struct {
	Subjects []catalog.Subject `json:"subjects"`
}

// SubjectsTool lists the queryable subject areas. Answered entirely from the
// catalog, it cannot fail.
type SubjectsTool struct{}

func (t *SubjectsTool) Name() string {
	return "get_available_subjects"
}

func (t *SubjectsTool) Description() string {
	return "Get a list of all available subject areas with descriptions"
}

func (t *SubjectsTool) Title() string {
	return "Available Subjects"
}

func (t *SubjectsTool) Annotations() map[string]bool {
	return tools.LocalReadOnlyAnnotations()
}

func (t *SubjectsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {},
		"required": []
	}`)
}

func (t *SubjectsTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	return success(SubjectsResponse{Subjects: catalog.All()}), nil
}
