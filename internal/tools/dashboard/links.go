package dashboard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/david-aftergut/ILHealth-mcp/internal/catalog"
	"github.com/david-aftergut/ILHealth-mcp/internal/jsonclean"
	"github.com/david-aftergut/ILHealth-mcp/internal/tools"
	"github.com/david-aftergut/ILHealth-mcp/internal/upstream"
)

type LinksRequest struct {
	Subject   string `json:"subject"`
	SectionID string `json:"sectionId"`
}

type LinksResponse struct {
	Links []interface{} `json:"links"`
}

type LinksTool struct {
	client *upstream.Client
}

func NewLinksTool(client *upstream.Client) *LinksTool {
	return &LinksTool{client: client}
}

func (t *LinksTool) Name() string {
	return "get_links"
}

func (t *LinksTool) Description() string {
	return "Get relevant links and documentation for a subject area"
}

func (t *LinksTool) Title() string {
	return "Subject Links"
}

func (t *LinksTool) Annotations() map[string]bool {
	return tools.ReadOnlyUpstreamAnnotations()
}

func (t *LinksTool) Schema() json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"type": "object",
		"properties": {
			"subject": {
				"type": "string",
				"description": "The subject area to get links for",
				"enum": %s
			},
			"sectionId": {
				"type": "string",
				"description": "Optional section ID to filter links"
			}
		},
		"required": ["subject"]
	}`, subjectEnumJSON()))
}

func (t *LinksTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req LinksRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	if err := catalog.Validate(req.Subject); err != nil {
		return nil, err
	}

	// Links live inside the same metadata document get_metadata reads.
	doc, err := t.client.Metadata(ctx, req.Subject)
	if err != nil {
		return nil, err
	}

	root, ok := jsonclean.Clean(doc).(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("metadata for %s: expected JSON object, got %T", req.Subject, doc)
	}

	links, err := elementList(root["links"], "links")
	if err != nil {
		return nil, fmt.Errorf("links for %s: %w", req.Subject, err)
	}

	if req.SectionID != "" {
		links, err = filterBySection(links, req.SectionID)
		if err != nil {
			return nil, fmt.Errorf("links for %s: %w", req.Subject, err)
		}
	}

	if links == nil {
		links = []interface{}{}
	}

	return success(LinksResponse{Links: links}), nil
}

// filterBySection keeps links whose sectionId equals the requested one
// exactly. Every link must carry a sectionId field; a non-string value simply
// never matches.
func filterBySection(links []interface{}, sectionID string) ([]interface{}, error) {
	filtered := make([]interface{}, 0, len(links))
	for i, item := range links {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("link %d: expected object, got %T", i, item)
		}
		v, ok := obj["sectionId"]
		if !ok {
			return nil, fmt.Errorf("link %d: missing required field %q", i, "sectionId")
		}
		if s, isString := v.(string); isString && s == sectionID {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}
