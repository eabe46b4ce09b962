package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/david-aftergut/ILHealth-mcp/internal/catalog"
	"github.com/david-aftergut/ILHealth-mcp/internal/jsonclean"
	"github.com/david-aftergut/ILHealth-mcp/internal/tools"
	"github.com/david-aftergut/ILHealth-mcp/internal/upstream"
)

type MetadataRequest struct {
	Subject string `json:"subject"`
}

// Card describes one queryable endpoint within a subject, re-shaped from the
// upstream metadata document.
type Card struct {
	ID               string  `json:"id"`
	EndPointName     string  `json:"endPointName"`
	APISrc           string  `json:"apiSrc"`
	TransportProject string  `json:"transportProject"`
	Section          string  `json:"section"`
	ComponentName    string  `json:"componentName"`
	EmbedLink        *string `json:"embedLink"`
}

type Section map[string]interface{}

type MetadataResponse struct {
	AvailableEndpoints []Card    `json:"availableEndpoints"`
	Sections           []Section `json:"sections"`
}

type MetadataTool struct {
	client *upstream.Client
}

func NewMetadataTool(client *upstream.Client) *MetadataTool {
	return &MetadataTool{client: client}
}

func (t *MetadataTool) Name() string {
	return "get_metadata"
}

func (t *MetadataTool) Description() string {
	return "Get metadata about available data endpoints for a specific subject. Some endpoints may include an embedLink field that provides access to an interactive GIS map for data visualization."
}

func (t *MetadataTool) Title() string {
	return "Subject Metadata"
}

func (t *MetadataTool) Annotations() map[string]bool {
	return tools.ReadOnlyUpstreamAnnotations()
}

func (t *MetadataTool) Schema() json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"type": "object",
		"properties": {
			"subject": {
				"type": "string",
				"description": "The subject area to get metadata for",
				"enum": %s
			}
		},
		"required": ["subject"]
	}`, subjectEnumJSON()))
}

func (t *MetadataTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req MetadataRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	if err := catalog.Validate(req.Subject); err != nil {
		return nil, err
	}

	doc, err := t.client.Metadata(ctx, req.Subject)
	if err != nil {
		return nil, err
	}

	root, ok := jsonclean.Clean(doc).(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("metadata for %s: expected JSON object, got %T", req.Subject, doc)
	}

	cards, err := mapCards(root["cards"])
	if err != nil {
		return nil, fmt.Errorf("metadata for %s: %w", req.Subject, err)
	}

	sections, err := mapSections(root["sections"])
	if err != nil {
		return nil, fmt.Errorf("metadata for %s: %w", req.Subject, err)
	}

	return success(MetadataResponse{
		AvailableEndpoints: cards,
		Sections:           sections,
	}), nil
}

func mapCards(raw interface{}) ([]Card, error) {
	items, err := elementList(raw, "cards")
	if err != nil {
		return nil, err
	}

	cards := make([]Card, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("card %d: expected object, got %T", i, item)
		}
		card, err := mapCard(obj)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// mapCard requires every field the agent needs to issue a follow-up get_data
// call. A card missing one fails the whole request.
func mapCard(obj map[string]interface{}) (Card, error) {
	var card Card
	var err error

	if card.ID, err = requiredString(obj, "id"); err != nil {
		return Card{}, err
	}
	if card.EndPointName, err = requiredString(obj, "endPointName"); err != nil {
		return Card{}, err
	}
	if card.APISrc, err = requiredString(obj, "apiSrc"); err != nil {
		return Card{}, err
	}
	if card.TransportProject, err = requiredString(obj, "transportProject"); err != nil {
		return Card{}, err
	}
	if card.Section, err = requiredString(obj, "sectionId"); err != nil {
		return Card{}, err
	}
	if card.ComponentName, err = requiredString(obj, "componentName"); err != nil {
		return Card{}, err
	}

	if v, ok := obj["embedLink"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return Card{}, fmt.Errorf("field embedLink: expected string, got %T", v)
		}
		if s = strings.TrimSpace(s); s != "" {
			card.EmbedLink = &s
		}
	}

	return card, nil
}

func mapSections(raw interface{}) ([]Section, error) {
	items, err := elementList(raw, "sections")
	if err != nil {
		return nil, err
	}

	sections := make([]Section, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("section %d: expected object, got %T", i, item)
		}
		sections = append(sections, Section(obj))
	}
	return sections, nil
}

// elementList treats an absent field as empty, matching the upstream
// documents that omit cards or sections entirely.
func elementList(raw interface{}, field string) ([]interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("field %s: expected array, got %T", field, raw)
	}
	return items, nil
}

func requiredString(obj map[string]interface{}, field string) (string, error) {
	v, ok := obj[field]
	if !ok {
		return "", fmt.Errorf("missing required field %q", field)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %s: expected string, got %T", field, v)
	}
	return strings.TrimSpace(s), nil
}
