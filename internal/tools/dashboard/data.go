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

type DataRequest struct {
	Subject          string `json:"subject"`
	TransportProject string `json:"transportProject"`
	EndPointName     string `json:"endPointName"`
}

type DataMetadata struct {
	Subject          string `json:"subject"`
	TransportProject string `json:"transportProject"`
	Endpoint         string `json:"endpoint"`
}

// DataEnvelope carries the call parameters beside the payload so the agent
// can correlate responses without extra bookkeeping.
type DataEnvelope struct {
	Status   string       `json:"status"`
	Metadata DataMetadata `json:"metadata"`
	Data     interface{}  `json:"data"`
}

type DataTool struct {
	client *upstream.Client
}

func NewDataTool(client *upstream.Client) *DataTool {
	return &DataTool{client: client}
}

func (t *DataTool) Name() string {
	return "get_data"
}

func (t *DataTool) Description() string {
	return "Get specific data from an endpoint. If the response includes an embedLink field, it provides access to an interactive GIS map where you can visualize this data - consider suggesting the user to open this map for a better understanding of the information."
}

func (t *DataTool) Title() string {
	return "Endpoint Data"
}

func (t *DataTool) Annotations() map[string]bool {
	return tools.ReadOnlyUpstreamAnnotations()
}

func (t *DataTool) Schema() json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"type": "object",
		"properties": {
			"subject": {
				"type": "string",
				"description": "The subject area",
				"enum": %s
			},
			"transportProject": {
				"type": "string",
				"description": "The project identifier"
			},
			"endPointName": {
				"type": "string",
				"description": "The specific endpoint to query"
			}
		},
		"required": ["subject", "transportProject", "endPointName"]
	}`, subjectEnumJSON()))
}

// Execute fetches the endpoint payload. Only endPointName feeds the request
// URL; transportProject is echoed back in the response metadata and nothing
// else, matching the upstream dashboard contract.
func (t *DataTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req DataRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	if err := catalog.Validate(req.Subject); err != nil {
		return nil, err
	}
	if req.EndPointName == "" {
		return nil, fmt.Errorf("endPointName is required")
	}

	payload, err := t.client.Data(ctx, req.EndPointName)
	if err != nil {
		return nil, err
	}

	return DataEnvelope{
		Status: "success",
		Metadata: DataMetadata{
			Subject:          req.Subject,
			TransportProject: req.TransportProject,
			Endpoint:         req.EndPointName,
		},
		Data: jsonclean.Clean(payload),
	}, nil
}
