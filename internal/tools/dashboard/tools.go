// Package dashboard exposes the health ministry data dashboard as MCP tools.
package dashboard

import (
	"encoding/json"

	"github.com/david-aftergut/ILHealth-mcp/internal/catalog"
	"github.com/david-aftergut/ILHealth-mcp/internal/tools"
	"github.com/david-aftergut/ILHealth-mcp/internal/upstream"
)

func GetTools(client *upstream.Client) []tools.Tool {
	return []tools.Tool{
		&SubjectsTool{},
		NewMetadataTool(client),
		NewDataTool(client),
		NewLinksTool(client),
	}
}

func GetToolByName(name string, client *upstream.Client) tools.Tool {
	for _, tool := range GetTools(client) {
		if tool.Name() == name {
			return tool
		}
	}
	return nil
}

// Envelope is the uniform wrapper returned by every tool.
type Envelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

func success(data interface{}) Envelope {
	return Envelope{Status: "success", Data: data}
}

func subjectEnumJSON() string {
	b, _ := json.Marshal(catalog.IDs())
	return string(b)
}
