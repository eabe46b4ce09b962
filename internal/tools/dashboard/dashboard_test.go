package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/david-aftergut/ILHealth-mcp/internal/catalog"
	"github.com/david-aftergut/ILHealth-mcp/internal/upstream"
)

// beachesMetadata mimics a dashboard metadata document, whitespace padding
// included.
const beachesMetadata = `{
	"cards": [
		{
			"id": "  c1 ",
			"endPointName": " beachWater\n",
			"apiSrc": " gov ",
			"transportProject": " proj1 ",
			"sectionId": " S1 ",
			"componentName": " map ",
			"embedLink": " https://gis.example/map \n"
		},
		{
			"id": "c2",
			"endPointName": "beachStatus",
			"apiSrc": "gov",
			"transportProject": "proj1",
			"sectionId": "S2",
			"componentName": "table"
		}
	],
	"sections": [
		{"id": " S1 ", "title": "  Water Quality \n", "order": 1},
		{"id": "S2", "title": "Status", "order": 2}
	],
	"links": [
		{"sectionId": "S1", "url": " https://example.org/a ", "title": " A "},
		{"sectionId": "S2", "url": "https://example.org/b", "title": "B"},
		{"sectionId": "S1", "url": "https://example.org/c", "title": "C"}
	]
}`

func newTestClient(baseURL string) *upstream.Client {
	return upstream.NewClient(upstream.Config{
		MetadataBaseURL: baseURL + "/api/content/dashboard",
		DataBaseURL:     baseURL + "/api",
		Timeout:         5 * time.Second,
	})
}

func metadataServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetTools(t *testing.T) {
	tools := GetTools(nil)

	if len(tools) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(tools))
	}

	names := []string{"get_available_subjects", "get_metadata", "get_data", "get_links"}
	for i, expectedName := range names {
		if tools[i].Name() != expectedName {
			t.Errorf("expected tool %d to be '%s', got '%s'", i, expectedName, tools[i].Name())
		}
	}
}

func TestGetToolByName(t *testing.T) {
	if GetToolByName("get_metadata", nil) == nil {
		t.Error("get_metadata tool should not be nil")
	}
	if GetToolByName("nonexistent", nil) != nil {
		t.Error("nonexistent tool should be nil")
	}
}

func TestSchemasEmbedSubjectEnum(t *testing.T) {
	for _, name := range []string{"get_metadata", "get_data", "get_links"} {
		tool := GetToolByName(name, nil)

		var schema struct {
			Properties struct {
				Subject struct {
					Enum []string `json:"enum"`
				} `json:"subject"`
			} `json:"properties"`
		}
		if err := json.Unmarshal(tool.Schema(), &schema); err != nil {
			t.Fatalf("%s: invalid schema JSON: %v", name, err)
		}

		if !reflect.DeepEqual(schema.Properties.Subject.Enum, catalog.IDs()) {
			t.Errorf("%s: subject enum %v does not match catalog ids %v",
				name, schema.Properties.Subject.Enum, catalog.IDs())
		}
	}
}
