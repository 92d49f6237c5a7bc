package swagger

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var parsed struct {
		Info  struct{ Title string } `json:"info"`
		Paths map[string]any         `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}
	if parsed.Info.Title != "Items API" {
		t.Errorf("title: got %q", parsed.Info.Title)
	}
	for _, p := range []string{"/", "/items", "/items/{id}"} {
		if _, ok := parsed.Paths[p]; !ok {
			t.Errorf("missing path %s", p)
		}
	}
}
