package docs

import (
	"encoding/json"
	"testing"
)

func TestSwaggerDoc(t *testing.T) {
	var doc struct {
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger doc is not valid JSON: %v", err)
	}

	routes := []string{
		"/auth/register",
		"/auth/login",
		"/transactions",
		"/transactions/{id}",
		"/snapshot",
		"/snapshot/reset",
		"/snapshot/sync",
		"/analytics",
		"/health-report",
		"/investment-advice",
	}
	for _, route := range routes {
		if _, ok := doc.Paths[route]; !ok {
			t.Errorf("missing path %s", route)
		}
	}

	for _, def := range []string{"handlers.ErrorResponse", "analytics.Analytics", "services.HealthSummary"} {
		if _, ok := doc.Definitions[def]; !ok {
			t.Errorf("missing definition %s", def)
		}
	}
}
