package docs

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openapi []byte

// ServeOpenAPI serves the API document the swagger UI is pointed at.
func ServeOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(openapi)
}
