package webutils

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// JSONResponse writes resp encoded as JSON with status code 200.
func JSONResponse(w http.ResponseWriter, resp any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		log.Printf("error writing JSON response: %s", err)
	}
}
