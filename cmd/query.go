package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// queryJSON evaluates a JSONPath expression against a JSON document and
// returns the result as JSON.
func queryJSON(doc []byte, path string) ([]byte, error) {
	var jobj any
	if err := json.Unmarshal(doc, &jobj); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return json.MarshalIndent(jval, "", "  ")
}
