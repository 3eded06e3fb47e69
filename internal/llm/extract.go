package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fenceOpen  = regexp.MustCompile("(?s)```json\\s*")
	fenceClose = regexp.MustCompile("(?s)```\\s*")
)

// ExtractJSON pulls a JSON object out of an LLM reply that may be wrapped in
// markdown code fences or surrounded by prose. The whole reply is tried
// first; otherwise the text is scanned for the first syntactically valid
// top-level object. Scanning uses the JSON decoder itself, so braces inside
// string literals cannot produce a false match.
func ExtractJSON(response string) (string, error) {
	response = fenceOpen.ReplaceAllString(response, "")
	response = fenceClose.ReplaceAllString(response, "")
	response = strings.TrimSpace(response)

	var raw json.RawMessage
	if err := json.Unmarshal([]byte(response), &raw); err == nil && len(response) > 0 && response[0] == '{' {
		return response, nil
	}

	for i := 0; i < len(response); i++ {
		if response[i] != '{' {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(response[i:]))
		var candidate json.RawMessage
		if err := dec.Decode(&candidate); err == nil {
			return string(candidate), nil
		}
	}

	return "", fmt.Errorf("no valid JSON object found in response")
}

// DecodeJSON extracts the first JSON object from response and unmarshals it
// into v.
func DecodeJSON(response string, v any) error {
	jsonStr, err := ExtractJSON(response)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(jsonStr), v); err != nil {
		return fmt.Errorf("failed to unmarshal extracted JSON: %w", err)
	}
	return nil
}
