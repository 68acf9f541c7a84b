package util

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// QueryJSON extracts the value at a gjson path from a JSON document.
func QueryJSON(data []byte, path string) (interface{}, error) {
	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return nil, fmt.Errorf("path '%s' not found in JSON", path)
	}
	return result.Value(), nil
}

// SetJSON sets the value at a gjson path, returning the updated document.
// Starting from an empty document builds one up key by key.
func SetJSON(data []byte, path string, value interface{}) ([]byte, error) {
	out, err := sjson.SetBytes(data, path, value)
	if err != nil {
		return nil, fmt.Errorf("failed to set JSON value at path '%s': %w", path, err)
	}
	return out, nil
}
