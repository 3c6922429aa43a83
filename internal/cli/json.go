// File: json.go
// Role: shared JSON read/write helpers over json-iterator, the encode
// boundary this repo draws a real dependency on (see DESIGN.md).
package cli

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := jsonAPI.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(path, data, 0o644)
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return jsonAPI.Unmarshal(data, v)
}
