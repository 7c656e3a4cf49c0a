package export

import (
	"encoding/json"
	"fmt"
)

// JSON renders v as indented JSON for audit/debug downloads.
func JSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}
