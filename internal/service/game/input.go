package game

import (
	"encoding/json"
	"strings"
)

// RawColumn turns a JSON column value, either "4" or 4, into the raw text a
// player would type. Both transports decode moves through it.
func RawColumn(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(v))
}
