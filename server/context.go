package server

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// requestKey normalises a request id into a map key, so that an id echoed by
// a cancellation notification matches the id of the original request.
func requestKey(id interface{}) string {
	switch actual := id.(type) {
	case nil:
		return "null"
	case json.RawMessage:
		return compactKey(actual)
	case []byte:
		return compactKey(actual)
	case string:
		data, _ := json.Marshal(actual)
		return string(data)
	}
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Sprintf("%v", id)
	}
	return string(data)
}

func compactKey(raw []byte) string {
	if len(raw) == 0 {
		return "null"
	}
	buffer := &bytes.Buffer{}
	if err := json.Compact(buffer, raw); err != nil {
		return string(raw)
	}
	return buffer.String()
}
