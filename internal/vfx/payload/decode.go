package payload

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ErrQuarantined marks a payload that does not match the shape its transaction type requires.
var ErrQuarantined = errors.New("payload quarantined")

func quarantine(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrQuarantined, fmt.Sprintf(format, args...))
}

// unwrap returns the JSON document carried by data. The node sends payloads as JSON
// encoded strings; rows imported from older dumps may hold the document directly.
func unwrap(data string) ([]byte, error) {
	raw := bytes.TrimSpace([]byte(data))
	if len(raw) == 0 {
		return nil, quarantine("empty payload")
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, quarantine("decode payload string: %v", err)
		}
		raw = bytes.TrimSpace([]byte(inner))
		if len(raw) == 0 {
			return nil, quarantine("empty payload")
		}
	}
	return raw, nil
}

// decodeFirst decodes data into v. A list payload contributes its first element.
func decodeFirst(data string, v any) error {
	raw, err := unwrap(data)
	if err != nil {
		return err
	}

	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return quarantine("decode payload list: %v", err)
		}
		if len(items) == 0 {
			return quarantine("payload list is empty")
		}
		raw = items[0]
	case '{':
	default:
		return quarantine("payload is neither an object nor a list")
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return quarantine("decode payload: %v", err)
	}
	return nil
}
