package subtitle

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/arielfikru/NekkoSub/internal/model"
)

// FormatJSON renders dialogues as a JSON array. Non-ASCII text is
// emitted literally and HTML escaping is off, so dialogue content
// survives byte for byte. An empty extraction renders as [] rather
// than null. indent is the per-level indent string; "" means compact.
func FormatJSON(dialogues []model.Dialogue, indent string) ([]byte, error) {
	if dialogues == nil {
		dialogues = []model.Dialogue{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(dialogues); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}
