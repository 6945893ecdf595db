package llm

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// MenuPayload is the parsed shape of a successful extraction response.
type MenuPayload struct {
	MenuItems []ExtractedItem `json:"menu_items"`
}

// ExtractedItem is one item as the model emits it. Price is a string per
// the prompt contract but FlexString also swallows bare numbers, which
// some responses produce anyway.
type ExtractedItem struct {
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	DescriptionSource string     `json:"description_source"`
	Price             FlexString `json:"price"`
	Category          string     `json:"category"`
	IsVeg             *bool      `json:"is_veg"`
	SpiceLevel        string     `json:"spice_level"`
}

// FlexString decodes from a JSON string or a JSON number.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

var codeFencePattern = regexp.MustCompile("(?is)^```(?:json)?\\s*([\\s\\S]*?)\\s*```$")

// ParseMenuPayload attempts to recover the structured payload from the
// model's raw text. It tries, in order: plain JSON; JSON inside a fenced
// code block (with or without a language tag); a JSON-encoded string
// that itself contains escaped JSON. The boolean reports success; on
// failure the caller keeps the raw text.
func ParseMenuPayload(text string) (*MenuPayload, bool) {
	trimmed := strings.TrimSpace(text)
	if m := codeFencePattern.FindStringSubmatch(trimmed); m != nil {
		trimmed = strings.TrimSpace(m[1])
	}

	if payload, ok := decodeMenuPayload(trimmed); ok {
		return payload, true
	}

	// Double-encoded: the whole content is a JSON string whose value is
	// more JSON.
	if strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) &&
		(strings.Contains(trimmed, `\n`) || strings.Contains(trimmed, `\"`)) {
		var unescaped string
		if err := json.Unmarshal([]byte(trimmed), &unescaped); err == nil {
			if payload, ok := decodeMenuPayload(unescaped); ok {
				return payload, true
			}
		}
	}

	return nil, false
}

func decodeMenuPayload(text string) (*MenuPayload, bool) {
	var payload MenuPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, false
	}
	if payload.MenuItems == nil {
		return nil, false
	}
	return &payload, true
}

// ParsePrice turns the model's sanitized price string into a plain
// decimal string, rejecting anything that is not a number.
func ParsePrice(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", false
	}
	if _, err := strconv.ParseFloat(cleaned, 64); err != nil {
		return "", false
	}
	return cleaned, true
}
