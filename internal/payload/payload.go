package payload

import "encoding/json"

// MessagePayload represents the JSON payload sent to a Discord webhook.
type MessagePayload struct {
	Content   string  `json:"content,omitempty"`    // Message content (text)
	Username  string  `json:"username,omitempty"`   // Override the default webhook username
	AvatarURL string  `json:"avatar_url,omitempty"` // Override the default webhook avatar
	Embeds    []Embed `json:"embeds,omitempty"`     // Array of embed objects

	// raw, when set, replaces the structured payload entirely
	raw json.RawMessage
}

// NewRawPayload wraps externally supplied JSON that bypasses payload
// construction. The data must already be validated as JSON by the caller.
func NewRawPayload(data []byte) *MessagePayload {
	return &MessagePayload{raw: json.RawMessage(data)}
}

// IsRaw reports whether the payload carries a raw-data override
func (p *MessagePayload) IsRaw() bool {
	return p.raw != nil
}

// Raw returns the raw-data override, or nil when the payload is structured
func (p *MessagePayload) Raw() json.RawMessage {
	return p.raw
}

// MarshalJSON emits the raw override verbatim when present, the structured
// payload otherwise.
func (p *MessagePayload) MarshalJSON() ([]byte, error) {
	if p.raw != nil {
		return p.raw, nil
	}
	type structured MessagePayload
	return json.Marshal((*structured)(p))
}
