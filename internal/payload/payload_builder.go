package payload

// MessagePayloadBuilder helps in constructing MessagePayload objects.
type MessagePayloadBuilder struct {
	payload MessagePayload
}

// NewMessagePayloadBuilder creates a new instance of MessagePayloadBuilder.
func NewMessagePayloadBuilder() *MessagePayloadBuilder {
	return &MessagePayloadBuilder{
		payload: MessagePayload{},
	}
}

// WithContent sets the Content for the MessagePayload.
func (b *MessagePayloadBuilder) WithContent(content string) *MessagePayloadBuilder {
	b.payload.Content = content
	return b
}

// WithUsername sets the Username for the MessagePayload.
func (b *MessagePayloadBuilder) WithUsername(username string) *MessagePayloadBuilder {
	b.payload.Username = username
	return b
}

// WithAvatarURL sets the AvatarURL for the MessagePayload.
func (b *MessagePayloadBuilder) WithAvatarURL(avatarURL string) *MessagePayloadBuilder {
	b.payload.AvatarURL = avatarURL
	return b
}

// AddEmbed adds an Embed to the MessagePayload.
func (b *MessagePayloadBuilder) AddEmbed(embed Embed) *MessagePayloadBuilder {
	b.payload.Embeds = append(b.payload.Embeds, embed)
	return b
}

// Build returns the constructed MessagePayload object.
func (b *MessagePayloadBuilder) Build() *MessagePayload {
	payload := b.payload
	return &payload
}
