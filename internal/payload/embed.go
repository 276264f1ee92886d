package payload

// Embed represents a Discord embed object. Color is a pointer so that color
// zero (black, a valid value) survives marshaling and emptiness checks.
type Embed struct {
	Title       string          `json:"title,omitempty"`       // Title of embed
	Description string          `json:"description,omitempty"` // Description of embed
	URL         string          `json:"url,omitempty"`         // URL of embed
	Timestamp   string          `json:"timestamp,omitempty"`   // ISO8601 timestamp
	Color       *int            `json:"color,omitempty"`       // Color code of the embed
	Author      *EmbedAuthor    `json:"author,omitempty"`
	Footer      *EmbedFooter    `json:"footer,omitempty"`
	Image       *EmbedImage     `json:"image,omitempty"`
	Thumbnail   *EmbedThumbnail `json:"thumbnail,omitempty"`
}

// IsEmpty reports whether no field of the embed has been set
func (e Embed) IsEmpty() bool {
	return e.Title == "" &&
		e.Description == "" &&
		e.URL == "" &&
		e.Timestamp == "" &&
		e.Color == nil &&
		e.Author == nil &&
		e.Footer == nil &&
		e.Image == nil &&
		e.Thumbnail == nil
}

// EmbedAuthor represents the author of an embed.
type EmbedAuthor struct {
	Name    string `json:"name,omitempty"`     // Name of author
	URL     string `json:"url,omitempty"`      // URL of author (only supports http(s))
	IconURL string `json:"icon_url,omitempty"` // URL of author icon (only supports http(s) and attachments)
}

// EmbedFooter represents the footer of an embed.
type EmbedFooter struct {
	Text    string `json:"text,omitempty"`     // Footer text
	IconURL string `json:"icon_url,omitempty"` // URL of footer icon (only supports http(s) and attachments)
}

// EmbedImage represents the image of an embed.
type EmbedImage struct {
	URL string `json:"url"` // Source URL of image (only supports http(s) and attachments)
}

// EmbedThumbnail represents the thumbnail of an embed.
type EmbedThumbnail struct {
	URL string `json:"url"` // Source URL of thumbnail (only supports http(s) and attachments)
}
