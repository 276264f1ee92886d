package payload

import "github.com/O-Mutt/discord-webhook/internal/errorwrapper"

// Discord embed limits
const (
	maxTitleLength      = 256
	maxFooterTextLength = 2048
	maxAuthorNameLength = 256
)

// EmbedValidator validates embed objects against Discord's limits
type EmbedValidator struct{}

// NewEmbedValidator creates a new embed validator
func NewEmbedValidator() *EmbedValidator {
	return &EmbedValidator{}
}

// ValidateEmbed validates an embed. The remote service enforces these limits
// authoritatively; violations here are advisory.
func (ev *EmbedValidator) ValidateEmbed(embed Embed) error {
	if len(embed.Title) > maxTitleLength {
		return errorwrapper.NewValidationError("title", embed.Title, "title cannot exceed 256 characters")
	}

	if len(embed.Description) > MaxDescriptionLength {
		return errorwrapper.NewValidationError("description", embed.Description, "description cannot exceed 4096 characters")
	}

	if embed.Footer != nil && len(embed.Footer.Text) > maxFooterTextLength {
		return errorwrapper.NewValidationError("footer_text", embed.Footer.Text, "footer text cannot exceed 2048 characters")
	}

	if embed.Author != nil && len(embed.Author.Name) > maxAuthorNameLength {
		return errorwrapper.NewValidationError("author_name", embed.Author.Name, "author name cannot exceed 256 characters")
	}

	return nil
}
