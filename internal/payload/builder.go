package payload

import (
	"os"

	"github.com/O-Mutt/discord-webhook/internal/errorwrapper"
	"github.com/O-Mutt/discord-webhook/internal/inputs"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// Builder constructs one MessagePayload per invocation from an input source.
type Builder struct {
	source    inputs.Source
	logger    zerolog.Logger
	validator *EmbedValidator
}

// NewBuilder creates a new payload builder
func NewBuilder(source inputs.Source, logger zerolog.Logger) *Builder {
	return &Builder{
		source:    source,
		logger:    logger.With().Str("module", "PayloadBuilder").Logger(),
		validator: NewEmbedValidator(),
	}
}

// Build produces the payload from the input source. A non-empty raw-data
// input short-circuits construction: the referenced file is returned as the
// payload verbatim and every other field is ignored.
func (b *Builder) Build() (*MessagePayload, error) {
	if rawPath := b.source.Get("raw-data"); rawPath != "" {
		return b.buildRawPayload(rawPath)
	}

	pb := NewMessagePayloadBuilder()

	for _, field := range TopLevelFields {
		value, err := NormalizeValue(field, b.source.Get(field))
		if err != nil {
			return nil, err
		}
		if value == "" {
			continue
		}
		switch field {
		case "content":
			pb.WithContent(value)
		case "username":
			pb.WithUsername(value)
		case "avatar-url":
			pb.WithAvatarURL(value)
		}
	}

	embeds, err := b.buildEmbeds()
	if err != nil {
		return nil, err
	}

	// Attach the embeds array only when at least one entry carries a field
	hasContent := false
	for _, embed := range embeds {
		if !embed.IsEmpty() {
			hasContent = true
			break
		}
	}
	if hasContent {
		for _, embed := range embeds {
			if err := b.validator.ValidateEmbed(embed); err != nil {
				b.logger.Warn().Err(err).Msg("Embed exceeds a Discord limit, sending anyway")
			}
			pb.AddEmbed(embed)
		}
	}

	return pb.Build(), nil
}

// buildRawPayload reads and validates a raw-data override file
func (b *Builder) buildRawPayload(rawPath string) (*MessagePayload, error) {
	data, err := os.ReadFile(rawPath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read raw-data file")
	}

	if !gjson.ValidBytes(data) {
		return nil, errorwrapper.NewValidationError("raw-data", rawPath, "file content is not valid JSON")
	}

	b.logger.Info().Str("raw_data", rawPath).Msg("Using raw-data override, ignoring all other payload inputs")
	return NewRawPayload(data), nil
}

// buildEmbeds selects between bulk and discrete embed construction. A bulk
// embeds input that is not a valid JSON array is logged and discrete mode is
// used as fallback.
func (b *Builder) buildEmbeds() ([]Embed, error) {
	bulk := b.source.Get("embeds")
	if bulk != "" {
		if gjson.Valid(bulk) {
			parsed := gjson.Parse(bulk)
			if parsed.IsArray() {
				return b.buildBulkEmbeds(parsed.Array())
			}
		}
		b.logger.Error().Msg("embeds input is not a valid JSON array, falling back to discrete embed inputs")
	}

	embed, err := b.buildDiscreteEmbed()
	if err != nil {
		return nil, err
	}
	return []Embed{embed}, nil
}

// buildBulkEmbeds produces one embed per array element, preserving order.
// Empty elements stay in the result so entry count matches element count.
func (b *Builder) buildBulkEmbeds(elements []gjson.Result) ([]Embed, error) {
	embeds := make([]Embed, 0, len(elements))

	for _, element := range elements {
		var embed Embed
		for _, group := range EmbedSchema {
			for _, field := range group.Fields {
				result := lookupEmbedValue(element, group.Name, field)
				if !result.Exists() {
					continue
				}
				value, err := NormalizeValue(field, result.String())
				if err != nil {
					return nil, err
				}
				if value == "" {
					continue
				}
				if err := setEmbedField(&embed, group.Name, field, value); err != nil {
					return nil, err
				}
			}
		}
		embeds = append(embeds, embed)
	}

	return embeds, nil
}

// buildDiscreteEmbed produces a single embed from per-field inputs
func (b *Builder) buildDiscreteEmbed() (Embed, error) {
	var embed Embed

	for _, group := range EmbedSchema {
		for _, field := range group.Fields {
			value, err := NormalizeValue(field, b.source.Get(InputKey(group.Name, field)))
			if err != nil {
				return Embed{}, err
			}
			if value == "" {
				continue
			}
			if err := setEmbedField(&embed, group.Name, field, value); err != nil {
				return Embed{}, err
			}
		}
	}

	return embed, nil
}

// lookupEmbedValue resolves a schema group/field pair inside a bulk array
// element. Root fields are bare keys; sub-object fields are tried as a flat
// hyphenated key first, then as a nested path. A missing or non-object
// intermediate yields a non-existent result.
func lookupEmbedValue(element gjson.Result, group, field string) gjson.Result {
	if group == "" {
		return element.Get(field)
	}
	if flat := element.Get(group + "-" + field); flat.Exists() {
		return flat
	}
	return element.Get(group + "." + field)
}

// setEmbedField assigns a normalized value to its place in the embed
func setEmbedField(embed *Embed, group, field, value string) error {
	switch group {
	case "":
		switch field {
		case "title":
			embed.Title = value
		case "description":
			embed.Description = value
		case "timestamp":
			embed.Timestamp = value
		case "color":
			color, err := parseColor(value)
			if err != nil {
				return errorwrapper.NewValidationError("embed-color", value, "cannot parse as a color value")
			}
			embed.Color = &color
		case "url":
			embed.URL = value
		}
	case "author":
		if embed.Author == nil {
			embed.Author = &EmbedAuthor{}
		}
		switch field {
		case "name":
			embed.Author.Name = value
		case "url":
			embed.Author.URL = value
		case "icon-url":
			embed.Author.IconURL = value
		}
	case "footer":
		if embed.Footer == nil {
			embed.Footer = &EmbedFooter{}
		}
		switch field {
		case "text":
			embed.Footer.Text = value
		case "icon-url":
			embed.Footer.IconURL = value
		}
	case "image":
		embed.Image = &EmbedImage{URL: value}
	case "thumbnail":
		embed.Thumbnail = &EmbedThumbnail{URL: value}
	}
	return nil
}
