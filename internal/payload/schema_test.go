package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedSchema_Order(t *testing.T) {
	require.Len(t, EmbedSchema, 5)

	assert.Equal(t, "", EmbedSchema[0].Name)
	assert.Equal(t, []string{"title", "description", "timestamp", "color", "url"}, EmbedSchema[0].Fields)

	assert.Equal(t, "author", EmbedSchema[1].Name)
	assert.Equal(t, []string{"name", "url", "icon-url"}, EmbedSchema[1].Fields)

	assert.Equal(t, "footer", EmbedSchema[2].Name)
	assert.Equal(t, []string{"text", "icon-url"}, EmbedSchema[2].Fields)

	assert.Equal(t, "image", EmbedSchema[3].Name)
	assert.Equal(t, []string{"url"}, EmbedSchema[3].Fields)

	assert.Equal(t, "thumbnail", EmbedSchema[4].Name)
	assert.Equal(t, []string{"url"}, EmbedSchema[4].Fields)
}

func TestTopLevelFields_Order(t *testing.T) {
	assert.Equal(t, []string{"content", "username", "avatar-url"}, TopLevelFields)
}

func TestInputKey(t *testing.T) {
	assert.Equal(t, "embed-title", InputKey("", "title"))
	assert.Equal(t, "embed-author-name", InputKey("author", "name"))
	assert.Equal(t, "embed-footer-icon-url", InputKey("footer", "icon-url"))
	assert.Equal(t, "embed-thumbnail-url", InputKey("thumbnail", "url"))
}
