package payload

// EmbedGroup pairs a sub-object name with its ordered field list. An empty
// name addresses fields on the embed root.
type EmbedGroup struct {
	Name   string
	Fields []string
}

// EmbedSchema drives which inputs are consulted when constructing an embed,
// and in what order. It is configuration, not user data.
var EmbedSchema = []EmbedGroup{
	{Name: "", Fields: []string{"title", "description", "timestamp", "color", "url"}},
	{Name: "author", Fields: []string{"name", "url", "icon-url"}},
	{Name: "footer", Fields: []string{"text", "icon-url"}},
	{Name: "image", Fields: []string{"url"}},
	{Name: "thumbnail", Fields: []string{"url"}},
}

// TopLevelFields lists the payload keys read directly from inputs, in output
// order.
var TopLevelFields = []string{"content", "username", "avatar-url"}

// InputKey returns the discrete input name for a schema group/field pair,
// e.g. "embed-title" for the root title and "embed-author-name" for the
// author name.
func InputKey(group, field string) string {
	if group == "" {
		return "embed-" + field
	}
	return "embed-" + group + "-" + field
}
