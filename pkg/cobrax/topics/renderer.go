package topics

// Renderer turns raw topic content into terminal output. ext is the topic
// file extension, including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, _ string) string {
	return content
}
