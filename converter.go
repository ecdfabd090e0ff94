package pagespec

// Converter transforms HTML content into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
