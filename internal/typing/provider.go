package typing

// TextProvider supplies reference texts. Repeats are allowed.
type TextProvider interface {
	NextText() (string, error)
}

// TextProviderFunc adapts a function to TextProvider.
type TextProviderFunc func() (string, error)

// NextText implements TextProvider.
func (f TextProviderFunc) NextText() (string, error) {
	return f()
}
