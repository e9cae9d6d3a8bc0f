package jasplang

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Pos is a 1-based position. The zero value means no position.
type Pos struct {
	Source *Source
	Line   int
	Column int
}
