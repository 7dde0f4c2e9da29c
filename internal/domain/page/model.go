package page

import (
	"context"
	"time"
)

// Element is a named text slot on the headless page.
type Element struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Config names the elements the page declares.
type Config struct {
	InputElement  string
	OutputElement string
}

// IDs returns the declared element ids.
func (c Config) IDs() []string {
	return []string{c.InputElement, c.OutputElement}
}

// ElementStore persists element text. Writes are last-writer-wins.
type ElementStore interface {
	Text(ctx context.Context, id string) (Element, bool, error)
	SetText(ctx context.Context, id, text string) (Element, error)
}
