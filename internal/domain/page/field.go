package page

import (
	"context"
	"fmt"
)

// TextField binds one element id to the handler's input and output ports.
type TextField struct {
	store ElementStore
	id    string
}

// NewTextField returns a port over the element id.
func NewTextField(store ElementStore, id string) *TextField {
	return &TextField{store: store, id: id}
}

// ID returns the bound element id.
func (f *TextField) ID() string { return f.id }

// ReadText returns the current element text; a missing element is an error.
func (f *TextField) ReadText(ctx context.Context) (string, error) {
	el, ok, err := f.store.Text(ctx, f.id)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("element %q not found", f.id)
	}
	return el.Text, nil
}

// WriteText replaces the element text.
func (f *TextField) WriteText(ctx context.Context, text string) error {
	_, err := f.store.SetText(ctx, f.id, text)
	return err
}
