package elementstore

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/summarize-console/internal/domain/page"
)

const (
	fieldText      = "text"
	fieldUpdatedAt = "updatedAt"
)

// ValkeyStore persists elements as Valkey hashes so several consoles can share one page.
type ValkeyStore struct {
	client valkey.Client
	prefix string
	now    func() time.Time
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "page"
	}
	return &ValkeyStore{client: client, prefix: prefix, now: func() time.Time { return time.Now().UTC() }}
}

func (s *ValkeyStore) Text(ctx context.Context, id string) (page.Element, bool, error) {
	fields, err := s.client.Do(ctx, s.client.B().Hgetall().Key(s.elementKey(id)).Build()).AsStrMap()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return page.Element{}, false, nil
		}
		return page.Element{}, false, err
	}
	el, ok := elementFromHash(id, fields)
	return el, ok, nil
}

// elementFromHash rebuilds an element from its hash fields. HGETALL on a
// missing key yields an empty map, which reports not found.
func elementFromHash(id string, fields map[string]string) (page.Element, bool) {
	text, ok := fields[fieldText]
	if !ok {
		return page.Element{}, false
	}
	el := page.Element{ID: id, Text: text}
	if raw := fields[fieldUpdatedAt]; raw != "" {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			el.UpdatedAt = ts.UTC()
		}
	}
	return el, true
}

func (s *ValkeyStore) SetText(ctx context.Context, id, text string) (page.Element, error) {
	el := page.Element{ID: id, Text: text, UpdatedAt: s.now()}
	cmd := s.client.B().Hset().Key(s.elementKey(id)).
		FieldValue().
		FieldValue(fieldText, text).
		FieldValue(fieldUpdatedAt, el.UpdatedAt.Format(time.RFC3339Nano)).
		Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return page.Element{}, err
	}
	return el, nil
}

func (s *ValkeyStore) elementKey(id string) string {
	return fmt.Sprintf("%s:element:%s", s.prefix, id)
}

var _ page.ElementStore = (*ValkeyStore)(nil)
