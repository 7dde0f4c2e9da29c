package elementstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/summarize-console/internal/domain/page"
)

func TestElementFromHash(t *testing.T) {
	at := time.Date(2024, 7, 1, 12, 0, 0, 500, time.UTC)

	tests := []struct {
		name   string
		fields map[string]string
		want   page.Element
		found  bool
	}{
		{name: "missing key", fields: map[string]string{}, found: false},
		{name: "timestamp only", fields: map[string]string{fieldUpdatedAt: at.Format(time.RFC3339Nano)}, found: false},
		{
			name:   "full hash",
			fields: map[string]string{fieldText: "A greeting.", fieldUpdatedAt: at.Format(time.RFC3339Nano)},
			want:   page.Element{ID: "summaryOutput", Text: "A greeting.", UpdatedAt: at},
			found:  true,
		},
		{
			name:   "empty text is still present",
			fields: map[string]string{fieldText: ""},
			want:   page.Element{ID: "summaryOutput"},
			found:  true,
		},
		{
			name:   "bad timestamp ignored",
			fields: map[string]string{fieldText: "x", fieldUpdatedAt: "yesterday"},
			want:   page.Element{ID: "summaryOutput", Text: "x"},
			found:  true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := elementFromHash("summaryOutput", tt.fields)
			require.Equal(t, tt.found, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValkeyElementKey(t *testing.T) {
	require.Equal(t, "console:element:chatInput", NewValkeyStore(nil, "console").elementKey("chatInput"))
	require.Equal(t, "page:element:chatInput", NewValkeyStore(nil, "").elementKey("chatInput"))
}

func TestValkeyClientUnreachable(t *testing.T) {
	client, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{"127.0.0.1:1"}})
	if err == nil {
		client.Close()
	}
	require.Error(t, err)
}
