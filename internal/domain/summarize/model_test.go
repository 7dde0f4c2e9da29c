package summarize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectOutput(t *testing.T) {
	tests := []struct {
		name string
		resp ResponsePayload
		want string
	}{
		{name: "summary only", resp: ResponsePayload{Summary: "A greeting."}, want: "A greeting."},
		{name: "error only", resp: ResponsePayload{Error: "rate limited"}, want: "rate limited"},
		{name: "summary wins over error", resp: ResponsePayload{Summary: "X", Error: "Y"}, want: "X"},
		{name: "empty summary falls through to error", resp: ResponsePayload{Summary: "", Error: "Y"}, want: "Y"},
		{name: "neither present", resp: ResponsePayload{}, want: FallbackText},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SelectOutput(tt.resp)
			require.Equal(t, tt.want, got)
			require.NotEmpty(t, got)
		})
	}
}

func TestDecodeResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    ResponsePayload
		wantErr bool
	}{
		{name: "both fields", body: `{"summary":"X","error":"Y"}`, want: ResponsePayload{Summary: "X", Error: "Y"}},
		{name: "keys match exactly", body: `{"Summary":"X","ERROR":"Y"}`, want: ResponsePayload{}},
		{name: "unknown keys ignored", body: `{"summaries":"X","detail":"Y"}`, want: ResponsePayload{}},
		{name: "null field", body: `{"summary":null}`, want: ResponsePayload{}},
		{name: "last duplicate key wins", body: `{"summary":"a","summary":"b"}`, want: ResponsePayload{Summary: "b"}},
		{name: "array body", body: `[{"summary":"X"}]`, want: ResponsePayload{}},
		{name: "boolean body", body: `true`, want: ResponsePayload{}},
		{name: "null body", body: `null`, wantErr: true},
		{name: "non-string summary", body: `{"summary":{"text":"X"}}`, wantErr: true},
		{name: "truncated json", body: `{"summary":"X"`, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := decodeResponse([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
