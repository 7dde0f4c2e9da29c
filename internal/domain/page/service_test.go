package page_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/summarize-console/internal/domain/page"
	"github.com/yanqian/summarize-console/internal/infra/elementstore"
	apperrors "github.com/yanqian/summarize-console/pkg/errors"
)

var testConfig = page.Config{InputElement: "chatInput", OutputElement: "summaryOutput"}

func TestEnsureCreatesDeclaredElements(t *testing.T) {
	store := elementstore.NewMemoryStore()
	svc := page.NewService(testConfig, store, newTestLogger())

	_, err := svc.Get(context.Background(), "chatInput")
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	require.NoError(t, svc.Ensure(context.Background()))

	el, err := svc.Get(context.Background(), "chatInput")
	require.NoError(t, err)
	require.Equal(t, "", el.Text)
}

func TestEnsureKeepsExistingText(t *testing.T) {
	store := elementstore.NewMemoryStore()
	_, err := store.SetText(context.Background(), "summaryOutput", "kept")
	require.NoError(t, err)

	svc := page.NewService(testConfig, store, newTestLogger())
	require.NoError(t, svc.Ensure(context.Background()))

	el, err := svc.Get(context.Background(), "summaryOutput")
	require.NoError(t, err)
	require.Equal(t, "kept", el.Text)
}

func TestSetRejectsUnknownElement(t *testing.T) {
	svc := page.NewService(testConfig, elementstore.NewMemoryStore(), newTestLogger())

	_, err := svc.Set(context.Background(), "somethingElse", "x")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestTextFieldPorts(t *testing.T) {
	store := elementstore.NewMemoryStore()
	field := page.NewTextField(store, "chatInput")

	_, err := field.ReadText(context.Background())
	require.Error(t, err)

	require.NoError(t, field.WriteText(context.Background(), "hello world"))
	got, err := field.ReadText(context.Background())
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Equal(t, "chatInput", field.ID())
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
