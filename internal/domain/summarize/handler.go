package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/yanqian/summarize-console/pkg/errors"
)

// Handler runs one read-request-render cycle per trigger. It holds no
// state between invocations; concurrent invocations race on the output
// and the last response to resolve wins.
type Handler struct {
	endpoint string
	input    InputReader
	output   OutputWriter
	doer     Doer
	logger   *slog.Logger
}

// NewHandler is a wire provider for the request handler.
func NewHandler(cfg Config, input InputReader, output OutputWriter, doer Doer, logger *slog.Logger) *Handler {
	return &Handler{
		endpoint: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/") + EndpointPath,
		input:    input,
		output:   output,
		doer:     doer,
		logger:   logger.With("component", "summarize.handler"),
	}
}

// HandleTrigger reads the input, posts it and renders the response.
// Any failure before the render is returned and leaves the output untouched.
func (h *Handler) HandleTrigger(ctx context.Context) error {
	text, err := h.input.ReadText(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInputUnavailable, "read input", err)
	}

	resp, err := h.send(ctx, RequestPayload{Text: text})
	if err != nil {
		return err
	}

	out := SelectOutput(resp)
	if err := h.output.WriteText(ctx, out); err != nil {
		return apperrors.Wrap(apperrors.CodeOutputUnavailable, "write output", err)
	}
	h.logger.DebugContext(ctx, "output rendered", "has_summary", resp.Summary != "", "has_error", resp.Error != "")
	return nil
}

func (h *Handler) send(ctx context.Context, payload RequestPayload) (ResponsePayload, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return ResponsePayload{}, apperrors.Wrap(apperrors.CodeTransport, "encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return ResponsePayload{}, apperrors.Wrap(apperrors.CodeTransport, "build summarize request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := h.doer.Do(req)
	if err != nil {
		return ResponsePayload{}, apperrors.Wrap(apperrors.CodeTransport, "summarize request failed", err)
	}
	defer res.Body.Close()

	// The status code does not gate parsing; a JSON error body is still rendered.
	if res.StatusCode >= 300 {
		h.logger.WarnContext(ctx, "summarize endpoint returned non-success status", "status", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return ResponsePayload{}, apperrors.Wrap(apperrors.CodeTransport, "read summarize response", err)
	}

	decoded, err := decodeResponse(raw)
	if err != nil {
		return ResponsePayload{}, apperrors.Wrap(apperrors.CodeMalformedResponse, fmt.Sprintf("decode summarize response (status=%d)", res.StatusCode), err)
	}
	return decoded, nil
}

// decodeResponse reads only the exact keys "summary" and "error". A null
// body has no fields to read and fails; any other well-formed non-object
// body carries neither field and yields the zero payload.
func decodeResponse(raw []byte) (ResponsePayload, error) {
	if !json.Valid(raw) {
		return ResponsePayload{}, errors.New("response body is not valid JSON")
	}
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return ResponsePayload{}, errors.New("response body is null")
	}
	if trimmed[0] != '{' {
		return ResponsePayload{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return ResponsePayload{}, err
	}
	var (
		resp ResponsePayload
		err  error
	)
	if resp.Summary, err = stringField(fields, "summary"); err != nil {
		return ResponsePayload{}, err
	}
	if resp.Error, err = stringField(fields, "error"); err != nil {
		return ResponsePayload{}, err
	}
	return resp, nil
}

func stringField(fields map[string]json.RawMessage, key string) (string, error) {
	value, ok := fields[key]
	if !ok || bytes.Equal(value, []byte("null")) {
		return "", nil
	}
	var text string
	if err := json.Unmarshal(value, &text); err != nil {
		return "", fmt.Errorf("field %q: %w", key, err)
	}
	return text, nil
}
