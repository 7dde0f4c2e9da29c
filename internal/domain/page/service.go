package page

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/summarize-console/pkg/errors"
)

// Service exposes element access for the control plane.
type Service interface {
	Get(ctx context.Context, id string) (Element, error)
	Set(ctx context.Context, id, text string) (Element, error)
	Ensure(ctx context.Context) error
}

type service struct {
	cfg      Config
	store    ElementStore
	declared map[string]struct{}
	logger   *slog.Logger
}

// NewService is a wire provider for the page domain.
func NewService(cfg Config, store ElementStore, logger *slog.Logger) Service {
	declared := make(map[string]struct{}, 2)
	for _, id := range cfg.IDs() {
		declared[id] = struct{}{}
	}
	return &service{cfg: cfg, store: store, declared: declared, logger: logger.With("component", "page.service")}
}

func (s *service) Get(ctx context.Context, id string) (Element, error) {
	id, err := s.resolve(id)
	if err != nil {
		return Element{}, err
	}
	el, ok, err := s.store.Text(ctx, id)
	if err != nil {
		return Element{}, apperrors.Wrap(apperrors.CodeStorage, "load element", err)
	}
	if !ok {
		return Element{}, apperrors.Wrap(apperrors.CodeNotFound, "element "+id+" not found", nil)
	}
	return el, nil
}

func (s *service) Set(ctx context.Context, id, text string) (Element, error) {
	id, err := s.resolve(id)
	if err != nil {
		return Element{}, err
	}
	el, err := s.store.SetText(ctx, id, text)
	if err != nil {
		return Element{}, apperrors.Wrap(apperrors.CodeStorage, "store element", err)
	}
	return el, nil
}

// Ensure creates declared elements that do not exist yet, with empty text.
func (s *service) Ensure(ctx context.Context) error {
	for _, id := range s.cfg.IDs() {
		_, ok, err := s.store.Text(ctx, id)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeStorage, "load element", err)
		}
		if ok {
			continue
		}
		if _, err := s.store.SetText(ctx, id, ""); err != nil {
			return apperrors.Wrap(apperrors.CodeStorage, "create element", err)
		}
		s.logger.Info("element created", "id", id)
	}
	return nil
}

func (s *service) resolve(id string) (string, error) {
	id = strings.TrimSpace(id)
	if _, ok := s.declared[id]; !ok {
		return "", apperrors.Wrap(apperrors.CodeInvalidInput, "unknown element "+id, nil)
	}
	return id, nil
}
