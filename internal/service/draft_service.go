package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/mcqdesk/config"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

// DraftService persists assessment-builder state between sessions.
type DraftService interface {
	SaveDraft(ctx context.Context, owner, key string, payload json.RawMessage) (*dto.DraftDTO, error)
	LoadDraft(ctx context.Context, owner, key string) (*dto.DraftDTO, error)
	DeleteDraft(ctx context.Context, owner, key string) error
}

type draftService struct {
	store repository.DraftStore
	ttl   time.Duration
	now   func() time.Time
}

func NewDraftService(store repository.DraftStore, cfg *config.Config) DraftService {
	return &draftService{store: store, ttl: cfg.DraftTTL, now: time.Now}
}

// storedDraft is the envelope written to the store.
type storedDraft struct {
	Version   string          `json:"version"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (s *draftService) SaveDraft(ctx context.Context, owner, key string, payload json.RawMessage) (*dto.DraftDTO, error) {
	storeKey, err := draftKey(owner, key)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return nil, newValidationError("Draft payload must be valid JSON")
	}

	d := storedDraft{Version: uuid.NewString(), Payload: payload, UpdatedAt: s.now().UTC()}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}
	if err := s.store.Save(ctx, storeKey, b, s.ttl); err != nil {
		log.Error().Err(err).Str("owner", owner).Str("key", key).Msg("Failed to save draft")
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return toDraftDTO(owner, key, d), nil
}

func (s *draftService) LoadDraft(ctx context.Context, owner, key string) (*dto.DraftDTO, error) {
	storeKey, err := draftKey(owner, key)
	if err != nil {
		return nil, err
	}
	b, err := s.store.Load(ctx, storeKey)
	if errors.Is(err, repository.ErrDraftNotFound) {
		return nil, fmt.Errorf("draft %s/%s: %w", owner, key, ErrNotFound)
	}
	if err != nil {
		log.Error().Err(err).Str("owner", owner).Str("key", key).Msg("Failed to load draft")
		return nil, fmt.Errorf("load draft: %w", err)
	}

	var d storedDraft
	if err := json.Unmarshal(b, &d); err != nil {
		// A corrupt draft cannot be restored; drop it so the builder starts clean.
		log.Warn().Err(err).Str("owner", owner).Str("key", key).Msg("Discarding unreadable draft")
		_ = s.store.Delete(ctx, storeKey)
		return nil, fmt.Errorf("draft %s/%s: %w", owner, key, ErrNotFound)
	}
	return toDraftDTO(owner, key, d), nil
}

func (s *draftService) DeleteDraft(ctx context.Context, owner, key string) error {
	storeKey, err := draftKey(owner, key)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, storeKey); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

func draftKey(owner, key string) (string, error) {
	owner, key = strings.TrimSpace(owner), strings.TrimSpace(key)
	var details []string
	if owner == "" || strings.Contains(owner, ":") {
		details = append(details, "owner must be non-empty and must not contain ':'")
	}
	if key == "" || strings.Contains(key, ":") {
		details = append(details, "key must be non-empty and must not contain ':'")
	}
	if len(details) > 0 {
		return "", newValidationError("Invalid draft key", details...)
	}
	return owner + ":" + key, nil
}

func toDraftDTO(owner, key string, d storedDraft) *dto.DraftDTO {
	return &dto.DraftDTO{
		Owner:     owner,
		Key:       key,
		Version:   d.Version,
		Payload:   d.Payload,
		UpdatedAt: d.UpdatedAt,
	}
}
