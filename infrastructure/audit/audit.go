package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/uptrace/bun"

	"fisiovida/infrastructure/sqlite"
	"fisiovida/models"
)

// Service records who changed which directory entity. Mutations against the
// external backend are audited locally; a failed audit write is logged but
// never fails the user action.
type Service struct {
	db *sqlite.DB
}

func NewService(db *sqlite.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Record(ctx context.Context, actorEmail, action, entityType, entityID string, before, after any) {
	beforeJSON, err := marshal(before)
	if err != nil {
		slog.Error("audit: encode before state", slog.Any("err", err))
		return
	}
	afterJSON, err := marshal(after)
	if err != nil {
		slog.Error("audit: encode after state", slog.Any("err", err))
		return
	}

	row := &models.AuditLog{
		ActorEmail: actorEmail,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		BeforeJSON: beforeJSON,
		AfterJSON:  afterJSON,
	}
	err = s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(row).Exec(ctx)
		return err
	})
	if err != nil {
		slog.Error("audit: write log row", slog.String("action", action), slog.Any("err", err))
	}
}

func marshal(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
