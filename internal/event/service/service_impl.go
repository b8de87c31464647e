// Package service implements usage event ingestion and aggregation.
package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/mannyyy07/quickqr/internal/clock"
	eventdomain "github.com/mannyyy07/quickqr/internal/event/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
}

func NewService(p ServiceParam) eventdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("event.service"),
		genID: p.GenID,
		clock: p.Clock,
	}
}

// Record validates and writes one usage event. With no store configured it
// succeeds without writing, so analytics degrade silently.
func (s *Service) Record(ctx context.Context, req eventdomain.RecordRequest) (*eventdomain.UsageEvent, error) {
	kind := strings.TrimSpace(req.Kind)
	if !eventdomain.ValidKind(kind) {
		return nil, eventdomain.ErrInvalidKind
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		return nil, eventdomain.ErrMissingSession
	}

	if s.db == nil {
		s.log.Debug("no analytics store configured; dropping event", zap.String("kind", kind))
		return nil, nil
	}

	record := &eventdomain.UsageEvent{
		ID:        s.genID.Generate(),
		CreatedAt: s.clock.Now().UTC(),
		Kind:      kind,
		SessionID: sessionID,
		Payload:   datatypes.JSONMap{},
		IPHash:    eventdomain.HashAddress(req.ClientIP),
		UserAgent: optionalText(req.UserAgent),
		Referrer:  optionalText(req.Referrer),
	}
	for key, value := range req.Payload {
		if strings.TrimSpace(key) == "" {
			continue
		}
		record.Payload[key] = value
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		s.log.Error("insert usage event", zap.String("kind", kind), zap.Error(err))
		return nil, err
	}
	return record, nil
}

func optionalText(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
