// Command quickqr-seed fills the analytics store with synthetic usage events
// so the dashboard has something to show during local development.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/mannyyy07/quickqr/internal/config"
	eventdomain "github.com/mannyyy07/quickqr/internal/event/domain"
	"github.com/mannyyy07/quickqr/internal/migration"
	"github.com/mannyyy07/quickqr/pkg/db"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const eventCount = 500

var demoDomains = []string{
	"example.com",
	"github.com",
	"news.ycombinator.com",
	"go.dev",
	"wikipedia.org",
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	conn, err := db.Open(cfg, log)
	if err != nil {
		return err
	}
	if conn == nil {
		return fmt.Errorf("QUICKQR_DATABASE_URL is required for seeding")
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	if err := migration.RunMigrations(sqlDB); err != nil {
		return err
	}

	node, err := snowflake.NewNode(2)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()
	ctx := context.Background()

	sessions := make([]string, 40)
	for i := range sessions {
		sessions[i] = fmt.Sprintf("seed-session-%02d", i)
	}

	for i := 0; i < eventCount; i++ {
		createdAt := now.Add(-time.Duration(rng.Intn(14*24)) * time.Hour)
		session := sessions[rng.Intn(len(sessions))]
		domain := demoDomains[rng.Intn(len(demoDomains))]

		record := &eventdomain.UsageEvent{
			ID:        node.Generate(),
			CreatedAt: createdAt,
			SessionID: session,
			IPHash:    eventdomain.HashAddress(fmt.Sprintf("10.0.%d.%d", rng.Intn(256), rng.Intn(256))),
			Payload:   datatypes.JSONMap{},
		}

		switch rng.Intn(3) {
		case 0:
			record.Kind = eventdomain.KindPageVisit
			record.Payload = datatypes.JSONMap(eventdomain.VisitPayload{Path: "/"}.ToMap())
		case 1:
			record.Kind = eventdomain.KindQRGenerated
			record.Payload = datatypes.JSONMap(eventdomain.GeneratedPayload{
				DestinationURL: "https://" + domain + "/",
				Size:           256,
				Margin:         4,
			}.ToMap())
		default:
			record.Kind = eventdomain.KindQRDownloaded
			record.Payload = datatypes.JSONMap(eventdomain.DownloadPayload{
				DestinationURL: "https://" + domain + "/",
				Format:         "png",
			}.ToMap())
		}

		if err := conn.WithContext(ctx).Create(record).Error; err != nil {
			return err
		}
	}

	log.Info("seeded usage events", zap.Int("count", eventCount))
	return nil
}
