package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"boe_gateway/internal/contract"
	"boe_gateway/internal/domain"
)

const dateLayout = "20060102"

type Config struct {
	Gazette  string
	MaxItems int
	Location *time.Location
}

// Service publishes the items of today's gazette summary that were not
// published by an earlier run.
type Service struct {
	summaries SummaryFetcher
	publisher Publisher
	seen      SeenCache
	cfg       Config
	logger    *slog.Logger

	now   func() time.Time
	newID func() string
}

func NewService(
	summaries SummaryFetcher,
	publisher Publisher,
	seen SeenCache,
	cfg Config,
	logger *slog.Logger,
) *Service {
	if cfg.Gazette == "" {
		cfg.Gazette = domain.GazetteBOE
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		summaries: summaries,
		publisher: publisher,
		seen:      seen,
		cfg:       cfg,
		logger:    logger.With("component", "digest", "gazette", cfg.Gazette),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Run fetches today's summary and publishes unseen items. An item is marked
// seen only once it is published, so failed items are retried next run.
// Publish failures do not stop the run; they are returned together.
func (s *Service) Run(ctx context.Context) (*domain.DigestStats, error) {
	start := s.now()
	date := start.In(s.cfg.Location).Format(dateLayout)

	s.logger.Info("starting digest", "date", date, "max_items", s.cfg.MaxItems)

	resp, err := s.fetch(ctx, contract.SummaryRequest{Date: date, MaxItems: s.cfg.MaxItems})
	if err != nil {
		return nil, fmt.Errorf("fetch summary: %w", err)
	}

	stats := &domain.DigestStats{
		Gazette: s.cfg.Gazette,
		Date:    date,
		Fetched: len(resp.Summaries),
	}

	var result *multierror.Error
	for _, item := range resp.Summaries {
		if err := ctx.Err(); err != nil {
			result = multierror.Append(result, err)
			break
		}

		if item.ID == "" {
			s.logger.Warn("skipping item without id", "title", item.Title)
			stats.Skipped++
			continue
		}

		if s.seen.Seen(s.cfg.Gazette, item.ID) {
			stats.Skipped++
			continue
		}

		msg := &domain.GazetteMessage{
			ID:        s.newID(),
			Gazette:   s.cfg.Gazette,
			Date:      date,
			Item:      item,
			Timestamp: s.now().UTC(),
		}
		if err := s.publisher.Publish(ctx, msg); err != nil {
			s.logger.Error("failed to publish item", "item_id", item.ID, "error", err)
			stats.Errors++
			result = multierror.Append(result, fmt.Errorf("publish %s: %w", item.ID, err))
			continue
		}

		s.seen.Mark(s.cfg.Gazette, item.ID)
		stats.Published++
	}

	stats.Tracked = s.seen.Tracked(s.cfg.Gazette)
	stats.Duration = s.now().Sub(start)

	s.logger.Info("digest completed",
		"date", date,
		"fetched", stats.Fetched,
		"skipped", stats.Skipped,
		"published", stats.Published,
		"errors", stats.Errors,
		"tracked", stats.Tracked,
		"duration", stats.Duration,
	)

	return stats, result.ErrorOrNil()
}

func (s *Service) fetch(ctx context.Context, req contract.SummaryRequest) (*contract.SummaryResponse, error) {
	if s.cfg.Gazette == domain.GazetteBORME {
		return s.summaries.GetBORMESummary(ctx, req)
	}
	return s.summaries.GetBOESummary(ctx, req)
}
