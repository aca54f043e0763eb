package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"boe_gateway/internal/contract"
	"boe_gateway/internal/domain"
)

type SummaryService struct {
	upstream Upstream
	logger   *slog.Logger
}

func NewSummaryService(upstream Upstream, logger *slog.Logger) *SummaryService {
	return &SummaryService{
		upstream: upstream,
		logger:   logger.With("component", "summary"),
	}
}

func (s *SummaryService) GetBOESummary(ctx context.Context, req contract.SummaryRequest) (*contract.SummaryResponse, error) {
	return s.summary(ctx, domain.GazetteBOE, s.upstream.GetBOESummary, req)
}

func (s *SummaryService) GetBORMESummary(ctx context.Context, req contract.SummaryRequest) (*contract.SummaryResponse, error) {
	return s.summary(ctx, domain.GazetteBORME, s.upstream.GetBORMESummary, req)
}

type summaryFetch func(ctx context.Context, date string, maxItems int) ([]domain.SummaryItem, error)

func (s *SummaryService) summary(ctx context.Context, gazette string, fetch summaryFetch, req contract.SummaryRequest) (*contract.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("processing summary", "gazette", gazette, "date", req.Date)

	items, err := fetch(ctx, req.Date, req.MaxItems)
	if err != nil {
		s.logger.Error("summary failed", "gazette", gazette, "date", req.Date, "error", err)
		return nil, fmt.Errorf("get %s summary %s: %w", gazette, req.Date, err)
	}

	s.logger.Info("summary retrieved", "gazette", gazette, "date", req.Date, "count", len(items))

	return &contract.SummaryResponse{
		Summaries:  items,
		Date:       req.Date,
		Type:       gazette,
		TotalItems: len(items),
	}, nil
}

// SearchRecent asks the upstream for recent items and filters them again
// locally, since the upstream term filter is not always applied.
func (s *SummaryService) SearchRecent(ctx context.Context, req contract.SearchRecentRequest) (*contract.SearchRecentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("processing recent search",
		"days_back", req.DaysBack,
		"terms", strings.Join(req.SearchTerms, ", "),
	)

	items, err := s.upstream.SearchRecent(ctx, req.DaysBack, req.SearchTerms)
	if err != nil {
		s.logger.Error("recent search failed", "days_back", req.DaysBack, "error", err)
		return nil, fmt.Errorf("search recent: %w", err)
	}

	filtered := s.filterByTerms(items, req.SearchTerms, matchesAnyTerm)

	s.logger.Info("recent search completed",
		"count", len(filtered),
		"unfiltered", len(items),
	)

	return &contract.SearchRecentResponse{
		Results:      filtered,
		SearchTerms:  req.SearchTerms,
		DaysSearched: req.DaysBack,
		TotalMatches: len(filtered),
	}, nil
}

// filterByTerms keeps the items accepted by match. If match panics the
// unfiltered items are returned.
func (s *SummaryService) filterByTerms(items []domain.SummaryItem, terms []string, match func(domain.SummaryItem, []string) bool) (out []domain.SummaryItem) {
	if len(terms) == 0 {
		return items
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("filtering by search terms failed, returning unfiltered results", "panic", r)
			out = items
		}
	}()

	out = make([]domain.SummaryItem, 0, len(items))
	for _, item := range items {
		if match(item, terms) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAnyTerm(item domain.SummaryItem, terms []string) bool {
	text := strings.ToLower(item.Title + " " + item.Section + " " + item.Issuer)
	for _, t := range terms {
		if strings.Contains(text, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
