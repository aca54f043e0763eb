package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"boe_gateway/internal/contract"
	"boe_gateway/internal/domain"
)

type LegislationService struct {
	upstream Upstream
	logger   *slog.Logger
}

func NewLegislationService(upstream Upstream, logger *slog.Logger) *LegislationService {
	return &LegislationService{
		upstream: upstream,
		logger:   logger.With("component", "legislation"),
	}
}

// Search runs a consolidated legislation search and reports how long the
// upstream call took. The upstream gives no total count, so TotalResults is
// the size of the returned page.
func (s *LegislationService) Search(ctx context.Context, req contract.SearchLegislationRequest) (*contract.SearchLegislationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("processing legislation search", "query", req.Query)

	start := time.Now()
	results, err := s.upstream.SearchLegislation(ctx, req.Query, req.Limit, req.Offset)
	elapsed := time.Since(start)
	if err != nil {
		s.logger.Error("legislation search failed", "query", req.Query, "error", err)
		return nil, fmt.Errorf("search legislation: %w", err)
	}

	execMs := float64(elapsed) / float64(time.Millisecond)
	s.logger.Info("legislation search completed",
		"query", req.Query,
		"count", len(results),
		"execution_time_ms", execMs,
	)

	return &contract.SearchLegislationResponse{
		Results:         results,
		TotalResults:    len(results),
		Query:           req.Query,
		ExecutionTimeMs: execMs,
	}, nil
}

// GetLaw fetches a consolidated law. A law the upstream does not return is
// reported as a nil Law, not as an error.
func (s *LegislationService) GetLaw(ctx context.Context, req contract.GetLawRequest) (*contract.GetLawResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("processing get law", "law_id", req.LawID)

	law, err := s.upstream.GetLaw(ctx, req.LawID, domain.LawOptions{
		IncludeMetadata: req.IncludeMetadata,
		IncludeAnalysis: req.IncludeAnalysis,
		IncludeFullText: req.IncludeFullText,
	})
	if err != nil {
		s.logger.Error("get law failed", "law_id", req.LawID, "error", err)
		return nil, fmt.Errorf("get law %s: %w", req.LawID, err)
	}

	if law == nil {
		s.logger.Warn("law not found", "law_id", req.LawID)
		return &contract.GetLawResponse{}, nil
	}

	resp := &contract.GetLawResponse{Law: law}
	now := time.Now().UTC()
	if req.IncludeMetadata {
		resp.Metadata = lawMetadata(law, now)
	}
	if req.IncludeAnalysis {
		resp.Analysis = lawAnalysis(law, now)
	}
	return resp, nil
}

func (s *LegislationService) GetStructure(ctx context.Context, req contract.GetLawStructureRequest) (*contract.GetLawStructureResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("processing get law structure", "law_id", req.LawID)

	structure, err := s.upstream.GetLawStructure(ctx, req.LawID)
	if err != nil {
		s.logger.Error("get law structure failed", "law_id", req.LawID, "error", err)
		return nil, fmt.Errorf("get law structure %s: %w", req.LawID, err)
	}

	if structure == nil {
		s.logger.Warn("law structure not found", "law_id", req.LawID)
	}

	return &contract.GetLawStructureResponse{
		Structure: structure,
		LawID:     req.LawID,
	}, nil
}

func lawMetadata(law *domain.Legislation, now time.Time) map[string]any {
	return map[string]any{
		"id":           law.ID,
		"title":        law.Title,
		"date":         law.Date,
		"norm_type":    law.NormType,
		"number":       law.Number,
		"department":   law.Department,
		"range":        law.Range,
		"is_active":    law.IsActive,
		"url":          law.URL,
		"extracted_at": now,
	}
}

func lawAnalysis(law *domain.Legislation, now time.Time) map[string]any {
	return map[string]any{
		"text_length":          utf8.RuneCountInString(law.Text),
		"word_count":           len(strings.Fields(law.Text)),
		"has_structure":        law.Structure != nil,
		"structure_complexity": law.Structure.Complexity(),
		"analysis_date":        now,
	}
}
