package boe

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"boe_gateway/internal/domain"
	"boe_gateway/internal/transport"
)

const (
	SourceID     = "boe"
	DefaultBase  = "https://www.boe.es/datosabiertos/api"
	maxSearch    = 100
	maxSummary   = 1000
	maxTable     = 1000
	maxDaysBack  = 30
	minDaysBack  = 1
	minPageLimit = 1
)

// Getter performs a GET through the transport policy.
type Getter interface {
	Get(ctx context.Context, url string) (*transport.Response, error)
}

// Config holds BOE client configuration.
type Config struct {
	BaseURL string
}

// Client talks to the BOE open-data API. Non-success statuses become empty
// or absent results; transport failures are returned as errors.
type Client struct {
	http    Getter
	baseURL string
	logger  *slog.Logger
}

// New creates a new BOE client.
func New(cfg Config, http Getter, logger *slog.Logger) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBase
	}
	return &Client{
		http:    http,
		baseURL: strings.TrimRight(base, "/"),
		logger:  logger.With("source", SourceID),
	}
}

// SearchLegislation searches consolidated legislation.
func (c *Client) SearchLegislation(ctx context.Context, query string, limit, offset int) ([]domain.Legislation, error) {
	limit = clamp(limit, minPageLimit, maxSearch)
	offset = max(offset, 0)

	c.logger.Info("searching consolidated legislation",
		"query", query,
		"limit", limit,
		"offset", offset,
	)

	u := c.endpoint("/legislacion/consolidada",
		text("q", query),
		number("limit", limit),
		number("offset", offset),
	)
	return fetchList(ctx, c, opSearchLegislation, u, toLegislation)
}

// GetLaw fetches one consolidated law. It returns nil when the upstream
// does not answer with a success status.
func (c *Client) GetLaw(ctx context.Context, lawID string, opts domain.LawOptions) (*domain.Legislation, error) {
	c.logger.Info("getting consolidated law", "law_id", lawID)

	u := c.endpoint("/legislacion/consolidada/"+url.PathEscape(lawID),
		boolean("metadata", opts.IncludeMetadata),
		boolean("analysis", opts.IncludeAnalysis),
		boolean("fulltext", opts.IncludeFullText),
	)
	return fetchOne(ctx, c, opGetLaw, u, toLegislation)
}

// GetLawStructure fetches the outline of a consolidated law.
func (c *Client) GetLawStructure(ctx context.Context, lawID string) (*domain.Structure, error) {
	c.logger.Info("getting law structure", "law_id", lawID)

	u := c.endpoint("/legislacion/consolidada/" + url.PathEscape(lawID) + "/estructura")
	return fetchOne(ctx, c, opGetLawStructure, u, func(d structureDoc) domain.Structure {
		return *toStructure(&d)
	})
}

// GetBOESummary fetches the BOE summary for a YYYYMMDD date.
func (c *Client) GetBOESummary(ctx context.Context, date string, maxItems int) ([]domain.SummaryItem, error) {
	return c.summary(ctx, opBOESummary, "boe", date, maxItems)
}

// GetBORMESummary fetches the company-registry gazette summary for a YYYYMMDD date.
func (c *Client) GetBORMESummary(ctx context.Context, date string, maxItems int) ([]domain.SummaryItem, error) {
	return c.summary(ctx, opBORMESummary, "borme", date, maxItems)
}

func (c *Client) summary(ctx context.Context, op operation, gazette, date string, maxItems int) ([]domain.SummaryItem, error) {
	maxItems = clamp(maxItems, minPageLimit, maxSummary)

	c.logger.Info("getting summary",
		"gazette", gazette,
		"date", date,
		"max_items", maxItems,
	)

	u := c.endpoint("/sumario/"+gazette+"/"+url.PathEscape(date), number("limit", maxItems))
	return fetchList(ctx, c, op, u, toSummaryItem)
}

// SearchRecent searches items published in the last daysBack days that
// match any of the terms.
func (c *Client) SearchRecent(ctx context.Context, daysBack int, terms []string) ([]domain.SummaryItem, error) {
	daysBack = clamp(daysBack, minDaysBack, maxDaysBack)

	c.logger.Info("searching recent items",
		"days_back", daysBack,
		"terms", strings.Join(terms, ", "),
	)

	escaped := make([]string, len(terms))
	for i, t := range terms {
		escaped[i] = escape(t)
	}

	u := c.endpoint("/buscar/reciente",
		number("dias", daysBack),
		param{key: "terminos", value: strings.Join(escaped, ",")},
	)
	return fetchList(ctx, c, opSearchRecent, u, toSummaryItem)
}

// GetDepartments fetches the departments table, optionally filtered.
func (c *Client) GetDepartments(ctx context.Context, searchTerm string, limit int) ([]domain.AuxiliaryItem, error) {
	limit = clamp(limit, minPageLimit, maxTable)

	c.logger.Info("getting departments table", "search_term", searchTerm, "limit", limit)

	u := c.endpoint("/tablas/departamentos", text("q", searchTerm), number("limit", limit))
	return fetchList(ctx, c, opDepartments, u, toAuxiliaryItem)
}

// GetLegalRanges fetches the legal ranges table.
func (c *Client) GetLegalRanges(ctx context.Context, limit int) ([]domain.AuxiliaryItem, error) {
	limit = clamp(limit, minPageLimit, maxTable)

	c.logger.Info("getting legal ranges table", "limit", limit)

	u := c.endpoint("/tablas/rangos", number("limit", limit))
	return fetchList(ctx, c, opLegalRanges, u, toAuxiliaryItem)
}

// GetCode fetches the description of a single code.
func (c *Client) GetCode(ctx context.Context, code string) (*domain.AuxiliaryItem, error) {
	c.logger.Info("getting code description", "code", code)

	u := c.endpoint("/codigo/" + url.PathEscape(code))
	return fetchOne(ctx, c, opGetCode, u, toAuxiliaryItem)
}

// SearchAuxiliary runs a full-text search over the auxiliary tables.
func (c *Client) SearchAuxiliary(ctx context.Context, query string) ([]domain.AuxiliaryItem, error) {
	c.logger.Info("searching auxiliary data", "query", query)

	u := c.endpoint("/tablas/buscar", text("q", query))
	return fetchList(ctx, c, opSearchAuxiliary, u, toAuxiliaryItem)
}

func fetchList[W, R any](ctx context.Context, c *Client, op operation, u string, convert func(W) R) ([]R, error) {
	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !resp.OK() {
		c.logger.Warn("upstream returned non-success status",
			"operation", op,
			"status", resp.StatusCode,
		)
		return []R{}, nil
	}

	docs, err := decodeList[W](op, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]R, 0, len(docs))
	for _, d := range docs {
		out = append(out, convert(d))
	}
	return out, nil
}

func fetchOne[W, R any](ctx context.Context, c *Client, op operation, u string, convert func(W) R) (*R, error) {
	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !resp.OK() {
		c.logger.Warn("upstream returned non-success status",
			"operation", op,
			"status", resp.StatusCode,
		)
		return nil, nil
	}

	doc, err := decodeOne[W](op, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := convert(*doc)
	return &out, nil
}

type param struct {
	key   string
	value string
}

func text(key, v string) param {
	return param{key: key, value: escape(v)}
}

func number(key string, v int) param {
	return param{key: key, value: strconv.Itoa(v)}
}

func boolean(key string, v bool) param {
	return param{key: key, value: strconv.FormatBool(v)}
}

// escape percent-encodes a query value, spaces included.
func escape(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

func (c *Client) endpoint(path string, params ...param) string {
	var sb strings.Builder
	sb.WriteString(c.baseURL)
	sb.WriteString(path)
	for i, p := range params {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(p.key)
		sb.WriteByte('=')
		sb.WriteString(p.value)
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
