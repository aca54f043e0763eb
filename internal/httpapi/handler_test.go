package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"boe_gateway/internal/domain"
	"boe_gateway/internal/service"
	"boe_gateway/internal/service/mocks"
	"boe_gateway/internal/transport"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	upstream *mocks.MockUpstream
	router   http.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.upstream = mocks.NewMockUpstream(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(
		service.NewLegislationService(s.upstream, logger),
		service.NewSummaryService(s.upstream, logger),
		service.NewAuxiliaryService(s.upstream, logger),
		Options{Version: "1.2.3"},
		logger,
	)
	s.router = h.Router()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (s *HandlerTestSuite) do(method, target, body string) (int, envelope) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	s.Equal("application/json", rec.Header().Get("Content-Type"))

	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func (s *HandlerTestSuite) TestHealth() {
	code, env := s.do(http.MethodGet, "/api/health", "")

	s.Equal(http.StatusOK, code)
	s.True(env.Success)
	s.Contains(string(env.Data), `"status":"healthy"`)
	s.Contains(string(env.Data), `"version":"1.2.3"`)
}

func (s *HandlerTestSuite) TestInfo() {
	code, env := s.do(http.MethodGet, "/api/info", "")

	s.Equal(http.StatusOK, code)
	s.Contains(string(env.Data), "/api/legislation/search")
}

func (s *HandlerTestSuite) TestSearchLegislation() {
	s.upstream.EXPECT().SearchLegislation(gomock.Any(), "ley de IA", 10, 0).
		Return([]domain.Legislation{{ID: "BOE-A-1", Title: "Ley IA"}}, nil)

	code, env := s.do(http.MethodPost, "/api/legislation/search", `{"query": "ley de IA"}`)

	s.Equal(http.StatusOK, code)
	s.True(env.Success)

	var data struct {
		Results      []domain.Legislation `json:"results"`
		TotalResults int                  `json:"total_results"`
		Query        string               `json:"query"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(1, data.TotalResults)
	s.Equal("ley de IA", data.Query)
	s.Equal("Ley IA", data.Results[0].Title)
}

func (s *HandlerTestSuite) TestSearchLegislation_Invalid() {
	code, env := s.do(http.MethodPost, "/api/legislation/search", `{"query": "ley", "limit": 500}`)

	s.Equal(http.StatusBadRequest, code)
	s.False(env.Success)
	s.Contains(env.Error, "limit")
}

func (s *HandlerTestSuite) TestSearchLegislation_MalformedBody() {
	code, env := s.do(http.MethodPost, "/api/legislation/search", `{"query":`)

	s.Equal(http.StatusBadRequest, code)
	s.Contains(env.Error, "invalid request body")
}

func (s *HandlerTestSuite) TestSearchLegislation_TransportFailure() {
	s.upstream.EXPECT().SearchLegislation(gomock.Any(), "ley", 10, 0).
		Return(nil, fmt.Errorf("search_legislation: %w after 4 attempts: unexpected status: 503", transport.ErrTransport))

	code, env := s.do(http.MethodPost, "/api/legislation/search", `{"query": "ley"}`)

	s.Equal(http.StatusBadGateway, code)
	s.Equal("upstream service unavailable", env.Error)
}

func (s *HandlerTestSuite) TestSearchLegislation_Cancelled() {
	s.upstream.EXPECT().SearchLegislation(gomock.Any(), "ley", 10, 0).
		Return(nil, fmt.Errorf("upstream request cancelled: %w", context.DeadlineExceeded))

	code, _ := s.do(http.MethodPost, "/api/legislation/search", `{"query": "ley"}`)

	s.Equal(http.StatusGatewayTimeout, code)
}

func (s *HandlerTestSuite) TestSearchLegislation_DecodeFailure() {
	s.upstream.EXPECT().SearchLegislation(gomock.Any(), "ley", 10, 0).
		Return(nil, errors.New("search_legislation: decode response: unexpected EOF"))

	code, env := s.do(http.MethodPost, "/api/legislation/search", `{"query": "ley"}`)

	s.Equal(http.StatusInternalServerError, code)
	s.Equal("internal server error", env.Error)
}

func (s *HandlerTestSuite) TestGetLaw_QueryFlags() {
	s.upstream.EXPECT().
		GetLaw(gomock.Any(), "BOE-A-2015-10565", domain.LawOptions{IncludeMetadata: false, IncludeAnalysis: true}).
		Return(&domain.Legislation{ID: "BOE-A-2015-10565", Text: "uno dos"}, nil)

	code, env := s.do(http.MethodGet, "/api/legislation/BOE-A-2015-10565?includeMetadata=false&includeAnalysis=true", "")

	s.Equal(http.StatusOK, code)

	var data struct {
		Metadata map[string]any `json:"metadata"`
		Analysis map[string]any `json:"analysis"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Nil(data.Metadata)
	s.EqualValues(2, data.Analysis["word_count"])
}

func (s *HandlerTestSuite) TestGetLaw_DefaultsToMetadata() {
	s.upstream.EXPECT().
		GetLaw(gomock.Any(), "BOE-A-1", domain.LawOptions{IncludeMetadata: true}).
		Return(&domain.Legislation{ID: "BOE-A-1"}, nil)

	code, env := s.do(http.MethodGet, "/api/legislation/BOE-A-1", "")

	s.Equal(http.StatusOK, code)
	s.Contains(string(env.Data), `"extracted_at"`)
}

func (s *HandlerTestSuite) TestGetLaw_BadFlag() {
	code, env := s.do(http.MethodGet, "/api/legislation/BOE-A-1?includeAnalysis=maybe", "")

	s.Equal(http.StatusBadRequest, code)
	s.Contains(env.Error, "includeAnalysis")
}

func (s *HandlerTestSuite) TestGetLaw_NotFound() {
	s.upstream.EXPECT().GetLaw(gomock.Any(), "BOE-X", gomock.Any()).Return(nil, nil)

	code, env := s.do(http.MethodGet, "/api/legislation/BOE-X", "")

	s.Equal(http.StatusNotFound, code)
	s.Equal("law not found: BOE-X", env.Error)
}

func (s *HandlerTestSuite) TestGetLawStructure() {
	s.upstream.EXPECT().GetLawStructure(gomock.Any(), "BOE-A-1").
		Return(&domain.Structure{Titles: []domain.Heading{{Number: "I"}}}, nil)

	code, env := s.do(http.MethodGet, "/api/legislation/BOE-A-1/structure", "")

	s.Equal(http.StatusOK, code)
	s.Contains(string(env.Data), `"law_id":"BOE-A-1"`)
}

func (s *HandlerTestSuite) TestGetLawStructure_NotFound() {
	s.upstream.EXPECT().GetLawStructure(gomock.Any(), "BOE-X").Return(nil, nil)

	code, _ := s.do(http.MethodGet, "/api/legislation/BOE-X/structure", "")

	s.Equal(http.StatusNotFound, code)
}

func (s *HandlerTestSuite) TestBOESummary() {
	s.upstream.EXPECT().GetBOESummary(gomock.Any(), "20240115", 50).
		Return([]domain.SummaryItem{{ID: "BOE-A-2024-700"}}, nil)

	code, env := s.do(http.MethodPost, "/api/summary/boe", `{"date": "20240115"}`)

	s.Equal(http.StatusOK, code)
	s.Contains(string(env.Data), `"type":"BOE"`)
	s.Contains(string(env.Data), `"total_items":1`)
}

func (s *HandlerTestSuite) TestBORMESummary_EmptyIsOK() {
	s.upstream.EXPECT().GetBORMESummary(gomock.Any(), "20240115", 20).Return([]domain.SummaryItem{}, nil)

	code, env := s.do(http.MethodPost, "/api/summary/borme", `{"date": "20240115", "max_items": 20}`)

	s.Equal(http.StatusOK, code)
	s.Contains(string(env.Data), `"summaries":[]`)
	s.Contains(string(env.Data), `"total_items":0`)
}

func (s *HandlerTestSuite) TestSummary_BadDate() {
	code, env := s.do(http.MethodPost, "/api/summary/boe", `{"date": "2024-1-5"}`)

	s.Equal(http.StatusBadRequest, code)
	s.Contains(env.Error, "YYYYMMDD")
}

func (s *HandlerTestSuite) TestSearchRecent() {
	s.upstream.EXPECT().SearchRecent(gomock.Any(), 7, []string{"IA"}).Return([]domain.SummaryItem{
		{Title: "Ley IA", Section: "I", Issuer: "MinJusticia"},
		{Title: "Otro", Section: "II", Issuer: "MinHacienda"},
	}, nil)

	code, env := s.do(http.MethodPost, "/api/summary/search", `{"search_terms": ["IA"]}`)

	s.Equal(http.StatusOK, code)
	s.Contains(string(env.Data), `"total_matches":1`)
}

func (s *HandlerTestSuite) TestDepartments() {
	s.upstream.EXPECT().GetDepartments(gomock.Any(), "", 1000).Return([]domain.AuxiliaryItem{{Code: "1"}}, nil)

	code, env := s.do(http.MethodGet, "/api/auxiliary/departments", "")

	s.Equal(http.StatusOK, code)
	s.Contains(string(env.Data), `"total_count":1`)
}

func (s *HandlerTestSuite) TestDepartmentsTable() {
	s.upstream.EXPECT().GetDepartments(gomock.Any(), "Hacienda", 100).Return([]domain.AuxiliaryItem{}, nil)

	code, env := s.do(http.MethodPost, "/api/auxiliary/departments/search", `{"search_term": "Hacienda"}`)

	s.Equal(http.StatusOK, code)
	s.Contains(string(env.Data), `"type":"departments"`)
}

func (s *HandlerTestSuite) TestLegalRanges() {
	s.upstream.EXPECT().GetLegalRanges(gomock.Any(), 100).Return([]domain.AuxiliaryItem{{Code: "1300"}}, nil)

	code, env := s.do(http.MethodPost, "/api/auxiliary/legal-ranges", `{"date": "20240115"}`)

	s.Equal(http.StatusOK, code)
	s.Contains(string(env.Data), `"date":"20240115"`)
}

func (s *HandlerTestSuite) TestLegalRangesTable() {
	s.upstream.EXPECT().GetLegalRanges(gomock.Any(), 5).Return([]domain.AuxiliaryItem{}, nil)

	code, env := s.do(http.MethodGet, "/api/auxiliary/legal-ranges/table?date=20240115&limit=5", "")

	s.Equal(http.StatusOK, code)
	s.Contains(string(env.Data), `"type":"legal_ranges"`)
}

func (s *HandlerTestSuite) TestLegalRangesTable_BadLimit() {
	code, _ := s.do(http.MethodGet, "/api/auxiliary/legal-ranges/table?date=20240115&limit=abc", "")

	s.Equal(http.StatusBadRequest, code)
}

func (s *HandlerTestSuite) TestCodeDescriptions_PartialBatch() {
	gomock.InOrder(
		s.upstream.EXPECT().GetCode(gomock.Any(), "A").Return(&domain.AuxiliaryItem{Code: "A", Type: "rango"}, nil),
		s.upstream.EXPECT().GetCode(gomock.Any(), "B").Return(nil, fmt.Errorf("get_code: %w", transport.ErrTransport)),
		s.upstream.EXPECT().GetCode(gomock.Any(), "C").Return(&domain.AuxiliaryItem{Code: "C"}, nil),
	)

	code, env := s.do(http.MethodPost, "/api/auxiliary/codes", `{"codes": ["A", "B", "C"]}`)

	s.Equal(http.StatusOK, code)
	s.Contains(string(env.Data), `"total_codes":3`)
	s.Contains(string(env.Data), `"found_codes":2`)
}

func (s *HandlerTestSuite) TestCodeDescription_Unknown() {
	s.upstream.EXPECT().GetCode(gomock.Any(), "9999").Return(nil, nil)

	code, env := s.do(http.MethodGet, "/api/auxiliary/codes/9999", "")

	s.Equal(http.StatusOK, code)
	s.Contains(string(env.Data), `"description":"Code not found"`)
}

func (s *HandlerTestSuite) TestCodeDescription_DecodesPathParam() {
	cases := map[string]string{
		"/api/auxiliary/codes/a%2Fb":  "a/b",
		"/api/auxiliary/codes/a%20b":  "a b",
		"/api/auxiliary/codes/100%25": "100%",
	}
	for target, want := range cases {
		s.upstream.EXPECT().GetCode(gomock.Any(), want).Return(nil, nil)

		code, env := s.do(http.MethodGet, target, "")

		s.Equal(http.StatusOK, code, target)
		s.Contains(string(env.Data), `"description":"Code not found"`, target)
	}
}

func (s *HandlerTestSuite) TestGetLawStructure_DecodesPathParam() {
	s.upstream.EXPECT().GetLawStructure(gomock.Any(), "BOE/A 1").Return(nil, nil)

	code, env := s.do(http.MethodGet, "/api/legislation/BOE%2FA%201/structure", "")

	s.Equal(http.StatusNotFound, code)
	s.Equal("law structure not found: BOE/A 1", env.Error)
}

func (s *HandlerTestSuite) TestSearchAuxiliary() {
	s.upstream.EXPECT().SearchAuxiliary(gomock.Any(), "justicia").Return([]domain.AuxiliaryItem{{Code: "7723"}}, nil)

	code, env := s.do(http.MethodPost, "/api/auxiliary/search", `{"query": "justicia"}`)

	s.Equal(http.StatusOK, code)
	s.Contains(string(env.Data), `"type":"search_results"`)
}

func (s *HandlerTestSuite) TestUnknownRoute() {
	code, env := s.do(http.MethodGet, "/api/nope", "")

	s.Equal(http.StatusNotFound, code)
	s.False(env.Success)
}

func (s *HandlerTestSuite) TestWrongMethod() {
	code, _ := s.do(http.MethodDelete, "/api/summary/boe", "")

	s.Equal(http.StatusMethodNotAllowed, code)
}

func TestRouter_RequestTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	upstream := mocks.NewMockUpstream(ctrl)
	upstream.EXPECT().GetCode(gomock.Any(), "1300").
		DoAndReturn(func(ctx context.Context, code string) (*domain.AuxiliaryItem, error) {
			<-ctx.Done()
			return nil, fmt.Errorf("upstream request cancelled: %w", ctx.Err())
		})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewHandler(
		service.NewLegislationService(upstream, logger),
		service.NewSummaryService(upstream, logger),
		service.NewAuxiliaryService(upstream, logger),
		Options{RequestTimeout: 20 * time.Millisecond},
		logger,
	).Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auxiliary/codes/1300", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "upstream request cancelled or timed out", env.Error)
}
