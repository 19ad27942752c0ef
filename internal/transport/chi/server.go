package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/propdex/internal/domain"
	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
	"github.com/kailas-cloud/propdex/internal/domain/stats"
	logpkg "github.com/kailas-cloud/propdex/internal/logger"
	"github.com/kailas-cloud/propdex/internal/version"
	cataloguc "github.com/kailas-cloud/propdex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/propdex/internal/usecase/health"
)

// maxBodyBytes caps request bodies; compare requests carry a handful of ids.
const maxBodyBytes = 64 << 10

// CatalogService is the query layer consumed by the handlers.
type CatalogService interface {
	List(ctx context.Context, q domfirm.Query) ([]domfirm.Firm, error)
	Get(ctx context.Context, id string) (domfirm.Firm, error)
	Compare(ctx context.Context, ids []string) (cataloguc.Comparison, error)
	Suggest(ctx context.Context, query string) (cataloguc.Suggestions, error)
	Statistics(ctx context.Context) (stats.Statistics, error)
}

// HealthService reports component health.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server implements ServerInterface on top of the catalog query layer.
type Server struct {
	catalog       CatalogService
	health        HealthService
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(catalog CatalogService, health HealthService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		catalog: catalog,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, CodeInvalidQuery, detailMessage),
		sentinelHandler(domain.ErrFirmNotFound, http.StatusNotFound, CodeFirmNotFound, sentinelMessage(domain.ErrFirmNotFound)),
	}
	return s
}

// Root handles GET /api/.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Message: "Prop Firm Comparison API",
		Version: version.Version,
	})
}

// ListFirms handles GET /api/firms.
func (s *Server) ListFirms(w http.ResponseWriter, r *http.Request, params ListFirmsParams) {
	firms, err := s.catalog.List(r.Context(), params.toQuery())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, firmsToResponse(firms))
}

// GetFirm handles GET /api/firms/{id}.
func (s *Server) GetFirm(w http.ResponseWriter, r *http.Request, id string) {
	f, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, firmToResponse(&f))
}

// CompareFirms handles POST /api/firms/compare.
func (s *Server) CompareFirms(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cmp, err := s.catalog.Compare(r.Context(), req.FirmIDs)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, comparisonToResponse(cmp))
}

// SearchSuggestions handles GET /api/firms/search/suggestions.
func (s *Server) SearchSuggestions(w http.ResponseWriter, r *http.Request, params SearchSuggestionsParams) {
	res, err := s.catalog.Suggest(r.Context(), params.Q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SuggestionsResponse{
		Query:       res.Query,
		Suggestions: nonNil(res.Names),
	})
}

// GetStatistics handles GET /api/statistics.
func (s *Server) GetStatistics(w http.ResponseWriter, r *http.Request) {
	st, err := s.catalog.Statistics(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statisticsToResponse(st))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, detail string) {
	writeJSON(w, status, ErrorResponse{
		Code:   code,
		Detail: detail,
	})
}

// detailMessage exposes the full error chain.
func detailMessage(err error) string {
	return err.Error()
}

// sentinelMessage hides wrapping context such as store keys.
func sentinelMessage(sentinel error) func(error) string {
	return func(error) string { return sentinel.Error() }
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode, detail func(error) string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, detail(err))
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContextOr(r.Context(), s.logger)
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Debug("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
