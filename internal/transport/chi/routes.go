package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists every HTTP operation of the catalog API.
type ServerInterface interface {
	// GET /api/
	Root(w http.ResponseWriter, r *http.Request)
	// GET /api/firms
	ListFirms(w http.ResponseWriter, r *http.Request, params ListFirmsParams)
	// GET /api/firms/{id}
	GetFirm(w http.ResponseWriter, r *http.Request, id string)
	// POST /api/firms/compare
	CompareFirms(w http.ResponseWriter, r *http.Request)
	// GET /api/firms/search/suggestions
	SearchSuggestions(w http.ResponseWriter, r *http.Request, params SearchSuggestionsParams)
	// GET /api/statistics
	GetStatistics(w http.ResponseWriter, r *http.Request)
	// GET /health
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// GET /metrics
	Metrics(w http.ResponseWriter, r *http.Request)
}

// ListFirmsParams holds the optional filters of GET /api/firms.
type ListFirmsParams struct {
	MinAccountSize  *int     `form:"min_account_size,omitempty" json:"min_account_size,omitempty"`
	MaxAccountSize  *int     `form:"max_account_size,omitempty" json:"max_account_size,omitempty"`
	Platform        *string  `form:"platform,omitempty" json:"platform,omitempty"`
	MinProfitSplit  *int     `form:"min_profit_split,omitempty" json:"min_profit_split,omitempty"`
	PayoutFrequency *string  `form:"payout_frequency,omitempty" json:"payout_frequency,omitempty"`
	NewsTrading     *bool    `form:"news_trading,omitempty" json:"news_trading,omitempty"`
	ExpertAdvisors  *bool    `form:"expert_advisors,omitempty" json:"expert_advisors,omitempty"`
	MinRating       *float64 `form:"min_rating,omitempty" json:"min_rating,omitempty"`
	Limit           *int     `form:"limit,omitempty" json:"limit,omitempty"`
}

// SearchSuggestionsParams holds the query of GET /api/firms/search/suggestions.
type SearchSuggestionsParams struct {
	Q string `form:"q" json:"q"`
}

// InvalidParamFormatError reports a parameter that failed to bind.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

// RequiredParamError reports a missing required query parameter.
type RequiredParamError struct {
	ParamName string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("query argument %s is required, but not found", e.ParamName)
}

// HandlerOptions configures Handler.
type HandlerOptions struct {
	BaseRouter       chi.Router
	Middlewares      []func(http.Handler) http.Handler
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// Handler mounts si on a router and returns it.
func Handler(si ServerInterface, opts HandlerOptions) http.Handler {
	r := opts.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if opts.ErrorHandlerFunc == nil {
		opts.ErrorHandlerFunc = func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		}
	}
	wrapper := serverWrapper{
		handler:          si,
		middlewares:      opts.Middlewares,
		errorHandlerFunc: opts.ErrorHandlerFunc,
	}

	r.Get("/api/", wrapper.Root)
	r.Get("/api/firms", wrapper.ListFirms)
	r.Post("/api/firms/compare", wrapper.CompareFirms)
	r.Get("/api/firms/search/suggestions", wrapper.SearchSuggestions)
	r.Get("/api/firms/{id}", wrapper.GetFirm)
	r.Get("/api/statistics", wrapper.GetStatistics)
	r.Get("/health", wrapper.HealthCheck)
	r.Get("/metrics", wrapper.Metrics)

	return r
}

// serverWrapper binds request parameters before calling the ServerInterface.
type serverWrapper struct {
	handler          ServerInterface
	middlewares      []func(http.Handler) http.Handler
	errorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func (sw *serverWrapper) serve(w http.ResponseWriter, r *http.Request, h http.HandlerFunc) {
	var handler http.Handler = h
	for _, mw := range sw.middlewares {
		handler = mw(handler)
	}
	handler.ServeHTTP(w, r)
}

func (sw *serverWrapper) Root(w http.ResponseWriter, r *http.Request) {
	sw.serve(w, r, sw.handler.Root)
}

func (sw *serverWrapper) ListFirms(w http.ResponseWriter, r *http.Request) {
	var params ListFirmsParams
	query := r.URL.Query()

	binds := []struct {
		name string
		dest any
	}{
		{"min_account_size", &params.MinAccountSize},
		{"max_account_size", &params.MaxAccountSize},
		{"platform", &params.Platform},
		{"min_profit_split", &params.MinProfitSplit},
		{"payout_frequency", &params.PayoutFrequency},
		{"news_trading", &params.NewsTrading},
		{"expert_advisors", &params.ExpertAdvisors},
		{"min_rating", &params.MinRating},
		{"limit", &params.Limit},
	}
	for _, b := range binds {
		if err := runtime.BindQueryParameter("form", true, false, b.name, query, b.dest); err != nil {
			sw.errorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: b.name, Err: err})
			return
		}
	}

	sw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		sw.handler.ListFirms(w, r, params)
	})
}

func (sw *serverWrapper) GetFirm(w http.ResponseWriter, r *http.Request) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		sw.errorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	sw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		sw.handler.GetFirm(w, r, id)
	})
}

func (sw *serverWrapper) CompareFirms(w http.ResponseWriter, r *http.Request) {
	sw.serve(w, r, sw.handler.CompareFirms)
}

func (sw *serverWrapper) SearchSuggestions(w http.ResponseWriter, r *http.Request) {
	var params SearchSuggestionsParams
	query := r.URL.Query()

	if _, ok := query["q"]; !ok {
		sw.errorHandlerFunc(w, r, &RequiredParamError{ParamName: "q"})
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, "q", query, &params.Q); err != nil {
		sw.errorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "q", Err: err})
		return
	}

	sw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		sw.handler.SearchSuggestions(w, r, params)
	})
}

func (sw *serverWrapper) GetStatistics(w http.ResponseWriter, r *http.Request) {
	sw.serve(w, r, sw.handler.GetStatistics)
}

func (sw *serverWrapper) HealthCheck(w http.ResponseWriter, r *http.Request) {
	sw.serve(w, r, sw.handler.HealthCheck)
}

func (sw *serverWrapper) Metrics(w http.ResponseWriter, r *http.Request) {
	sw.serve(w, r, sw.handler.Metrics)
}
