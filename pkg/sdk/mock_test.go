package propdex

import (
	"context"

	domfirm "github.com/kailas-cloud/propdex/internal/domain/firm"
	"github.com/kailas-cloud/propdex/internal/domain/stats"
	cataloguc "github.com/kailas-cloud/propdex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/propdex/internal/usecase/health"
)

// --- catalogUseCase mock ---

type mockCatalogUC struct {
	listFn       func(ctx context.Context, q domfirm.Query) ([]domfirm.Firm, error)
	getFn        func(ctx context.Context, id string) (domfirm.Firm, error)
	compareFn    func(ctx context.Context, ids []string) (cataloguc.Comparison, error)
	suggestFn    func(ctx context.Context, query string) (cataloguc.Suggestions, error)
	statisticsFn func(ctx context.Context) (stats.Statistics, error)
}

func (m *mockCatalogUC) List(ctx context.Context, q domfirm.Query) ([]domfirm.Firm, error) {
	return m.listFn(ctx, q)
}

func (m *mockCatalogUC) Get(ctx context.Context, id string) (domfirm.Firm, error) {
	return m.getFn(ctx, id)
}

func (m *mockCatalogUC) Compare(ctx context.Context, ids []string) (cataloguc.Comparison, error) {
	return m.compareFn(ctx, ids)
}

func (m *mockCatalogUC) Suggest(ctx context.Context, query string) (cataloguc.Suggestions, error) {
	return m.suggestFn(ctx, query)
}

func (m *mockCatalogUC) Statistics(ctx context.Context) (stats.Statistics, error) {
	return m.statisticsFn(ctx)
}

// --- seedUseCase mock ---

type mockSeedUC struct {
	runFn func(ctx context.Context) (int, error)
}

func (m *mockSeedUC) Run(ctx context.Context) (int, error) {
	return m.runFn(ctx)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report {
	return m.report
}

// --- pinger mock ---

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error {
	return m.err
}
