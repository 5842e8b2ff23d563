package integration

import (
	"context"
	"net/http"
	"testing"

	adaptershttp "github.com/iho/traveledger/internal/adapter/http"
	"github.com/iho/traveledger/internal/adapter/http/handler"
	"github.com/iho/traveledger/internal/adapter/repository/postgres"
	"github.com/iho/traveledger/internal/usecase"
	"github.com/iho/traveledger/tests/testutil"
)

// testApp wires the full application stack against a real database.
type testApp struct {
	DB               *testutil.TestDB
	AccountUC        *usecase.AccountUseCase
	DocumentUC       *usecase.DocumentUseCase
	EntryUC          *usecase.EntryUseCase
	LedgerUC         *usecase.LedgerUseCase
	ReconciliationUC *usecase.ReconciliationUseCase
	OutboxRepo       *postgres.OutboxRepository
}

func newTestApp(t *testing.T) (*testApp, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	testDB.TruncateAll(ctx)

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	sequenceRepo := postgres.NewSequenceRepository(pool)
	outboxRepo := postgres.NewOutboxRepository(pool)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier()

	accountUC := usecase.NewAccountUseCase(accountRepo, companyRepo, idGen)
	ledgerUC := usecase.NewLedgerUseCase(txManager, accountRepo, companyRepo, entryRepo, outboxRepo, idGen).
		WithRetrier(retrier)
	documentUC := usecase.NewDocumentUseCase(txManager, documentRepo, sequenceRepo, outboxRepo, ledgerUC, idGen).
		WithRetrier(retrier)
	entryUC := usecase.NewEntryUseCase(entryRepo, accountRepo)
	reconciliationUC := usecase.NewReconciliationUseCase(accountRepo, ledgerRepo)

	app := &testApp{
		DB:               testDB,
		AccountUC:        accountUC,
		DocumentUC:       documentUC,
		EntryUC:          entryUC,
		LedgerUC:         ledgerUC,
		ReconciliationUC: reconciliationUC,
		OutboxRepo:       outboxRepo,
	}

	cleanup := func() {
		testDB.Cleanup()
	}

	return app, cleanup
}

// newRouter builds the HTTP router over the app's use cases.
func (app *testApp) newRouter() http.Handler {
	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:  handler.NewAccountHandler(app.AccountUC),
		DocumentHandler: handler.NewDocumentHandler(app.DocumentUC),
		EntryHandler:    handler.NewEntryHandler(app.EntryUC),
		LedgerHandler:   handler.NewLedgerHandler(app.ReconciliationUC),
		HealthHandler:   handler.NewHealthHandler(app.DB.Pool, nil),
	})
}
