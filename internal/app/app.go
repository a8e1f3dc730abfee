package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/SyedqaderEng/financeOS-sub001/internal/config"
	"github.com/SyedqaderEng/financeOS-sub001/internal/db"
	"github.com/SyedqaderEng/financeOS-sub001/internal/events"
	"github.com/SyedqaderEng/financeOS-sub001/internal/repository"
	"github.com/SyedqaderEng/financeOS-sub001/internal/service"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg                 *config.Config
	DB                  *sqlx.DB
	Store               *repository.Store
	Publisher           events.Publisher
	AuthService         *service.AuthService
	UserService         *service.UserService
	EmailService        *service.EmailService
	GoalService         *service.GoalService
	ContributionService *service.ContributionService
	TransactionService  *service.TransactionService
	BudgetService       *service.BudgetService
	AnalyticsService    *service.AnalyticsService
	LedgerAuditor       *service.LedgerAuditor
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.MigrateOnStart {
		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	publisher, err := newPublisher(cfg)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize event publisher: %w", err)
	}

	return Build(cfg, database, publisher), nil
}

// Build wires repositories and services on top of an open, migrated
// database.
func Build(cfg *config.Config, database *sqlx.DB, publisher events.Publisher) *App {
	// Repositories
	store := repository.NewStore(database)
	repos := store.Repos()

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		repos.Users,
		emailService,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.IsProduction(),
	)
	userService := service.NewUserService(repos.Users)
	goalService := service.NewGoalService(repos.Goals, repos.Contributions)
	contributionService := service.NewContributionService(repos, store, publisher, emailService)
	transactionService := service.NewTransactionService(repos.Transactions)
	budgetService := service.NewBudgetService(repos.Budgets, repos.Transactions)
	analyticsService := service.NewAnalyticsService(repos.Transactions, repos.Budgets, repos.Goals)
	ledgerAuditor := service.NewLedgerAuditor(repos.Goals, repos.Contributions)

	return &App{
		Cfg:                 cfg,
		DB:                  database,
		Store:               store,
		Publisher:           publisher,
		AuthService:         authService,
		UserService:         userService,
		EmailService:        emailService,
		GoalService:         goalService,
		ContributionService: contributionService,
		TransactionService:  transactionService,
		BudgetService:       budgetService,
		AnalyticsService:    analyticsService,
		LedgerAuditor:       ledgerAuditor,
	}
}

func newPublisher(cfg *config.Config) (events.Publisher, error) {
	if !cfg.EventsEnabled() {
		slog.Info("AMQP_URL not set, domain events are logged only")
		return events.NewLogPublisher(slog.Default()), nil
	}
	return events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
}

func (a *App) Close() error {
	var errs []error
	if a.Publisher != nil {
		errs = append(errs, a.Publisher.Close())
	}
	if a.DB != nil {
		errs = append(errs, db.Close(a.DB))
	}
	return errors.Join(errs...)
}
