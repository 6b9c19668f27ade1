// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/dangerclosesec/nextintern/internal/auth"
	"github.com/dangerclosesec/nextintern/internal/config"
	"github.com/dangerclosesec/nextintern/internal/email"
	"github.com/dangerclosesec/nextintern/internal/handler"
	"github.com/dangerclosesec/nextintern/internal/middleware"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/quota"
	"github.com/dangerclosesec/nextintern/internal/repository"
	"github.com/dangerclosesec/nextintern/internal/service"
	"github.com/dangerclosesec/nextintern/internal/workflow"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := repository.Open(cfg, gormlogger.Warn)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	if err := repository.Migrate(db); err != nil {
		return err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	decisionLogRepo := repository.NewDecisionLogRepository(db)

	quotaStore, closeStore, err := setupQuotaStore(cfg, db)
	if err != nil {
		return fmt.Errorf("setting up quota store: %w", err)
	}
	defer closeStore()

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderFromConfig(cfg))
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// Policy engine
	ledger := quota.NewLedger(quotaStore, quotaLimits(cfg), quota.WithLocation(cfg.Location()))
	machine := workflow.NewMachine(workflow.Config{
		DwellTime:       cfg.Workflow.DwellTime,
		ScrollThreshold: cfg.Workflow.ScrollThreshold,
	}, time.Now)

	// Initialize services
	decisionLogService := service.NewDecisionLogService(decisionLogRepo)
	accountService := service.NewAccountService(userRepo, passwordHasher, tokenManager, emailService, cfg)
	profileService := service.NewProfileService(candidateRepo, companyRepo)
	opportunityService := service.NewOpportunityService(opportunityRepo, companyRepo, ledger, decisionLogService)
	applicationService := service.NewApplicationService(applicationRepo, opportunityRepo, candidateRepo, companyRepo)
	quotaService := service.NewQuotaService(ledger, companyRepo, opportunityRepo)
	submissionService := service.NewSubmissionService(
		submissionRepo,
		opportunityRepo,
		applicationRepo,
		candidateRepo,
		companyRepo,
		ledger,
		machine,
		service.NewEmailNotifier(emailService, userRepo, cfg.BaseURL),
		decisionLogService,
		cfg.Workflow.ClaimTimeout,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(accountService)
	profileHandler := handler.NewProfileHandler(profileService)
	opportunityHandler := handler.NewOpportunityHandler(opportunityService, applicationService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	quotaHandler := handler.NewQuotaHandler(quotaService)
	decisionLogHandler := handler.NewDecisionLogHandler(decisionLogService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AuditContext)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Post("/signup", authHandler.SignupHandler)
			r.Post("/login", authHandler.LoginHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Get("/me", authHandler.MeHandler)
			r.Post("/me/subscription", authHandler.SubscribeHandler)

			r.Route("/candidates", func(r chi.Router) {
				r.With(middleware.RequireRole(model.RoleCandidate)).Get("/me", profileHandler.GetOwnCandidate)
				r.With(middleware.RequireRole(model.RoleCandidate)).Put("/me", profileHandler.UpdateOwnCandidate)
				r.Get("/{anonymousID}", profileHandler.GetCandidate)
			})

			r.Route("/companies", func(r chi.Router) {
				r.With(middleware.RequireRole(model.RoleIndustry)).Get("/me", profileHandler.GetOwnCompany)
				r.With(middleware.RequireRole(model.RoleIndustry)).Put("/me", profileHandler.UpdateOwnCompany)
				r.Get("/{anonymousID}", profileHandler.GetCompany)
			})

			r.Route("/opportunities", func(r chi.Router) {
				r.Get("/", opportunityHandler.Browse)
				r.With(middleware.RequireRole(model.RoleIndustry)).Get("/mine", opportunityHandler.ListOwn)
				r.Get("/{id}", opportunityHandler.Get)
				r.With(middleware.RequireRole(model.RoleIndustry, model.RoleAdmin)).Put("/{id}", opportunityHandler.Update)
				r.With(middleware.RequireRole(model.RoleIndustry, model.RoleAdmin)).Delete("/{id}", opportunityHandler.Deactivate)
				r.With(middleware.RequireRole(model.RoleIndustry, model.RoleAdmin)).Get("/{id}/applications", opportunityHandler.Applications)
			})

			r.Route("/applications", func(r chi.Router) {
				r.With(middleware.RequireRole(model.RoleCandidate)).Get("/", applicationHandler.ListOwn)
				r.Get("/{id}", applicationHandler.Get)
				r.With(middleware.RequireRole(model.RoleIndustry, model.RoleAdmin)).Put("/{id}/status", applicationHandler.UpdateStatus)
			})

			r.Route("/submissions", func(r chi.Router) {
				r.Use(middleware.RequireRole(model.RoleCandidate, model.RoleIndustry))
				r.Post("/", submissionHandler.Start)
				r.Get("/{id}", submissionHandler.Get)
				r.Put("/{id}/draft", submissionHandler.UpdateDraft)
				r.Post("/{id}/terms", submissionHandler.EnterTerms)
				r.Post("/{id}/back", submissionHandler.Back)
				r.Post("/{id}/scroll", submissionHandler.RecordScroll)
				r.Post("/{id}/checkbox", submissionHandler.SetAcknowledged)
				r.Post("/{id}/acknowledge", submissionHandler.Acknowledge)
				r.Post("/{id}/submit", submissionHandler.Submit)
			})

			r.With(middleware.RequireRole(model.RoleIndustry)).Get("/quota", quotaHandler.Status)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireRole(model.RoleAdmin))
				r.Get("/accounts", authHandler.ListAccountsHandler)
				r.Get("/opportunities/pending", opportunityHandler.ListPending)
				r.Post("/opportunities/{id}/review", opportunityHandler.Review)
				r.Post("/quota/reconcile", quotaHandler.Reconcile)
				r.Get("/decision-logs", decisionLogHandler.GetDecisionLogs)
				r.Get("/decision-logs/{id}", decisionLogHandler.GetDecisionLogByID)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port, "quotaStore", cfg.Quota.Store)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func quotaLimits(cfg *config.Config) quota.Limits {
	return quota.Limits{
		Posting: map[model.OpportunityType]int{
			model.OpportunityInternship: cfg.Quota.InternshipLimit,
			model.OpportunityProject:    cfg.Quota.ProjectLimit,
		},
		ApplicationsPerMonth: cfg.Quota.ApplicationsPerMonth,
	}
}

// setupQuotaStore picks the counter backend. The returned func releases it.
func setupQuotaStore(cfg *config.Config, db *gorm.DB) (quota.Store, func(), error) {
	if cfg.Quota.Store != config.QuotaStoreRedis {
		return repository.NewQuotaStore(db), func() {}, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := repository.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewRedisQuotaStore(client, cfg.Redis.Prefix), func() {
		if err := client.Close(); err != nil {
			slog.Warn("closing redis client", "error", err)
		}
	}, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
