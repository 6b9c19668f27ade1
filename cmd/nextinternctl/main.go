package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/dangerclosesec/nextintern/internal/auth"
	"github.com/dangerclosesec/nextintern/internal/config"
	"github.com/dangerclosesec/nextintern/internal/email"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/dangerclosesec/nextintern/internal/quota"
	"github.com/dangerclosesec/nextintern/internal/repository"
	"github.com/dangerclosesec/nextintern/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	verbose bool
	timeout time.Duration

	reconcileMonth    string
	reconcileIndustry string

	reviewAdmin  string
	reviewReject bool
	reviewNote   string

	adminEmail     string
	adminFirstName string
	adminPassword  string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Maximum time to run the command")

	quotaReconcileCmd.Flags().StringVar(&reconcileMonth, "month", "", "Month to rebuild as YYYY-MM (default: current)")
	quotaReconcileCmd.Flags().StringVar(&reconcileIndustry, "industry", "", "Only rebuild this company's counters")
	quotaCmd.AddCommand(quotaShowCmd)
	quotaCmd.AddCommand(quotaReconcileCmd)

	opportunityReviewCmd.Flags().StringVar(&reviewAdmin, "admin", "", "Email of the reviewing admin account")
	opportunityReviewCmd.Flags().BoolVar(&reviewReject, "reject", false, "Reject instead of approve")
	opportunityReviewCmd.Flags().StringVar(&reviewNote, "note", "", "Review note shown to the company")
	opportunityReviewCmd.MarkFlagRequired("admin")
	opportunityCmd.AddCommand(opportunityReviewCmd)

	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email")
	adminCreateCmd.Flags().StringVar(&adminFirstName, "first-name", "Admin", "Admin first name")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (default: $ADMIN_PASSWORD)")
	adminCreateCmd.MarkFlagRequired("email")
	adminCmd.AddCommand(adminCreateCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(quotaCmd)
	rootCmd.AddCommand(opportunityCmd)
	rootCmd.AddCommand(adminCmd)
}

var rootCmd = &cobra.Command{
	Use:   "nextinternctl",
	Short: "nextinternctl administers a NextIntern deployment",
	Long:  `nextinternctl runs schema migrations, inspects and rebuilds posting quotas, and performs admin-only operations against the configured database.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		a := mustBootstrap()
		if err := repository.Migrate(a.db); err != nil {
			log.Fatalf("Failed to migrate: %v", err)
		}
		fmt.Println("Schema migrated successfully")
	},
}

var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Inspect and rebuild monthly posting counters",
}

var quotaShowCmd = &cobra.Command{
	Use:   "show [industry-id]",
	Short: "Show a company's posting allowance for the current month",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		industryID, err := uuid.Parse(args[0])
		if err != nil {
			log.Fatalf("Invalid industry id: %v", err)
		}

		a := mustBootstrap()
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		company, err := a.companies.FindByID(ctx, industryID)
		if err != nil {
			log.Fatalf("Failed to load company: %v", err)
		}
		owner, err := a.users.FindByID(ctx, company.UserID)
		if err != nil {
			log.Fatalf("Failed to load company owner: %v", err)
		}

		st, err := a.quotas.StatusFor(ctx, industryID, policy.ViewerFromUser(owner, time.Now()).Premium())
		if err != nil {
			log.Fatalf("Failed to read quota: %v", err)
		}
		printJSON(st)

		if verbose && a.pgStore != nil {
			rows, err := a.pgStore.ListForSubject(ctx, industryID, st.MonthKey)
			if err != nil {
				log.Fatalf("Failed to list counters: %v", err)
			}
			for _, row := range rows {
				fmt.Printf("  %s %s %s = %d (updated %s)\n", row.SubjectID, row.Category, row.MonthKey, row.Count, row.UpdatedAt.Format(time.RFC3339))
			}
		}
	},
}

var quotaReconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Rebuild posting counters from the opportunities table",
	Run: func(cmd *cobra.Command, args []string) {
		at := time.Now()
		if reconcileMonth != "" {
			parsed, err := time.Parse("2006-01", reconcileMonth)
			if err != nil {
				log.Fatalf("Invalid month %q: %v", reconcileMonth, err)
			}
			at = parsed.AddDate(0, 0, 14)
		}
		industryID := uuid.Nil
		if reconcileIndustry != "" {
			id, err := uuid.Parse(reconcileIndustry)
			if err != nil {
				log.Fatalf("Invalid industry id: %v", err)
			}
			industryID = id
		}

		a := mustBootstrap()
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := a.quotas.Reconcile(ctx, at, industryID)
		if err != nil {
			log.Fatalf("Failed to reconcile: %v", err)
		}
		fmt.Printf("Reconciled %d counters for %s\n", len(res.Counters), res.MonthKey)
		if verbose {
			printJSON(res)
		}
	},
}

var opportunityCmd = &cobra.Command{
	Use:   "opportunity",
	Short: "Moderate opportunity postings",
}

var opportunityReviewCmd = &cobra.Command{
	Use:   "review [opportunity-id]",
	Short: "Approve or reject a pending opportunity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := uuid.Parse(args[0])
		if err != nil {
			log.Fatalf("Invalid opportunity id: %v", err)
		}

		a := mustBootstrap()
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		admin, err := a.users.FindByEmail(ctx, reviewAdmin)
		if err != nil {
			log.Fatalf("Failed to load admin %s: %v", reviewAdmin, err)
		}

		input := service.ReviewInput{Status: model.ApprovalApproved, Note: reviewNote}
		if reviewReject {
			input.Status = model.ApprovalRejected
		}
		o, err := a.opportunities.Review(ctx, policy.ViewerFromUser(admin, time.Now()), id, input)
		if err != nil {
			log.Fatalf("Failed to review: %v", err)
		}
		fmt.Printf("Opportunity %s is now %s\n", o.ID, o.ApprovalStatus)
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	Run: func(cmd *cobra.Command, args []string) {
		password := adminPassword
		if password == "" {
			password = os.Getenv("ADMIN_PASSWORD")
		}

		a := mustBootstrap()
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		u, err := a.accounts.CreateAdmin(ctx, service.CreateAdminInput{
			Email:     adminEmail,
			FirstName: adminFirstName,
			Password:  password,
		})
		if err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		fmt.Printf("Created admin %s (%s)\n", u.Email, u.ID)
	},
}

type app struct {
	db            *gorm.DB
	users         *repository.UserRepository
	companies     *repository.CompanyRepository
	pgStore       *repository.QuotaStore
	quotas        *service.QuotaService
	opportunities *service.OpportunityService
	accounts      *service.AccountService
}

func mustBootstrap() *app {
	a, err := bootstrap(config.Load())
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	return a
}

func bootstrap(cfg *config.Config) (*app, error) {
	level := logger.Silent
	if verbose {
		level = logger.Info
	}
	db, err := repository.Open(cfg, level)
	if err != nil {
		return nil, err
	}

	a := &app{
		db:        db,
		users:     repository.NewUserRepository(db),
		companies: repository.NewCompanyRepository(db),
	}

	var store quota.Store
	if cfg.Quota.Store == config.QuotaStoreRedis {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client, err := repository.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		store = repository.NewRedisQuotaStore(client, cfg.Redis.Prefix)
	} else {
		a.pgStore = repository.NewQuotaStore(db)
		store = a.pgStore
	}

	ledger := quota.NewLedger(store, quota.Limits{
		Posting: map[model.OpportunityType]int{
			model.OpportunityInternship: cfg.Quota.InternshipLimit,
			model.OpportunityProject:    cfg.Quota.ProjectLimit,
		},
		ApplicationsPerMonth: cfg.Quota.ApplicationsPerMonth,
	}, quota.WithLocation(cfg.Location()))

	opportunityRepo := repository.NewOpportunityRepository(db)
	decisionLogs := service.NewDecisionLogService(repository.NewDecisionLogRepository(db))

	emailService, err := email.NewEmailService(cfg, email.ProviderFromConfig(cfg))
	if err != nil {
		return nil, err
	}

	a.quotas = service.NewQuotaService(ledger, a.companies, opportunityRepo)
	a.opportunities = service.NewOpportunityService(opportunityRepo, a.companies, ledger, decisionLogs)
	a.accounts = service.NewAccountService(
		a.users,
		auth.NewPasswordHasher(),
		auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod),
		emailService,
		cfg,
	)
	return a, nil
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
	fmt.Println(string(out))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
