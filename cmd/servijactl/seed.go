package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"servija-api/config"
	"servija-api/internal/application/services"
	"servija-api/internal/domain/profile"
	"servija-api/internal/domain/provider"
	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/cache"
	"servija-api/internal/infrastructure/db/postgres"
	categoryDB "servija-api/internal/infrastructure/db/postgres/category"
	providerDB "servija-api/internal/infrastructure/db/postgres/provider"
	requestDB "servija-api/internal/infrastructure/db/postgres/request"
	userDB "servija-api/internal/infrastructure/db/postgres/user"
	"servija-api/internal/infrastructure/metrics"
	"servija-api/internal/infrastructure/mq"
	"servija-api/pkg/optional"
)

type seedAccount struct {
	FullName string
	Email    string
	Password string
	Type     user.AccountType
	Phone    string
}

var (
	seedCity  = "São Paulo"
	seedState = "SP"
)

var seedAccounts = []seedAccount{
	{FullName: "Administrador ServiJá", Email: "admin@servija.local", Password: "admin123", Type: user.AccountAdmin},
	{FullName: "Cliente Demo", Email: "cliente@servija.local", Password: "cliente123", Type: user.AccountClient},
	{
		FullName: "Prestador Demo",
		Email:    "prestador@servija.local",
		Password: "prestador123",
		Type:     user.AccountProvider,
		Phone:    "(11) 99999-0000",
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the demo accounts and the demo provider profile",
	Long: `seed creates one account per type. Existing accounts are left untouched,
so running it twice is safe. The demo provider gets a profile in the first
active category.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDB(cmd.Context(), seed)
	},
}

// discardEvents drops lifecycle events; nobody consumes them during a seed.
type discardEvents struct{}

func (discardEvents) Emit(mq.Event) bool { return true }

func seed(ctx context.Context, _ config.Config, db *pgxpool.Pool, logger *zap.Logger) error {
	if _, err := postgres.Migrate(ctx, db, logger); err != nil {
		return err
	}

	users := userDB.NewRepository(db)
	providers := providerDB.NewRepository(db)
	categories := categoryDB.NewRepository(db)
	tx := postgres.NewTxManager(db)
	mCounter := metrics.NewCounter(prometheus.NewRegistry())

	var demoProvider *user.User
	for _, a := range seedAccounts {
		u, err := ensureAccount(ctx, users, a)
		if err != nil {
			return fmt.Errorf("seed %s: %w", a.Email, err)
		}
		if u.IsProvider() {
			demoProvider = u
		}
	}
	if demoProvider == nil {
		return nil
	}

	active := true
	cs, err := categories.FetchCategories(ctx, &active)
	if err != nil {
		return err
	}
	if len(cs) == 0 {
		fmt.Println("  no active category, demo provider profile skipped")
		return nil
	}

	categoryService := services.NewCategoryService(tx, categories, providers, cache.NewCategoryNames(nil, 0, logger), logger, mCounter)
	profileService := services.NewProfileService(
		tx,
		users,
		providers,
		categoryService,
		services.NewReconciler(providers, logger, mCounter),
		services.NewPropagator(providers, requestDB.NewRepository(db), logger, mCounter),
		discardEvents{},
		logger,
		mCounter,
	)

	current, err := profileService.GetProviderProfile(ctx, demoProvider.ID)
	if err != nil {
		return err
	}
	if current.Provider != nil {
		fmt.Printf("  provider profile exists  %s\n", current.Provider.ID)
		return nil
	}

	basePrice := 120.0
	merged, err := profileService.MergeProfile(ctx, demoProvider.ID, profile.Patch{
		Provider: provider.Patch{
			CategoryID:  optional.Of(cs[0].ID.String()),
			Description: optional.Of("Serviços residenciais com atendimento rápido."),
			Services:    optional.Of([]provider.Service{{Name: "Visita técnica", Price: &basePrice}}),
			BasePrice:   optional.Of(basePrice),
		},
	})
	if err != nil {
		return fmt.Errorf("seed provider profile: %w", err)
	}
	fmt.Printf("  provider profile  %s  categoria: %s\n", merged.Provider.ID, cs[0].Name)

	return nil
}

func ensureAccount(ctx context.Context, users user.Repository, a seedAccount) (*user.User, error) {
	existing, err := users.FetchUserByEmail(ctx, a.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		fmt.Printf("  user  %-28s  exists\n", a.Email)
		return existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	hashed := string(hash)
	city, state := seedCity, seedState

	u := user.User{
		Email:        a.Email,
		FullName:     a.FullName,
		AccountType:  a.Type,
		Active:       true,
		PasswordHash: &hashed,
		Address:      user.Address{City: &city, State: &state},
	}
	if a.Phone != "" {
		phone := a.Phone
		u.Phone = &phone
	}

	created, err := users.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}
	fmt.Printf("  user  %-28s  password: %s\n", a.Email, a.Password)
	return created, nil
}
