package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/travel-booking/config"
	"github.com/oksasatya/travel-booking/internal/container"
	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
	"github.com/oksasatya/travel-booking/pkg/helpers"
)

var packages = []entity.Package{
	{DestinationID: "goa", Name: "Goa Beach Escape", Description: "North Goa beaches with a spice farm visit.",
		Duration: "5 days / 4 nights", Price: "499", Inclusions: "Hotel, breakfast, airport transfer", Exclusions: "Flights, lunch, dinner"},
	{DestinationID: "goa", Name: "Goa Heritage Trail", Description: "Old Goa churches and Fontainhas walks.",
		Duration: "3 days / 2 nights", Price: "299", Inclusions: "Guesthouse, guided walks", Exclusions: "Flights"},
	{DestinationID: "bali", Name: "Bali Explorer", Description: "Ubud terraces, Uluwatu temple and a Nusa Penida day trip.",
		Duration: "7 days / 6 nights", Price: "899", Inclusions: "Villa, breakfast, driver", Exclusions: "Flights, visa"},
	{DestinationID: "kyoto", Name: "Kyoto Temples and Tea", Description: "Fushimi Inari, Arashiyama and a tea ceremony.",
		Duration: "4 days / 3 nights", Price: "1199", Inclusions: "Ryokan, breakfast, rail pass", Exclusions: "Flights"},
	{DestinationID: "santorini", Name: "Santorini Sunsets", Description: "Oia sunset cruise and a winery tour.",
		Duration: "5 days / 4 nights", Price: "1399", Inclusions: "Cave hotel, breakfast, cruise", Exclusions: "Flights, dinners"},
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)

	// seeding only touches storage
	cfg.SessionStore = config.SessionMemory
	cfg.MailSendEnabled = false
	cfg.ElasticsearchAddrs = ""
	cfg.GCSBucket = ""

	ctx := context.Background()
	c, err := container.New(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("open storage")
	}
	defer func() { _ = c.Close(ctx) }()

	email := getenv("SEED_ADMIN_EMAIL", "admin@travel.local")
	password := getenv("SEED_ADMIN_PASSWORD", "admin123")
	if err := seedAdmin(ctx, c.Repos.Users, email, password, logger); err != nil {
		logger.WithError(err).Fatal("seed admin")
	}
	if err := seedPackages(ctx, c.Repos.Packages, logger); err != nil {
		logger.WithError(err).Fatal("seed packages")
	}
}

func seedAdmin(ctx context.Context, users repository.UserRepository, email, password string, logger *logrus.Logger) error {
	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		logger.WithFields(logrus.Fields{"id": existing.ID, "email": email}).Info("admin already present")
		return nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	u := &entity.User{Name: "Administrator", Email: email, Password: hash, Role: entity.RoleAdmin}
	if err := users.Create(ctx, u); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"id": u.ID, "email": email}).Info("seeded admin")
	return nil
}

// seedPackages fills an empty catalog and leaves a populated one alone.
func seedPackages(ctx context.Context, repo repository.PackageRepository, logger *logrus.Logger) error {
	existing, err := repo.List(ctx, repository.PackageFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.WithField("count", len(existing)).Info("packages already present")
		return nil
	}
	for _, p := range packages {
		if err := repo.Create(ctx, &p); err != nil {
			return err
		}
	}
	logger.WithField("count", len(packages)).Info("seeded packages")
	return nil
}
