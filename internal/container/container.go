// Package container builds every long-lived component once per process and
// hands them to the router explicitly.
package container

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/travel-booking/config"
	"github.com/oksasatya/travel-booking/internal/application"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
	"github.com/oksasatya/travel-booking/internal/infrastructure/jsonfile"
	"github.com/oksasatya/travel-booking/internal/infrastructure/messaging"
	"github.com/oksasatya/travel-booking/internal/infrastructure/mongodb"
	"github.com/oksasatya/travel-booking/internal/infrastructure/postgres"
	"github.com/oksasatya/travel-booking/internal/infrastructure/search"
	"github.com/oksasatya/travel-booking/internal/infrastructure/session"
	"github.com/oksasatya/travel-booking/pkg/helpers"
)

// Repositories is the storage backend selected by STORAGE_DRIVER.
type Repositories struct {
	Users        repository.UserRepository
	Bookings     repository.BookingRepository
	Posts        repository.PostRepository
	Packages     repository.PackageRepository
	Destinations repository.DestinationRepository
}

type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	Repos Repositories
	// Redis is nil when sessions live in memory; rate limiting is then off.
	Redis   *redis.Client
	Cookies *helpers.Manager

	Auth     *application.AuthService
	Bookings *application.BookingService
	Posts    *application.PostService
	Catalog  *application.CatalogService
	Users    *application.UserService

	// Checks are probed by /api/health, keyed by backend name.
	Checks map[string]func(context.Context) error

	closers []func(context.Context) error
}

// New wires the application from cfg. Optional backends (search, uploads,
// e-mail) are skipped when not configured. On error everything already opened
// is closed again.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (c *Container, err error) {
	c = &Container{
		Config:  cfg,
		Logger:  logger,
		Cookies: helpers.NewCookie(cfg.CookieName, cfg.CookieDomain, cfg.CookieSecure),
		Checks:  map[string]func(context.Context) error{},
	}
	defer func() {
		if err != nil {
			_ = c.Close(context.Background())
			c = nil
		}
	}()

	if err = c.openStorage(ctx); err != nil {
		return c, fmt.Errorf("storage %q: %w", cfg.StorageDriver, err)
	}
	sessions, err := c.openSessions(ctx)
	if err != nil {
		return c, fmt.Errorf("sessions %q: %w", cfg.SessionStore, err)
	}
	index, err := c.openSearch(ctx)
	if err != nil {
		return c, fmt.Errorf("elasticsearch: %w", err)
	}
	uploader, err := c.openUploads(ctx)
	if err != nil {
		return c, fmt.Errorf("gcs: %w", err)
	}
	notifier, err := c.openNotifier()
	if err != nil {
		return c, fmt.Errorf("rabbitmq: %w", err)
	}

	tokens := helpers.NewSessionTokens(cfg.SessionSecret, cfg.SessionTTL)
	c.Auth = application.NewAuthService(c.Repos.Users, sessions, tokens, notifier, logger)
	c.Bookings = application.NewBookingService(c.Repos.Bookings, notifier, logger)
	c.Posts = application.NewPostService(c.Repos.Posts, index, uploader, logger)
	c.Catalog = application.NewCatalogService(c.Repos.Destinations, c.Repos.Packages)
	c.Users = application.NewUserService(c.Repos.Users, logger)
	return c, nil
}

func (c *Container) onClose(fn func(context.Context) error) {
	c.closers = append(c.closers, fn)
}

// Close releases backends in reverse order of opening.
func (c *Container) Close(ctx context.Context) error {
	var first error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](ctx); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	return first
}

func (c *Container) openStorage(ctx context.Context) error {
	cfg := c.Config
	c.Repos.Destinations = jsonfile.NewDestinationCatalog(cfg.DestinationsFile)

	switch cfg.StorageDriver {
	case config.StorageFile:
		store, err := jsonfile.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		c.Repos.Users, c.Repos.Bookings, c.Repos.Posts, c.Repos.Packages =
			store.Users(), store.Bookings(), store.Posts(), store.Packages()
		c.Logger.WithField("dir", store.Dir()).Info("using file storage")

	case config.StorageMongo:
		store, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		c.onClose(store.Close)
		c.Checks["mongo"] = store.Ping
		c.Repos.Users, c.Repos.Bookings, c.Repos.Posts, c.Repos.Packages =
			store.Users(), store.Bookings(), store.Posts(), store.Packages()
		c.Logger.WithField("database", cfg.MongoDatabase).Info("using mongo storage")

	case config.StoragePostgres:
		if err := postgres.Migrate(cfg.PostgresDSN(), cfg.MigrationsDir, c.Logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		pool, err := postgres.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return err
		}
		c.onClose(func(context.Context) error { pool.Close(); return nil })
		c.Checks["postgres"] = pool.Ping
		c.Repos.Users = postgres.NewUserRepository(pool)
		c.Repos.Bookings = postgres.NewBookingRepository(pool)
		c.Repos.Posts = postgres.NewPostRepository(pool)
		c.Repos.Packages = postgres.NewPackageRepository(pool)
		c.Logger.WithField("database", cfg.DBName).Info("using postgres storage")

	default:
		return fmt.Errorf("unknown driver (want %s, %s or %s)", config.StorageFile, config.StorageMongo, config.StoragePostgres)
	}
	return nil
}

func (c *Container) openSessions(ctx context.Context) (session.Store, error) {
	cfg := c.Config
	switch cfg.SessionStore {
	case config.SessionMemory:
		c.Logger.Warn("sessions kept in memory; they are lost on restart and rate limiting is disabled")
		return session.NewMemoryStore(cfg.SessionTTL), nil
	case config.SessionRedis:
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		c.onClose(func(context.Context) error { return rdb.Close() })
		if err := helpers.PingRedis(ctx, rdb); err != nil {
			return nil, err
		}
		c.Redis = rdb
		c.Checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		return session.NewRedisStore(rdb, cfg.SessionTTL), nil
	default:
		return nil, fmt.Errorf("unknown session store (want %s or %s)", config.SessionRedis, config.SessionMemory)
	}
}

// openSearch returns a nil index when ELASTICSEARCH_ADDRS is empty.
func (c *Container) openSearch(ctx context.Context) (application.PostIndex, error) {
	addrs := c.Config.ESAddrs()
	if len(addrs) == 0 {
		return nil, nil
	}
	es, err := helpers.NewESClient(addrs, c.Config.ElasticsearchUser, c.Config.ElasticsearchPass)
	if err != nil {
		return nil, err
	}
	if err := helpers.PingES(ctx, es); err != nil {
		// search degrades to a scan, so an unreachable cluster is not fatal
		c.Logger.WithError(err).Warn("elasticsearch unreachable at startup")
	}
	c.Checks["elasticsearch"] = func(ctx context.Context) error { return helpers.PingES(ctx, es) }
	return search.NewPostIndex(es, c.Config.ESPostsIndex), nil
}

// openUploads returns a nil uploader when GCS_BUCKET is empty.
func (c *Container) openUploads(ctx context.Context) (application.Uploader, error) {
	if c.Config.GCSBucket == "" {
		return nil, nil
	}
	client, err := helpers.NewGCSClient(ctx, c.Config.GCSCredentialsJSONPath)
	if err != nil {
		return nil, err
	}
	up := helpers.NewGCSUploader(client, c.Config.GCSBucket)
	c.onClose(func(context.Context) error { return up.Close() })
	return up, nil
}

func (c *Container) openNotifier() (application.Notifier, error) {
	if !c.Config.MailSendEnabled {
		return application.NopNotifier{}, nil
	}
	pub, err := helpers.NewRabbitPublisher(c.Config.RabbitMQURL, c.Config.RabbitMQEmailQueue)
	if err != nil {
		return nil, err
	}
	c.onClose(func(context.Context) error { pub.Close(); return nil })
	c.Logger.WithField("queue", pub.Queue).Info("booking e-mails enabled")
	return messaging.NewEmailNotifier(pub, c.Repos.Users, c.Config, c.Logger), nil
}
