package di

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/labstack/echo/v4"

	"session-gateway/app/config"
	"session-gateway/app/domain"
	"session-gateway/app/driver/firebase"
	"session-gateway/app/driver/gcs"
	"session-gateway/app/driver/memory"
	"session-gateway/app/driver/mongodb"
	"session-gateway/app/driver/s3"
	"session-gateway/app/gateway"
	"session-gateway/app/port"
	"session-gateway/app/rest"
	"session-gateway/app/token"
	"session-gateway/app/usecase"
	"session-gateway/app/utils/logger"
)

// Container holds all dependencies for the application. Capability
// providers are lazy singletons: each is constructed on first access and
// shared afterwards, so an unsupported or misconfigured provider only
// fails the requests that actually need that capability.
//
// Only successful instances and the unsupported-name error are cached.
// A transient construction failure (issuer discovery down, bad network)
// leaves the slot empty so the next access retries.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	SessionTokens  port.SessionTokens
	SessionUsecase port.SessionUsecase
	FileUsecase    port.FileUsecase

	verifierMu  sync.Mutex
	verifier    port.IdentityVerifier
	verifierErr error

	storeMu  sync.Mutex
	store    port.PersistentStore
	storeErr error

	blobMu  sync.Mutex
	blob    port.BlobStore
	blobErr error
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, log *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: log,
	}

	// Session signing is not provider-pluggable, so it is built eagerly;
	// a bad secret should fail at startup.
	container.SessionTokens = token.NewJWTService(cfg.SessionSecret, cfg.SessionTTL)

	userGateway := gateway.NewUserGateway(container, logger.StoreLogger(log))
	container.SessionUsecase = usecase.NewSessionUsecase(container, userGateway,
		container.SessionTokens, logger.WithComponent(log, "session_usecase"))
	container.FileUsecase = usecase.NewFileUsecase(container,
		logger.WithComponent(log, "file_usecase"))

	log.Info("container initialized",
		"identity_provider", cfg.IdentityProvider,
		"store_provider", cfg.StoreProvider,
		"blob_provider", cfg.BlobProvider)
	return container, nil
}

// IdentityVerifier resolves the configured identity verifier.
func (c *Container) IdentityVerifier(ctx context.Context) (port.IdentityVerifier, error) {
	c.verifierMu.Lock()
	defer c.verifierMu.Unlock()

	if c.verifier != nil {
		return c.verifier, nil
	}
	if c.verifierErr != nil {
		return nil, c.verifierErr
	}

	log := logger.VerifierLogger(c.Logger)
	switch c.Config.IdentityProvider {
	case config.IdentityProviderFirebase:
		verifier, err := firebase.NewVerifier(ctx, c.Config, log)
		if err != nil {
			return nil, err
		}
		c.verifier = verifier
	case config.IdentityProviderMock:
		c.verifier = memory.NewVerifier()
	default:
		c.verifierErr = fmt.Errorf("%w: identity provider %q",
			domain.ErrUnsupportedProvider, c.Config.IdentityProvider)
		return nil, c.verifierErr
	}
	return c.verifier, nil
}

// PersistentStore resolves the configured persistent store.
func (c *Container) PersistentStore(ctx context.Context) (port.PersistentStore, error) {
	c.storeMu.Lock()
	defer c.storeMu.Unlock()

	if c.store != nil {
		return c.store, nil
	}
	if c.storeErr != nil {
		return nil, c.storeErr
	}

	log := logger.StoreLogger(c.Logger)
	switch c.Config.StoreProvider {
	case config.StoreProviderMongoDB:
		store, err := mongodb.NewStore(c.Config, log)
		if err != nil {
			return nil, err
		}
		c.store = store
	case config.StoreProviderMock:
		c.store = memory.NewStore()
	default:
		c.storeErr = fmt.Errorf("%w: store provider %q",
			domain.ErrUnsupportedProvider, c.Config.StoreProvider)
		return nil, c.storeErr
	}
	return c.store, nil
}

// BlobStore resolves the configured blob store.
func (c *Container) BlobStore(ctx context.Context) (port.BlobStore, error) {
	c.blobMu.Lock()
	defer c.blobMu.Unlock()

	if c.blob != nil {
		return c.blob, nil
	}
	if c.blobErr != nil {
		return nil, c.blobErr
	}

	log := logger.BlobLogger(c.Logger)
	switch c.Config.BlobProvider {
	case config.BlobProviderGCS:
		blob, err := gcs.NewBlobStore(ctx, c.Config, log)
		if err != nil {
			return nil, err
		}
		c.blob = blob
	case config.BlobProviderS3:
		blob, err := s3.NewBlobStore(ctx, c.Config, log)
		if err != nil {
			return nil, err
		}
		c.blob = blob
	case config.BlobProviderMock:
		c.blob = memory.NewBlobStore(c.Config.SignedURLTTL)
	default:
		c.blobErr = fmt.Errorf("%w: blob provider %q",
			domain.ErrUnsupportedProvider, c.Config.BlobProvider)
		return nil, c.blobErr
	}
	return c.blob, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:         c.Logger,
		SessionUsecase: c.SessionUsecase,
		FileUsecase:    c.FileUsecase,
		SessionTokens:  c.SessionTokens,
		Providers:      c,
		SecureCookies:  c.Config.IsProduction(),
		SessionTTL:     c.Config.SessionTTL,
	})
}

// Close releases held resources. Only the store holds a connection; the
// other providers are stateless clients.
func (c *Container) Close(ctx context.Context) error {
	if c.store != nil {
		if err := c.store.Disconnect(ctx); err != nil {
			return fmt.Errorf("disconnect store: %w", err)
		}
	}
	return nil
}
