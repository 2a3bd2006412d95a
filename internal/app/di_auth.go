package app

import (
	"fmt"
	"sync"

	authHTTP "github.com/allisson/ciphershield/internal/auth/http"
	authRepository "github.com/allisson/ciphershield/internal/auth/repository"
	authService "github.com/allisson/ciphershield/internal/auth/service"
	authUseCase "github.com/allisson/ciphershield/internal/auth/usecase"
	"github.com/allisson/ciphershield/internal/database"
)

type authComponents struct {
	passwordHasher       authService.PasswordHasher
	credentialRepository authUseCase.CredentialRepository
	credentialUseCase    authUseCase.CredentialUseCase
	loginHandler         *authHTTP.LoginHandler
	setupHandler         *authHTTP.SetupHandler

	passwordHasherInit       sync.Once
	credentialRepositoryInit sync.Once
	credentialUseCaseInit    sync.Once
	loginHandlerInit         sync.Once
	setupHandlerInit         sync.Once
}

// PasswordHasher returns the PBKDF2 credential hasher.
func (c *Container) PasswordHasher() authService.PasswordHasher {
	c.passwordHasherInit.Do(func() {
		c.passwordHasher = authService.NewPasswordHasher()
	})
	return c.passwordHasher
}

// CredentialRepository returns the credential repository based on database driver.
func (c *Container) CredentialRepository() (authUseCase.CredentialRepository, error) {
	err := c.once(&c.credentialRepositoryInit, "credentialRepository", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for credential repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverSQLite:
			c.credentialRepository = authRepository.NewSQLiteCredentialRepository(db)
		case database.DriverPostgres:
			c.credentialRepository = authRepository.NewPostgreSQLCredentialRepository(db)
		case database.DriverMySQL:
			c.credentialRepository = authRepository.NewMySQLCredentialRepository(db)
		default:
			return unsupportedDriver(c.config.DBDriver)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.credentialRepository, nil
}

// CredentialUseCase returns the credential store.
func (c *Container) CredentialUseCase() (authUseCase.CredentialUseCase, error) {
	err := c.once(&c.credentialUseCaseInit, "credentialUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for credential use case: %w", err)
		}
		repo, err := c.CredentialRepository()
		if err != nil {
			return fmt.Errorf("failed to get credential repository for credential use case: %w", err)
		}

		baseUseCase := authUseCase.NewCredentialUseCase(txManager, repo, c.PasswordHasher(), c.Logger())

		// Wrap with metrics if enabled
		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				return fmt.Errorf("failed to get business metrics for credential use case: %w", err)
			}
			c.credentialUseCase = authUseCase.NewCredentialUseCaseWithMetrics(baseUseCase, businessMetrics)
			return nil
		}

		c.credentialUseCase = baseUseCase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.credentialUseCase, nil
}

// LoginHandler returns the HTTP handler for login.
func (c *Container) LoginHandler() (*authHTTP.LoginHandler, error) {
	err := c.once(&c.loginHandlerInit, "loginHandler", func() error {
		useCase, err := c.CredentialUseCase()
		if err != nil {
			return fmt.Errorf("failed to get credential use case for login handler: %w", err)
		}
		c.loginHandler = authHTTP.NewLoginHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.loginHandler, nil
}

// SetupHandler returns the HTTP handler for first-run provisioning.
func (c *Container) SetupHandler() (*authHTTP.SetupHandler, error) {
	err := c.once(&c.setupHandlerInit, "setupHandler", func() error {
		useCase, err := c.CredentialUseCase()
		if err != nil {
			return fmt.Errorf("failed to get credential use case for setup handler: %w", err)
		}
		c.setupHandler = authHTTP.NewSetupHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.setupHandler, nil
}
