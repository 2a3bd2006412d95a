package app

import (
	"fmt"
	"sync"

	"github.com/allisson/ciphershield/internal/database"
	templatesHTTP "github.com/allisson/ciphershield/internal/templates/http"
	templatesRepository "github.com/allisson/ciphershield/internal/templates/repository"
	templatesUseCase "github.com/allisson/ciphershield/internal/templates/usecase"
)

type templateComponents struct {
	templateRepository templatesUseCase.TemplateRepository
	templateUseCase    templatesUseCase.TemplateUseCase
	templateHandler    *templatesHTTP.TemplateHandler

	templateRepositoryInit sync.Once
	templateUseCaseInit    sync.Once
	templateHandlerInit    sync.Once
}

// TemplateRepository returns the template repository based on database driver.
func (c *Container) TemplateRepository() (templatesUseCase.TemplateRepository, error) {
	err := c.once(&c.templateRepositoryInit, "templateRepository", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for template repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverSQLite:
			c.templateRepository = templatesRepository.NewSQLiteTemplateRepository(db)
		case database.DriverPostgres:
			c.templateRepository = templatesRepository.NewPostgreSQLTemplateRepository(db)
		case database.DriverMySQL:
			c.templateRepository = templatesRepository.NewMySQLTemplateRepository(db)
		default:
			return unsupportedDriver(c.config.DBDriver)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.templateRepository, nil
}

// TemplateUseCase returns the mapping/template store.
func (c *Container) TemplateUseCase() (templatesUseCase.TemplateUseCase, error) {
	err := c.once(&c.templateUseCaseInit, "templateUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for template use case: %w", err)
		}
		repo, err := c.TemplateRepository()
		if err != nil {
			return fmt.Errorf("failed to get template repository for template use case: %w", err)
		}
		sealer, err := c.BlobSealer()
		if err != nil {
			return fmt.Errorf("failed to get blob sealer for template use case: %w", err)
		}

		baseUseCase := templatesUseCase.NewTemplateUseCase(txManager, repo, sealer, c.Logger())

		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				return fmt.Errorf("failed to get business metrics for template use case: %w", err)
			}
			c.templateUseCase = templatesUseCase.NewTemplateUseCaseWithMetrics(baseUseCase, businessMetrics)
			return nil
		}

		c.templateUseCase = baseUseCase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.templateUseCase, nil
}

// TemplateHandler returns the HTTP handler for template reads.
func (c *Container) TemplateHandler() (*templatesHTTP.TemplateHandler, error) {
	err := c.once(&c.templateHandlerInit, "templateHandler", func() error {
		useCase, err := c.TemplateUseCase()
		if err != nil {
			return fmt.Errorf("failed to get template use case for template handler: %w", err)
		}
		c.templateHandler = templatesHTTP.NewTemplateHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.templateHandler, nil
}
