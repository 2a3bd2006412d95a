package app

import (
	"fmt"
	"sync"

	auditHTTP "github.com/allisson/ciphershield/internal/audit/http"
	auditRepository "github.com/allisson/ciphershield/internal/audit/repository"
	auditUseCase "github.com/allisson/ciphershield/internal/audit/usecase"
	"github.com/allisson/ciphershield/internal/database"
)

type auditComponents struct {
	processedFileRepository auditUseCase.ProcessedFileRepository
	processedFileUseCase    auditUseCase.ProcessedFileUseCase
	processedFileHandler    *auditHTTP.ProcessedFileHandler

	processedFileRepositoryInit sync.Once
	processedFileUseCaseInit    sync.Once
	processedFileHandlerInit    sync.Once
}

// ProcessedFileRepository returns the processed-file repository based on database driver.
func (c *Container) ProcessedFileRepository() (auditUseCase.ProcessedFileRepository, error) {
	err := c.once(&c.processedFileRepositoryInit, "processedFileRepository", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for processed file repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverSQLite:
			c.processedFileRepository = auditRepository.NewSQLiteProcessedFileRepository(db)
		case database.DriverPostgres:
			c.processedFileRepository = auditRepository.NewPostgreSQLProcessedFileRepository(db)
		case database.DriverMySQL:
			c.processedFileRepository = auditRepository.NewMySQLProcessedFileRepository(db)
		default:
			return unsupportedDriver(c.config.DBDriver)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.processedFileRepository, nil
}

// ProcessedFileUseCase returns the processed-file log.
func (c *Container) ProcessedFileUseCase() (auditUseCase.ProcessedFileUseCase, error) {
	err := c.once(&c.processedFileUseCaseInit, "processedFileUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for processed file use case: %w", err)
		}
		repo, err := c.ProcessedFileRepository()
		if err != nil {
			return fmt.Errorf("failed to get processed file repository for processed file use case: %w", err)
		}
		c.processedFileUseCase = auditUseCase.NewProcessedFileUseCase(txManager, repo)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.processedFileUseCase, nil
}

// ProcessedFileHandler returns the HTTP handler for the processed-file log.
func (c *Container) ProcessedFileHandler() (*auditHTTP.ProcessedFileHandler, error) {
	err := c.once(&c.processedFileHandlerInit, "processedFileHandler", func() error {
		useCase, err := c.ProcessedFileUseCase()
		if err != nil {
			return fmt.Errorf("failed to get processed file use case for processed file handler: %w", err)
		}
		c.processedFileHandler = auditHTTP.NewProcessedFileHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.processedFileHandler, nil
}
