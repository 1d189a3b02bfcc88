package config

import (
	"fmt"

	"pdf-text-extractor/internal/domain"
	"pdf-text-extractor/internal/service"
	"pdf-text-extractor/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config        domain.Config
	Logger        domain.Logger
	TextExtractor domain.TextExtractor
	FileHandler   domain.FileHandler
	PDFService    domain.PDFService
}

// NewContainer creates a new dependency injection container from the environment
func NewContainer() (*Container, error) {
	cfg := NewConfig()
	return NewContainerWithConfig(cfg, logger.NewLogger(cfg.GetLogLevel(), cfg.GetLogFormat()))
}

// NewContainerWithConfig wires the services for cfg, logging through appLogger
func NewContainerWithConfig(cfg domain.Config, appLogger domain.Logger) (*Container, error) {
	extractor, err := service.NewPDFProcessor(cfg.GetPDFEngine(), appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF processor: %w", err)
	}

	fileHandler := service.NewTempFileHandler(cfg.GetStagingDir(), appLogger)
	pdfService := service.NewPDFService(extractor, fileHandler, appLogger)

	return &Container{
		Config:        cfg,
		Logger:        appLogger,
		TextExtractor: extractor,
		FileHandler:   fileHandler,
		PDFService:    pdfService,
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetPDFService returns the extraction service
func (c *Container) GetPDFService() domain.PDFService {
	return c.PDFService
}
