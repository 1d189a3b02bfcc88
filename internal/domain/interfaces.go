package domain

import (
	"context"
	"io"
)

// PDFService defines the upload-to-text operation behind the HTTP and CLI surfaces
type PDFService interface {
	ExtractText(ctx context.Context, upload *PDFDocument) (*ExtractionResult, error)
}

// TextExtractor defines the strategy interface for text extraction.
// Extract reads the PDF stored at path.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (*ExtractedText, error)
	Engine() PDFEngine
}

// FileHandler defines the interface for staging uploads on disk
type FileHandler interface {
	SaveUpload(file io.Reader, filename string) (*FileInfo, error)
	CleanupTemporary(info *FileInfo) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetHost() string
	GetServerPort() string
	GetAddress() string
	IsDebug() bool
	GetMaxFileSize() int64
	GetLogLevel() string
	GetLogFormat() string
	GetStagingDir() string
	GetPDFEngine() string
	GetAllowedOrigins() []string
}
