package service

import (
	"context"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

// PDFService implements the PDF processing business logic
type PDFService struct {
	textExtractor domain.TextExtractor
	fileHandler   domain.FileHandler
	logger        domain.Logger
}

// NewPDFService creates a new PDF service instance
func NewPDFService(
	textExtractor domain.TextExtractor,
	fileHandler domain.FileHandler,
	logger domain.Logger,
) *PDFService {
	return &PDFService{
		textExtractor: textExtractor,
		fileHandler:   fileHandler,
		logger:        logger,
	}
}

// ExtractText stages the upload, extracts its text and removes the staged
// artifact before returning, whatever the outcome.
func (s *PDFService) ExtractText(ctx context.Context, upload *domain.PDFDocument) (*domain.ExtractionResult, error) {
	if upload == nil || upload.Reader == nil {
		s.logger.Error("No file part in request", domain.ErrMissingFile)
		return nil, apperrors.NewValidationError(domain.MsgNoFileUploaded, domain.ErrMissingFile)
	}
	if upload.Filename == "" {
		s.logger.Error("Empty filename received", domain.ErrNoFileSelected)
		return nil, apperrors.NewValidationError(domain.MsgNoFileSelected, domain.ErrNoFileSelected)
	}

	s.logger.Info("Processing file", "filename", upload.Filename, "engine", string(s.textExtractor.Engine()))

	info, err := s.fileHandler.SaveUpload(upload.Reader, upload.Filename)
	if err != nil {
		s.logger.Error("Error processing file", err, "filename", upload.Filename)
		return nil, apperrors.NewProcessingError(domain.MsgFailedToProcess, err)
	}
	s.logger.Debug("Upload staged", "path", info.Path, "bytes", info.Size)
	defer func() {
		if cerr := s.fileHandler.CleanupTemporary(info); cerr != nil {
			s.logger.Warn("Failed to remove staged upload", "path", info.Path, "error", cerr)
		}
	}()

	extracted, err := s.textExtractor.Extract(ctx, info.Path)
	if err != nil {
		s.logger.Error("PDF extraction failed", err, "filename", upload.Filename)
		return nil, apperrors.NewProcessingError(domain.MsgFailedToProcess, err)
	}

	s.logger.Info("Successfully extracted text", "filename", upload.Filename, "pages", extracted.PageCount, "chars", len(extracted.Content))

	return &domain.ExtractionResult{
		Text:      extracted.Content,
		Filename:  upload.Filename,
		PageCount: extracted.PageCount,
	}, nil
}
