package handler

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

const uploadField = "file"

// PDFHandler handles HTTP requests for PDF operations
type PDFHandler struct {
	pdfService  domain.PDFService
	maxFileSize int64
	logger      domain.Logger
}

// NewPDFHandler creates a new PDF handler instance
func NewPDFHandler(pdfService domain.PDFService, maxFileSize int64, logger domain.Logger) *PDFHandler {
	return &PDFHandler{
		pdfService:  pdfService,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Health reports that the service is up
func (h *PDFHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.HealthResponse{
		Status:  "healthy",
		Service: "PDF Text Extractor",
	})
}

// ExtractText handles POST /extract-text
func (h *PDFHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	if h.maxFileSize > 0 {
		if r.ContentLength > h.maxFileSize {
			writeAppError(w, h.tooLarge())
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	}

	part, filename, err := h.uploadedFile(r)
	if err != nil {
		writeAppError(w, err)
		return
	}
	defer part.Close()

	result, err := h.pdfService.ExtractText(r.Context(), &domain.PDFDocument{
		Reader:   part,
		Filename: filename,
	})
	if err != nil {
		if isTooLarge(err) {
			err = h.tooLarge()
		}
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.ExtractTextResponse{
		Success:  true,
		Text:     result.Text,
		Filename: result.Filename,
	})
}

// uploadedFile streams the form up to the first "file" part that carries a
// filename parameter and returns that part with the filename exactly as the
// client sent it. A "file" part without a filename parameter is a plain
// field and does not count as an upload.
func (h *PDFHandler) uploadedFile(r *http.Request) (*multipart.Part, string, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		h.logger.Error("No file part in request", err)
		return nil, "", apperrors.NewValidationError(domain.MsgNoFileUploaded, domain.ErrMissingFile)
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if isTooLarge(err) {
				return nil, "", h.tooLarge()
			}
			h.logger.Error("No file part in request", err)
			return nil, "", apperrors.NewValidationError(domain.MsgNoFileUploaded, domain.ErrMissingFile)
		}

		if part.FormName() != uploadField {
			part.Close()
			continue
		}
		filename, ok := rawFilename(part)
		if !ok {
			part.Close()
			continue
		}
		if filename == "" {
			part.Close()
			h.logger.Error("Empty filename received", domain.ErrNoFileSelected)
			return nil, "", apperrors.NewValidationError(domain.MsgNoFileSelected, domain.ErrNoFileSelected)
		}
		return part, filename, nil
	}

	h.logger.Error("No file part in request", domain.ErrMissingFile)
	return nil, "", apperrors.NewValidationError(domain.MsgNoFileUploaded, domain.ErrMissingFile)
}

// rawFilename reads the filename parameter of the part's Content-Disposition
// without the base-name trimming multipart.Part.FileName applies.
func rawFilename(part *multipart.Part) (string, bool) {
	_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil {
		return "", false
	}
	filename, ok := params["filename"]
	return filename, ok
}

func (h *PDFHandler) tooLarge() error {
	h.logger.Warn("Upload rejected: body too large", "limit", h.maxFileSize)
	return apperrors.NewTooLargeError(domain.MsgFileTooLarge, domain.ErrFileTooLarge)
}

func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
