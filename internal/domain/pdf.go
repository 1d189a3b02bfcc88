package domain

import "io"

// PDFEngine names a PDF parsing backend
type PDFEngine string

const (
	// PDFEnginePDF is the pure Go github.com/ledongthuc/pdf reader
	PDFEnginePDF PDFEngine = "pdf"
	// PDFEngineFitz is the MuPDF based github.com/gen2brain/go-fitz reader
	PDFEngineFitz PDFEngine = "fitz"
)

// PDFDocument represents an uploaded PDF before it is staged. Reader may be
// a stream whose length is only known once it has been copied.
type PDFDocument struct {
	Reader   io.Reader
	Filename string
}

// FileInfo represents a staged copy of an upload
type FileInfo struct {
	ID       string
	Filename string
	Size     int64
	Path     string
}

// ExtractedText is the raw output of a TextExtractor
type ExtractedText struct {
	Content   string
	PageCount int
}

// ExtractionResult is what a successful upload produces
type ExtractionResult struct {
	Text      string
	Filename  string
	PageCount int
}

// ExtractTextResponse is the JSON body of a successful POST /extract-text
type ExtractTextResponse struct {
	Success  bool   `json:"success"`
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

// HealthResponse is the JSON body of the health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
