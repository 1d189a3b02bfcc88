package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"pdf-text-extractor/internal/domain"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// pdfDocument is the page-level view an engine exposes. Pages are 0-indexed.
type pdfDocument interface {
	NumPage() int
	PageText(pageNum int) (string, error)
	Close() error
}

type documentOpener func(path string) (pdfDocument, error)

// PDFProcessor handles PDF text extraction
type PDFProcessor struct {
	engine domain.PDFEngine
	open   documentOpener
	logger domain.Logger
}

// NewPDFProcessor creates a PDF processor backed by the named engine
func NewPDFProcessor(engine string, logger domain.Logger) (*PDFProcessor, error) {
	p := &PDFProcessor{
		engine: domain.PDFEngine(strings.ToLower(strings.TrimSpace(engine))),
		logger: logger,
	}
	switch p.engine {
	case domain.PDFEnginePDF, "":
		p.engine = domain.PDFEnginePDF
		p.open = openPlainPDF
	case domain.PDFEngineFitz:
		p.open = openFitzPDF
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedEngine, engine)
	}
	return p, nil
}

// Engine reports which backend this processor uses
func (p *PDFProcessor) Engine() domain.PDFEngine {
	return p.engine
}

// Extract opens the PDF at path and concatenates the text of every page in
// order. Each page with text contributes that text followed by a newline;
// pages yielding no text contribute nothing. Any page failure fails the
// whole document.
func (p *PDFProcessor) Extract(ctx context.Context, path string) (result *domain.ExtractedText, err error) {
	// Both parsers can panic on malformed input.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	doc, err := p.open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	return p.collectText(ctx, doc)
}

func (p *PDFProcessor) collectText(ctx context.Context, doc pdfDocument) (*domain.ExtractedText, error) {
	numPages := doc.NumPage()
	var sb strings.Builder

	for pageNum := 0; pageNum < numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)
		text, err := doc.PageText(pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum+1, err)
		}
		if text == "" {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return &domain.ExtractedText{
		Content:   sb.String(),
		PageCount: numPages,
	}, nil
}

// plainPDF wraps github.com/ledongthuc/pdf
type plainPDF struct {
	file   *os.File
	reader *pdf.Reader
}

var newPlainReader = pdf.NewReader

// openPlainPDF owns the file handle until the reader is built, so a parser
// failure or panic never leaks it.
func openPlainPDF(path string) (doc pdfDocument, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
		if err != nil {
			f.Close()
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	r, err := newPlainReader(f, fi.Size())
	if err != nil {
		return nil, err
	}
	return &plainPDF{file: f, reader: r}, nil
}

func (d *plainPDF) NumPage() int {
	return d.reader.NumPage()
}

func (d *plainPDF) PageText(pageNum int) (string, error) {
	page := d.reader.Page(pageNum + 1)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

func (d *plainPDF) Close() error {
	return d.file.Close()
}

// fitzPDF wraps github.com/gen2brain/go-fitz
type fitzPDF struct {
	doc *fitz.Document
}

func openFitzPDF(path string) (pdfDocument, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &fitzPDF{doc: doc}, nil
}

func (d *fitzPDF) NumPage() int {
	return d.doc.NumPage()
}

func (d *fitzPDF) PageText(pageNum int) (string, error) {
	return d.doc.Text(pageNum)
}

func (d *fitzPDF) Close() error {
	return d.doc.Close()
}
