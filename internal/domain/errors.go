package domain

import "errors"

// Domain errors
var (
	ErrMissingFile       = errors.New("no file uploaded")
	ErrNoFileSelected    = errors.New("no file selected")
	ErrFileTooLarge      = errors.New("file too large")
	ErrUnsupportedEngine = errors.New("unsupported pdf engine")
)

// Client-facing messages
const (
	MsgNoFileUploaded  = "No file uploaded"
	MsgNoFileSelected  = "No file selected"
	MsgFileTooLarge    = "File too large"
	MsgFailedToProcess = "Failed to process PDF"
)
