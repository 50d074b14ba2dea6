package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrUnknownCategory     = errors.New("unknown emission category")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrNegativeValue       = errors.New("amount and cost must not be negative")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidSource       = errors.New("invalid document source")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedFormat   = errors.New("unsupported export format")
	ErrMissingCredential   = errors.New("insight credential not configured")
)
