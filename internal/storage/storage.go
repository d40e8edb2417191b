package storage

import "errors"

var (
	ErrSingletonViolation = errors.New("only one instance of this record can exist")
	ErrUniqueViolation    = errors.New("record with this value already exists")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidValue       = errors.New("invalid field value")
	ErrNoFields           = errors.New("no fields to update")
	ErrRateLimited        = errors.New("too many requests")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)
