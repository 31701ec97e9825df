package repository

import "errors"

var (
	ErrFlagNotFound       = errors.New("repository: content flag not found")
	ErrFlagCreateFailed   = errors.New("repository: failed to create content flag")
	ErrFlagUpdateConflict = errors.New("repository: flag status changed concurrently")
	ErrActionAppendFailed = errors.New("repository: failed to append content action")
	ErrSignalQueryFailed  = errors.New("repository: signal source query failed")
	ErrCacheMiss          = errors.New("repository: cache miss")
	ErrCacheSetFailed     = errors.New("repository: failed to set cache")
	ErrCacheDeleteFailed  = errors.New("repository: failed to delete cache")
)
