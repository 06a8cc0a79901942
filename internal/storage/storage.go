package storage

import "errors"

var (
	ErrWeddingExists   = errors.New("wedding already exists")
	ErrWeddingNotFound = errors.New("wedding not found")
	ErrMediaNotFound   = errors.New("media not found")
	ErrEventNotFound   = errors.New("timeline event not found")
	ErrGiftNotFound    = errors.New("gift not found")
	ErrCacheMiss       = errors.New("cache miss")
)
