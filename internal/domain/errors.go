package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrNoCredential = errors.New("no API credential configured")
	ErrEmptyReply   = errors.New("model returned an empty reply")
)
