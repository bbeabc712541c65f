package service

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalid     = errors.New("invalid")
	ErrTransport   = errors.New("feed fetch failed")
	ErrImageFetch  = errors.New("image fetch failed")
	ErrUnknownPost = errors.New("unknown post")
	ErrStopped     = errors.New("feed engine stopped")
)
