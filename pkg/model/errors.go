package model

import (
	"errors"
)

var (
	ErrAlreadyExists    = errors.New("object already exists")
	ErrNotFound         = errors.New("not found")
	ErrInvalidChannelID = errors.New("channel id is required")
	ErrInvalidURL       = errors.New("invalid youtube url")
	ErrInvalidAction    = errors.New("invalid action")
)
