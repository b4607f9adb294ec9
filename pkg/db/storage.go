package db

import (
	"context"

	"github.com/tvwall/multiview/pkg/model"
)

const (
	CurrentVersion = 1
)

type Storage interface {
	Close() error
	Version() (int, error)

	// GetWall returns the wall of a viewer or model.ErrNotFound
	GetWall(ctx context.Context, viewerID string) (*model.Wall, error)

	// SaveWall inserts or replaces the wall of a viewer
	SaveWall(ctx context.Context, wall *model.Wall) error

	// DeleteWall forgets everything about a viewer
	DeleteWall(ctx context.Context, viewerID string) error
}
