package auth

import (
	"context"

	"github.com/google/uuid"
)

type viewerKey struct{}

func WithViewer(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, viewerKey{}, userID)
}

// ViewerFrom returns the authenticated user of the request, if any.
func ViewerFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(viewerKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
