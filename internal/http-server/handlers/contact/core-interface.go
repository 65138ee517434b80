package contact

import "context"

type Core interface {
	ReceiveContact(ctx context.Context, payload map[string]any) (string, error)
}
