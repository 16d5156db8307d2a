package notifier

import (
	"context"
	"time"
)

// Receipt is what the provider hands back for one accepted message.
type Receipt struct {
	ProviderID string
	SentAt     time.Time
}

// Notifier delivers one rendered text to one destination. A send is
// attempted once; retry policy lives with the caller.
type Notifier interface {
	Send(ctx context.Context, to, body string) (Receipt, error)
}
