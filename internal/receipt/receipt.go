package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/kbryant/sendlater/internal/notifier"
	"github.com/redis/go-redis/v9"
)

// Store keeps delivery receipts in Redis, one hash per message. Receipts
// are informational; a failed write never blocks the sweep.
type Store struct {
	client redis.Cmdable
}

func NewStore(client redis.Cmdable) *Store {
	return &Store{client: client}
}

func key(messageID string) string {
	return fmt.Sprintf("delivery_receipt:%s", messageID)
}

func (s *Store) Record(ctx context.Context, messageID string, r notifier.Receipt) error {
	values := map[string]interface{}{
		"provider_sid": r.ProviderID,
		"message_id":   messageID,
		"sent_at":      r.SentAt.Format(time.RFC3339Nano),
	}
	return s.client.HSet(ctx, key(messageID), values).Err()
}

// Get returns the stored receipt fields, or an empty map when none exists.
func (s *Store) Get(ctx context.Context, messageID string) (map[string]string, error) {
	return s.client.HGetAll(ctx, key(messageID)).Result()
}
