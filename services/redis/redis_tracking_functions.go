package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Public tracking lookups are by far the hottest read path, so resolved
// timelines sit in redis for a short window.
const trackingCacheTTL = 60 * time.Second

func trackingKey(trackingNumber string) string {
	return fmt.Sprintf("tracking:%s", trackingNumber)
}

func (r *RedisService) GetCachedTimeline(ctx context.Context, trackingNumber string, out interface{}) (bool, error) {
	raw, err := r.Get(ctx, trackingKey(trackingNumber))
	if IsMiss(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisService) CacheTimeline(ctx context.Context, trackingNumber string, timeline interface{}) error {
	raw, err := json.Marshal(timeline)
	if err != nil {
		return err
	}
	return r.Set(ctx, trackingKey(trackingNumber), raw, trackingCacheTTL)
}

func (r *RedisService) InvalidateTimeline(ctx context.Context, trackingNumber string) error {
	return r.Delete(ctx, trackingKey(trackingNumber))
}
