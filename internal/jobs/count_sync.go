package jobs

import (
	"context"
	"time"

	"github.com/emrgen/tinytweet/internal/cache"
	"github.com/emrgen/tinytweet/internal/store"
	"github.com/sirupsen/logrus"
)

const countSyncWindow = 15 * time.Minute

var _ CronJob = (*CountSync)(nil)

// CountSync recomputes the cached like counts of tweets with recent like
// activity, healing any drift between the cache and the store.
type CountSync struct {
	store store.Store
	cache cache.EngagementCache
}

// NewCountSync creates a new CountSync job.
func NewCountSync(store store.Store, cache cache.EngagementCache) *CountSync {
	return &CountSync{
		store: store,
		cache: cache,
	}
}

func (c *CountSync) Schedule() string {
	return "@every 5m"
}

func (c *CountSync) Run() {
	ctx := context.TODO()

	ids, err := c.store.ListRecentlyLikedTweetIDs(ctx, time.Now().Add(-countSyncWindow))
	if err != nil {
		logrus.Errorf("count sync: error listing recently liked tweets: %v", err)
		return
	}

	for _, id := range ids {
		count, err := c.store.CountLikes(ctx, id)
		if err != nil {
			logrus.Errorf("count sync: error counting likes for tweet %s: %v", id, err)
			continue
		}

		if err := c.cache.SetLikeCount(ctx, id, count, countSyncWindow); err != nil {
			logrus.Errorf("count sync: error caching like count for tweet %s: %v", id, err)
		}
	}

	if len(ids) > 0 {
		logrus.Infof("count sync: refreshed %d like counts", len(ids))
	}
}
