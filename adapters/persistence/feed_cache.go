package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	postUC "github.com/savconnect/savconnect-api/internal/application/usecase/post"
	"github.com/savconnect/savconnect-api/internal/domain/post"
	"github.com/savconnect/savconnect-api/pkg/logger"
)

const (
	feedCachePrefix = "feed:posts"
	feedCacheTTL    = 60 * time.Second
)

// redisFeedCache caches feed pages for a short TTL and drops the whole
// keyspace on any post mutation. Cache errors are logged and treated as
// misses; the feed never fails because Redis did.
type redisFeedCache struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisFeedCache(client *redis.Client, log logger.Logger) postUC.FeedCache {
	return &redisFeedCache{client: client, logger: log}
}

func feedCacheKey(limit, offset int) string {
	return fmt.Sprintf("%s:%d:%d", feedCachePrefix, limit, offset)
}

func (c *redisFeedCache) Get(ctx context.Context, limit, offset int) ([]*post.Post, bool) {
	data, err := c.client.Get(ctx, feedCacheKey(limit, offset)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("feed cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var posts []*post.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		c.logger.Warn("feed cache holds malformed entry, dropping", zap.Error(err))
		c.client.Del(ctx, feedCacheKey(limit, offset))
		return nil, false
	}
	return posts, true
}

func (c *redisFeedCache) Set(ctx context.Context, limit, offset int, posts []*post.Post) {
	data, err := json.Marshal(posts)
	if err != nil {
		c.logger.Warn("feed cache set failed to marshal", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, feedCacheKey(limit, offset), data, feedCacheTTL).Err(); err != nil {
		c.logger.Warn("feed cache set failed", zap.Error(err))
	}
}

func (c *redisFeedCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, feedCachePrefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("feed cache invalidation failed", zap.Error(err))
	}
}
