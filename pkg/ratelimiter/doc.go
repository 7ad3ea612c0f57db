// Package ratelimiter provides a token bucket limiter with a pluggable
// Store and an HTTP middleware.
//
// Each key owns a bucket holding up to Capacity tokens. RefillRate tokens
// are added every RefillInterval. A request costs one token by default;
// callers that do variable work, such as generating a batch of names, can
// charge more through AllowN or a middleware CostFunc.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP))
package ratelimiter
