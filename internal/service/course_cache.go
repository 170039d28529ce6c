package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	courseListKey      = "courses:all"
	courseViewKeyFmt   = "courses:view:%d"
	courseCacheTTL     = 5 * time.Minute
	courseCacheTimeout = 500 * time.Millisecond
)

// CourseCache is a redis read cache for assembled course views. A nil
// client degrades to a pass-through (used in tests).
type CourseCache struct {
	rdb *redis.Client
}

func NewCourseCache(rdb *redis.Client) *CourseCache {
	return &CourseCache{rdb: rdb}
}

func (c *CourseCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, courseCacheTimeout)
	defer cancel()

	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func (c *CourseCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, courseCacheTimeout)
	defer cancel()
	c.rdb.Set(ctx, key, data, courseCacheTTL)
}

// InvalidateCourse drops the course's cached view and the list cache.
func (c *CourseCache) InvalidateCourse(ctx context.Context, courseID uint) {
	if c == nil || c.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, courseCacheTimeout)
	defer cancel()
	c.rdb.Del(ctx, fmt.Sprintf(courseViewKeyFmt, courseID), courseListKey)
}
