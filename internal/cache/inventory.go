package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	LikeCountKeyPrefix = "content:%d:likes"
)

const (
	UserTTL      = 5 * time.Minute
	LikeCountTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func LikeCountKey(contentID uint) string {
	return fmt.Sprintf(LikeCountKeyPrefix, contentID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateLikeCount(ctx context.Context, contentID uint) {
	Invalidate(ctx, LikeCountKey(contentID))
}
