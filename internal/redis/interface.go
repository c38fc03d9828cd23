package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client wraps redis.UniversalClient so repositories depend on this package
// rather than on go-redis directly
type Client interface {
	redis.UniversalClient
}
