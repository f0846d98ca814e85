package cache

import (
	"sync"

	"github.com/redis/go-redis/v9"

	"privateChat/configs"
)

var (
	client *redis.Client
	once   sync.Once
)

func GetRedis(config *configs.Config) *redis.Client {
	once.Do(func() {
		client = redis.NewClient(&redis.Options{
			Addr: config.Viper.GetString("redis.addr"),
		})
	})
	return client
}
