package config

import (
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	Redis     redis.RedisConf
	MongoConf struct {
		Url          string
		DataBaseName string
		PassWord     string `json:",optional"`
	}
	Search struct {
		MaxExpansions  int `json:",default=20000"`
		CacheExpireSec int `json:",default=600"`
	}
}
