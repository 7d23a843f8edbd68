package model

import (
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const acquireRetryInterval = time.Second / 5

type RedisLock struct {
	*redis.RedisLock
}

func NewLock(rds *redis.Redis, lockName string) *RedisLock {
	return &RedisLock{
		RedisLock: redis.NewRedisLock(rds, lockName),
	}
}

// Do runs f while holding the lock.
func (l *RedisLock) Do(f func() error) error {
	if err := l.Lock(); err != nil {
		return err
	}

	if err := f(); err != nil {
		return err
	}

	return l.UnLock()
}

func (l *RedisLock) Lock() error {
	acquire, err := l.Acquire()
	if err != nil {
		return err
	}

	if !acquire {
		time.Sleep(acquireRetryInterval)
		return l.Lock()
	}

	return nil
}

func (l *RedisLock) UnLock() error {
	release, err := l.Release()
	if err != nil {
		return err
	}

	if !release {
		time.Sleep(acquireRetryInterval)
		return l.UnLock()
	}

	return nil
}
