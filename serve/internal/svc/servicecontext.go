package svc

import (
	"context"
	"fmt"
	"time"

	"github.com/HuXin0817/wood-block-puzzle/pkg/env"
	"github.com/HuXin0817/wood-block-puzzle/pkg/models/pusher"
	"github.com/HuXin0817/wood-block-puzzle/pkg/models/record"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/config"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// MoveEvent is one recorded move waiting to be flushed to MongoDB.
type MoveEvent struct {
	GameUid string
	Record  record.MoveRecord
}

type ServiceContext struct {
	Config      config.Config
	RedisClient *redis.Redis
	MovePusher  *pusher.Pusher[MoveEvent]
}

func NewServiceContext(c config.Config) *ServiceContext {
	if c.Redis.Pass == "" {
		c.Redis.Pass = env.RedisPassWord
	}

	if c.MongoConf.PassWord == "" {
		c.MongoConf.PassWord = env.MongoPassWord
	}
	c.MongoConf.Url = fmt.Sprintf(c.MongoConf.Url, c.MongoConf.PassWord)

	svcCtx := &ServiceContext{
		Config:      c,
		RedisClient: redis.MustNewRedis(c.Redis),
	}

	svcCtx.MovePusher = pusher.NewPusher(
		pusher.WithPushInterval[MoveEvent](time.Second),
		pusher.WithPushLogic(svcCtx.insertMoves),
	)
	svcCtx.MovePusher.Start()

	return svcCtx
}

// insertMoves writes a batch of move events into their per-game
// collections.
func (svcCtx *ServiceContext) insertMoves(events ...MoveEvent) error {
	for _, e := range events {
		model := record.NewMoveRecordModel(svcCtx.Config.MongoConf.Url, svcCtx.Config.MongoConf.DataBaseName, e.GameUid)
		if err := model.Insert(context.Background(), &e.Record); err != nil {
			return err
		}
	}
	return nil
}
