package logic

import (
	"context"
	"time"

	"github.com/HuXin0817/wood-block-puzzle/pkg/models/message"
	"github.com/HuXin0817/wood-block-puzzle/pkg/models/puzzle"
	"github.com/HuXin0817/wood-block-puzzle/pkg/models/record"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/svc"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type NewGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewNewGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *NewGameLogic {
	return &NewGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *NewGameLogic) NewGame(req *types.NewGameRequest) (*types.NewGameResponse, error) {
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	state := puzzle.NewGame(req.Difficulty, seed)
	snapshot, err := state.Snapshot()
	if err != nil {
		return nil, err
	}

	gameUid := message.NewGameUid()
	startModel := record.NewGameStartRecordModel(
		l.svcCtx.Config.MongoConf.Url,
		l.svcCtx.Config.MongoConf.DataBaseName,
		string(gameUid),
	)
	if err := startModel.Insert(l.ctx, &record.GameStartRecord{
		GameUid:    gameUid,
		Difficulty: state.Difficulty,
		BoardSize:  state.Board.Size,
		Seed:       seed,
	}); err != nil {
		return nil, err
	}

	return &types.NewGameResponse{
		GameUid: string(gameUid),
		State:   snapshot,
	}, nil
}
