package logic

import (
	"context"

	"github.com/HuXin0817/wood-block-puzzle/pkg/models/record"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/svc"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type RecordMoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewRecordMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RecordMoveLogic {
	return &RecordMoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *RecordMoveLogic) RecordMove(req *types.RecordMoveRequest) (*types.RecordMoveResponse, error) {
	if req.GameOver {
		endModel := record.NewGameEndRecordModel(
			l.svcCtx.Config.MongoConf.Url,
			l.svcCtx.Config.MongoConf.DataBaseName,
			req.GameUid,
		)
		if err := endModel.Insert(l.ctx, &record.GameEndRecord{
			Outcome:          req.Outcome,
			FinalScore:       req.FinalScore,
			BonusesCollected: req.BonusesCollected,
		}); err != nil {
			return nil, err
		}
		return &types.RecordMoveResponse{Ok: true}, nil
	}

	l.svcCtx.MovePusher.AddMessages(svc.MoveEvent{
		GameUid: req.GameUid,
		Record: record.MoveRecord{
			Step:        req.Step,
			Row:         req.Row,
			Col:         req.Col,
			PieceName:   req.PieceName,
			Strategy:    req.Strategy,
			ScoreAfter:  req.ScoreAfter,
			BonusesLeft: req.BonusesLeft,
		},
	})
	return &types.RecordMoveResponse{Ok: true}, nil
}
