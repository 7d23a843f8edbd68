package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HuXin0817/wood-block-puzzle/pkg/advisor"
	"github.com/HuXin0817/wood-block-puzzle/pkg/models/message"
	"github.com/HuXin0817/wood-block-puzzle/pkg/models/model"
	"github.com/HuXin0817/wood-block-puzzle/pkg/models/puzzle"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/svc"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

var ErrBoardSizeOutOfRange = errors.New("board size out of range")

type SuggestMoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewSuggestMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SuggestMoveLogic {
	return &SuggestMoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *SuggestMoveLogic) SuggestMove(req *types.SuggestMoveRequest) (*types.SuggestMoveResponse, error) {
	state, err := puzzle.RestoreSnapshot(req.State)
	if err != nil {
		return nil, fmt.Errorf("%w: bad state snapshot: %v", advisor.ErrInvalidConfiguration, err)
	}
	if state.Board.Size > 10 {
		return nil, ErrBoardSizeOutOfRange
	}

	key := message.SuggestKey{
		GameUid:  message.GameUid(req.GameUid),
		Step:     req.Step,
		Strategy: req.Strategy,
	}

	if cached, err := l.svcCtx.RedisClient.Get(key.String()); err == nil && cached != "" {
		value, err := message.NewSuggestValue(cached)
		if err == nil {
			return &types.SuggestMoveResponse{
				Row:       value.Action.Row,
				Col:       value.Action.Col,
				PieceName: value.Action.Piece.Name,
				Cached:    true,
			}, nil
		}
	}

	maxExpansions := req.MaxExpansions
	if maxExpansions <= 0 {
		maxExpansions = l.svcCtx.Config.Search.MaxExpansions
	}

	move, err := advisor.SuggestMove(state, advisor.Request{
		Strategy:      req.Strategy,
		Heuristic:     req.Heuristic,
		Weight:        req.Weight,
		MaxExpansions: maxExpansions,
	})
	if err != nil {
		return nil, err
	}

	value := message.SuggestValue{Action: move, At: message.NewTimeStamp(time.Now())}
	lock := model.NewLock(l.svcCtx.RedisClient, fmt.Sprintf("%s-Lock", key.String()))
	if err := lock.Do(func() error {
		return l.svcCtx.RedisClient.Setex(key.String(), value.String(), l.svcCtx.Config.Search.CacheExpireSec)
	}); err != nil {
		l.Errorf("cache suggestion: %v", err)
	}

	return &types.SuggestMoveResponse{
		Row:       move.Row,
		Col:       move.Col,
		PieceName: move.Piece.Name,
	}, nil
}
