package handler

import (
	"net/http"

	"github.com/HuXin0817/wood-block-puzzle/serve/internal/logic"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/svc"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func NewGameHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.NewGameRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewNewGameLogic(r.Context(), svcCtx)
		resp, err := l.NewGame(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
