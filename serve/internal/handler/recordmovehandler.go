package handler

import (
	"net/http"

	"github.com/HuXin0817/wood-block-puzzle/serve/internal/logic"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/svc"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func RecordMoveHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RecordMoveRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewRecordMoveLogic(r.Context(), svcCtx)
		resp, err := l.RecordMove(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
