package handler

import (
	"net/http"

	"github.com/HuXin0817/wood-block-puzzle/serve/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodPost,
			Path:    "/game/new",
			Handler: NewGameHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/move/suggest",
			Handler: SuggestMoveHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/game/record",
			Handler: RecordMoveHandler(serverCtx),
		},
	})
}
