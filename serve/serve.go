package main

import (
	"flag"
	"fmt"

	_ "github.com/HuXin0817/wood-block-puzzle/pkg/pprof"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/config"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/handler"
	"github.com/HuXin0817/wood-block-puzzle/serve/internal/svc"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/serve.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	ctx := svc.NewServiceContext(c)
	defer ctx.MovePusher.Stop()

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
