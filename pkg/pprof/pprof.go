// Package pprof starts a gin side-server exposing profiling endpoints.
// Import it for side effect from long-running mains.
package pprof

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

func run() {
	router := gin.Default()
	pprof.Register(router)

	addr := os.Getenv("PPROF_ADDR")
	if addr == "" {
		addr = fmt.Sprintf("localhost:%d", rand.New(rand.NewSource(time.Now().UnixNano())).Intn(0xffff))
	}

	if err := router.Run(addr); err != nil {
		run()
	}
	time.Sleep(time.Second)
}

func init() {
	go run()
}
