package main

import (
	"context"

	"github.com/mbelyaev/taskkeeper/internal/client/cli"
	"github.com/mbelyaev/taskkeeper/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)
	app.Run(ctx)
}
