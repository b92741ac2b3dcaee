// Package cli implements the interactive TaskKeeper command-line client: a
// small REPL over the server's HTTP API.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/mbelyaev/taskkeeper/internal/client/api"
	"github.com/mbelyaev/taskkeeper/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *api.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
