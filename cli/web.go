package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/kgalang/ledgerbook/store"
	"github.com/kgalang/ledgerbook/web"
)

type WebCmd struct {
	Port     int    `help:"Port to listen on." default:"8179"`
	Host     string `help:"Host to bind to. Keep this on localhost: the server has no authentication." default:"127.0.0.1"`
	Watch    bool   `help:"Reload automatically when the ledger file changes on disk." default:"true" negatable:""`
	ReadOnly bool   `help:"Reject write requests."`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	chart, err := globals.loadChart()
	if err != nil {
		return err
	}

	st := store.New(globals.File, store.WithLogf(func(format string, args ...interface{}) {
		printWarning(ctx.Stderr, fmt.Sprintf(format, args...))
	}))

	return globals.run(ctx, "web", func(runCtx context.Context) error {
		server := web.New(st, chart)
		server.Host = cmd.Host
		server.Port = cmd.Port
		server.ReadOnly = cmd.ReadOnly
		server.WatchEnabled = cmd.Watch
		server.Version = Version

		printInfof(ctx.Stdout, "Serving %s on http://%s:%d", globals.File, cmd.Host, cmd.Port)
		return server.Start(runCtx)
	})
}
