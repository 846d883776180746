package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/kgalang/ledgerbook/store"
)

type RemoveCmd struct {
	ID  int  `arg:"" help:"Identifier of the transaction to delete (see 'transactions')."`
	Yes bool `help:"Skip the confirmation prompt." short:"y"`
}

func (cmd *RemoveCmd) Run(ctx *kong.Context, globals *Globals) error {
	if !cmd.Yes {
		confirmed, err := promptYesNo(ctx, fmt.Sprintf("Delete transaction #%d?", cmd.ID))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "Aborted")
			return nil
		}
	}

	return globals.run(ctx, "remove", func(runCtx context.Context) error {
		err := globals.openStore().Delete(runCtx, cmd.ID)
		if errors.Is(err, store.ErrNotFound) {
			printWarning(ctx.Stderr, fmt.Sprintf("no transaction with id %d", cmd.ID))
			return nil
		}
		if err != nil {
			return err
		}

		printSuccess(ctx.Stdout, fmt.Sprintf("Deleted transaction #%d", cmd.ID))
		return nil
	})
}
