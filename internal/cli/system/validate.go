package system

import (
	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/validation"
)

type ValidateCmd struct {
	cli.OutputFlags
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	state, err := ctx.State()
	if err != nil {
		return err
	}

	result := validation.New().ValidateState(state)
	if ok, err := ctx.Emit(c.OutputFlags, result); ok {
		return err
	}

	ctx.Printf("Validated %d events and %d check-ins.\n\n", len(state.Events), len(state.Checkins))
	// Conflicts are reported, not returned; fixing them is up to the user.
	ctx.Println(result.FormatReport())
	return nil
}
