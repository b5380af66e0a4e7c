package events

import "github.com/julianstephens/enduro/internal/cli"

func clitestFormat(f string) cli.OutputFlags {
	return cli.OutputFlags{Format: f}
}
