package registry

import (
	"fmt"
	"io"

	"github.com/argbind/argbind/pkg/bind"
	"github.com/argbind/argbind/pkg/signature"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Run is the top-level loop: it dispatches argv, prints help to stdout,
// converts every failure into a one-line diagnostic on stderr with a
// rerun hint, and invokes the matched command on a successful bind. It is
// the only place a failure becomes printed text.
func (r *Registry) Run(argv []string, stdout, stderr io.Writer) int {
	inv, err := r.Dispatch(argv)
	if err != nil {
		if help, ok := AsHelp(err); ok {
			fmt.Fprintln(stdout, help.Text)
			return ExitOK
		}
		fmt.Fprintf(stderr, "%s Run with ? or -h for more help.\n", diagnostic(err))
		return ExitUsage
	}
	if err := inv.Entry.Invoke(inv.Positional, inv.Named); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	return ExitOK
}

// diagnostic picks the user-facing message for an error kind, dropping
// the machine-readable code prefix.
func diagnostic(err error) string {
	if bindErr, ok := bind.AsError(err); ok {
		return bindErr.Message + "."
	}
	if regErr, ok := AsError(err); ok {
		return regErr.Message + "."
	}
	if cfgErr, ok := signature.AsConfigError(err); ok {
		return cfgErr.Message + "."
	}
	return err.Error() + "."
}
