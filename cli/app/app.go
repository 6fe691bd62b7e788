// Package app assembles the nimiq-rpc CLI application.
package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/nimiq-community/nimiq-go/cli/query"
	"github.com/urfave/cli"
)

// Version is the version of the tool, set at build time.
var Version string

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "nimiq-rpc\nVersion: %s\nGoVersion: %s\n",
		Version,
		runtime.Version(),
	)
}

// New creates a nimiq-rpc instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "nimiq-rpc"
	ctl.Version = Version
	ctl.Usage = "query tool for the Nimiq node JSON-RPC interface"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, query.NewCommands()...)
	return ctl
}
