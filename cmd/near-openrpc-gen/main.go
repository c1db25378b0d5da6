// Command near-openrpc-gen turns the NEAR OpenRPC document into a JSON Schema
// and Go types.
package main

import (
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/urfave/cli"
)

var (
	App = NewApp()
)

func init() {
	App.Flags = AppFlags
	App.Commands = []cli.Command{
		CheckCommand,
		FetchCommand,
		GenerateCommand,
		SchemaCommand,
	}
	sort.Sort(cli.CommandsByName(App.Commands))
	App.Before = func(ctx *cli.Context) error {
		v := ctx.GlobalInt(VerbosityFlag.Name)
		if v < int(log.PanicLevel) || v > int(log.TraceLevel) {
			return fmt.Errorf("verbosity %d out of range 0-6", v)
		}
		log.SetLevel(log.Level(v))
		log.SetOutput(os.Stderr)
		return nil
	}
}

// NewApp creates the near-openrpc-gen cli application with its flags and commands.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "near-openrpc-gen"
	app.Usage = "generate Go types from the NEAR OpenRPC document"
	app.Version = "0.1.0"
	return app
}

func main() {
	if err := App.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
