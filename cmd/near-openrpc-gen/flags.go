package main

import (
	"github.com/urfave/cli"
)

var (
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}

	VerbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 4,
		Usage: "Logging verbosity: 0=panic, 1=fatal, 2=error, 3=warn, 4=info, 5=debug, 6=trace",
	}

	SourceFlag = cli.StringFlag{
		Name:  "source",
		Usage: "Path of the OpenRPC document (JSON or YAML)",
	}

	URLFlag = cli.StringFlag{
		Name:  "url",
		Usage: "URL the fetch command downloads the OpenRPC document from",
	}

	PatchFlag = cli.StringSliceFlag{
		Name:  "patch",
		Usage: "JSON Patch file applied to the document before transforming (repeatable)",
	}

	DiscriminatorFlag = cli.StringSliceFlag{
		Name:  "discriminator",
		Usage: "Property whose single-value enum tags a request variant (repeatable)",
	}

	PackageFlag = cli.StringFlag{
		Name:  "package",
		Usage: "Package name of the generated file",
	}

	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "Path of the generated Go file",
	}

	SchemaOutputFlag = cli.StringFlag{
		Name:  "schema-output",
		Usage: "Path of the transformed JSON Schema, - for stdout",
	}

	AppFlags = []cli.Flag{
		ConfigFlag,
		VerbosityFlag,
		SourceFlag,
		URLFlag,
		PatchFlag,
		DiscriminatorFlag,
		PackageFlag,
		OutputFlag,
		SchemaOutputFlag,
	}
)
