package main

import (
	"os"

	"github.com/chazuruo/soon/internal/cli"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func main() {
	os.Exit(cli.Execute(os.Args[1:], cli.OSEnv(), cli.BuildInfo{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}))
}
