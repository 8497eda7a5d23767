// Package main imports a launch records CSV into SQLite.
package main

import (
	launchimportcmd "github.com/louisbranch/launchboard/internal/cmd/launchimport"
	entrypoint "github.com/louisbranch/launchboard/internal/platform/cmd"
)

func main() {
	entrypoint.Main(entrypoint.Command[launchimportcmd.Config]{
		Service: entrypoint.ServiceLaunchImport,
		Parse:   launchimportcmd.ParseConfig,
		Run:     launchimportcmd.Run,
	})
}
