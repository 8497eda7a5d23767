// Package main starts the launch records dashboard.
package main

import (
	dashboardcmd "github.com/louisbranch/launchboard/internal/cmd/dashboard"
	entrypoint "github.com/louisbranch/launchboard/internal/platform/cmd"
)

func main() {
	entrypoint.Main(entrypoint.Command[dashboardcmd.Config]{
		Service: entrypoint.ServiceDashboard,
		Parse:   dashboardcmd.ParseConfig,
		Run:     dashboardcmd.Run,
	})
}
