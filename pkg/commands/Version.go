package commands

import (
	"fmt"

	"github.com/deskpilot/deskpilot/pkg/api"
	"github.com/deskpilot/deskpilot/pkg/command"
	"github.com/fatih/color"
)

func Version() {
	Commands = append(Commands,
		command.NewBuilder().Parent("deskpilot").Name("version").Function(
			func(a *api.Api, args []string) {
				fmt.Printf("deskpilot %s\n", color.New(color.FgGreen).Sprint(a.Version.String()))
			},
		).Build(),
	)
}
