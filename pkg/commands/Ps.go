package commands

import (
	"context"
	"fmt"

	"github.com/deskpilot/deskpilot/pkg/api"
	"github.com/deskpilot/deskpilot/pkg/command"
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Ps() {
	Commands = append(Commands,
		command.NewBuilder().Parent("deskpilot").Name("ps").DependsOn(loadConfiguration).Function(cmdPs).Flags(cmdPsFlags).Build(),
	)
}

func cmdPsFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("all", "a", false, "Include stopped containers in the listing")
}

func cmdPs(a *api.Api, args []string) {
	containers := a.Docker.List(context.Background(), viper.GetBool("all"))

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("NAME", "IMAGE", "STATUS", "PORTS", "CREATED")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	for _, container := range containers {
		ports := container.Ports

		if ports == "" {
			ports = "-"
		}

		tbl.AddRow(container.Names, container.Image, container.Status, ports, container.CreatedAt)
	}

	tbl.Print()

	if len(containers) == 0 {
		fmt.Println("no containers found")
	}
}
