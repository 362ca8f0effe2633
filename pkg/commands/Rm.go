package commands

import (
	"context"
	"fmt"

	"github.com/deskpilot/deskpilot/internal/helpers"
	"github.com/deskpilot/deskpilot/pkg/api"
	"github.com/deskpilot/deskpilot/pkg/command"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Rm() {
	Commands = append(Commands,
		command.NewBuilder().Parent("deskpilot").Name("rm").Args(cobra.ExactArgs(1)).DependsOn(loadConfiguration).Function(cmdRm).Flags(cmdRmFlags).Build(),
	)
}

func cmdRmFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("force", "f", false, "Skip confirmation and force the removal")
}

func cmdRm(a *api.Api, args []string) {
	name := args[0]
	force := viper.GetBool("force")

	if !force {
		if !helpers.Confirm(fmt.Sprintf("remove container %s", name)) {
			fmt.Println("aborted")
			return
		}
	}

	result := a.Docker.Remove(context.Background(), name, force)

	if result.Success() {
		fmt.Printf("%s %s\n", color.New(color.FgGreen).Sprint("removed"), name)
	} else {
		fmt.Printf("%s %s: %s\n", color.New(color.FgRed).Sprint("failed to remove"), name, result.Stderr())
	}
}
