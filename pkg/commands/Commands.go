package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/deskpilot/deskpilot/pkg/api"
	"github.com/deskpilot/deskpilot/pkg/command"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var Commands []command.Engine

func PreloadCommands() {
	Start()
	Version()
	Ps()
	Rm()
}

func Run(a *api.Api, c *cobra.Command) {
	c.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
	})

	c.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Printf("error: %s\n\n", err)
		_ = c.Usage()
		return nil
	})

	c.SetArgs(os.Args[1:])

	c.Run = func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			fmt.Printf("unknown command: %s\n", strings.Join(args, " "))
		}
		_ = cmd.Usage()
	}

	Register(a, c)

	_ = c.Execute()
}

// Register attaches every preloaded command to the root, each carrying its
// own flag set so subcommand flags survive cobra's parsing.
func Register(a *api.Api, c *cobra.Command) {
	for _, cmd := range Commands {
		cobraCmd := &cobra.Command{
			Use:   cmd.Name,
			Short: fmt.Sprintf("%s %s", cmd.Parent, cmd.Name),
			Args:  cmd.Args,
			PreRunE: func(c *cobra.Command, args []string) error {
				if !cmd.Condition(a) {
					return fmt.Errorf("condition failed for command %s", c.Use)
				}

				for _, dep := range cmd.DependsOn {
					dep(a, args)
				}

				return nil
			},
			Run: func(c *cobra.Command, args []string) {
				c.Flags().VisitAll(func(flag *pflag.Flag) {
					if err := viper.BindPFlag(flag.Name, flag); err != nil {
						fmt.Printf("warning: failed to bind flag '%s': %s\n", flag.Name, err)
						os.Exit(1)
					}
				})

				for _, fn := range cmd.Functions {
					fn(a, args)
				}
			},
		}

		cmd.Flags(cobraCmd)

		if cmd.Parent == "deskpilot" || cmd.Parent == "" {
			c.AddCommand(cobraCmd)
		} else {
			parent := findCommand(c, cmd.Parent)

			if parent != nil {
				parent.AddCommand(cobraCmd)
			} else {
				fmt.Printf("warning: parent command '%s' not found for '%s'\n", cmd.Parent, cmd.Name)
			}
		}
	}
}

func findCommand(cmd *cobra.Command, name string) *cobra.Command {
	if cmd.Use == name {
		return cmd
	}
	for _, c := range cmd.Commands() {
		if result := findCommand(c, name); result != nil {
			return result
		}
	}
	return nil
}
