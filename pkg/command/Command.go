package command

import (
	"github.com/deskpilot/deskpilot/pkg/api"
	"github.com/spf13/cobra"
)

var (
	EmptyCondition = func(*api.Api) bool { return true }
	EmptyFlag      = func(cmd *cobra.Command) {}
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "deskpilot",
		Short: "Deskpilot local automation backend",
	}
}
