package commands

import (
	"testing"

	"github.com/deskpilot/deskpilot/pkg/api"
	"github.com/deskpilot/deskpilot/pkg/command"
	"github.com/deskpilot/deskpilot/pkg/configuration"
	"github.com/deskpilot/deskpilot/pkg/version"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func registeredRoot() *cobra.Command {
	Commands = nil
	PreloadCommands()

	a := api.NewApi(configuration.NewConfig())
	a.Version = version.New("test")

	root := command.New()
	Register(a, root)

	return root
}

func TestRegisterBuildsCommandTree(t *testing.T) {
	root := registeredRoot()

	for _, name := range []string{"start", "version", "ps", "rm"} {
		assert.NotNil(t, findCommand(root, name), name)
	}
}

func TestSubcommandShortFlagsParse(t *testing.T) {
	root := registeredRoot()

	rm := findCommand(root, "rm")
	assert.NotNil(t, rm.Flags().ShorthandLookup("f"))
	assert.NoError(t, rm.ParseFlags([]string{"-f"}))

	force, err := rm.Flags().GetBool("force")
	assert.NoError(t, err)
	assert.True(t, force)

	ps := findCommand(root, "ps")
	assert.NotNil(t, ps.Flags().ShorthandLookup("a"))
	assert.NoError(t, ps.ParseFlags([]string{"-a"}))
}

func TestStartCarriesItsFlags(t *testing.T) {
	start := findCommand(registeredRoot(), "start")

	assert.NotNil(t, start.Flags().Lookup("wait-daemon"))
}
