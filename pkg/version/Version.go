package version

import "strings"

type Version struct {
	Node string
}

func New(version string) *Version {
	return &Version{
		Node: strings.TrimSpace(version),
	}
}

func (v *Version) String() string {
	if v.Node == "" {
		return "dev"
	}

	return v.Node
}
