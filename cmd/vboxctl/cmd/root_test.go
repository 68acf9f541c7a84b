package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielgindi/go-vboxmanage/pkg/vbox"
)

func TestParseOptions(t *testing.T) {
	opts := parseOptions([]string{"memory=2048", "register", "description=hello=world"})
	assert.Equal(t, []vbox.Option{
		vbox.Opt("memory", "2048"),
		vbox.Flag("register"),
		// Only the first '=' splits; values keep theirs.
		vbox.Opt("description", "hello=world"),
	}, opts)
}

func TestParseOptionsEmpty(t *testing.T) {
	assert.Empty(t, parseOptions(nil))
}
