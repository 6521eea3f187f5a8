package cmd

import (
	"bytes"
	"testing"

	"github.com/eallis/wiifolio/internal/version"
	"github.com/stretchr/testify/assert"
)

func TestPrintVersion(t *testing.T) {
	origWriter := versionOutputWriter
	origVersion := version.Version
	defer func() {
		versionOutputWriter = origWriter
		version.Version = origVersion
	}()

	var buf bytes.Buffer
	versionOutputWriter = &buf
	version.Version = "1.2.3"
	PrintVersion()
	assert.Equal(t, "wiifolio 1.2.3\n", buf.String())
}

func TestHelpTextListsRegisteredCommands(t *testing.T) {
	SetPageNames([]string{"home", "projects"})
	defer SetPageNames(nil)

	text := helpText(RootCmd)
	assert.Contains(t, text, "version")
	assert.Contains(t, text, "Show version information")
	assert.Contains(t, text, "home, projects")
	assert.NotContains(t, text, "settings ")
}
