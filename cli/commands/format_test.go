package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarketSquare/robotfmt/cli/internal/config"
	"github.com/MarketSquare/robotfmt/rfl"
)

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	oldFs := config.AppFs
	config.AppFs = afero.NewMemMapFs()
	t.Cleanup(func() { config.AppFs = oldFs })
	return config.AppFs
}

func TestResolveFilesFindsRobotFiles(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "suite.robot", []byte(""), 0644))
	require.NoError(t, afero.WriteFile(fs, "keywords.resource", []byte(""), 0644))
	require.NoError(t, afero.WriteFile(fs, "notes.txt", []byte(""), 0644))
	require.NoError(t, afero.WriteFile(fs, "nested/inner.robot", []byte(""), 0644))

	files, err := resolveFiles(nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"suite.robot", "keywords.resource", "nested/inner.robot"}, files)
}

func TestResolveFilesKeepsExplicitArguments(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "suite.robot", []byte(""), 0644))

	files, err := resolveFiles([]string{"suite.robot"})
	require.NoError(t, err)
	assert.Equal(t, []string{"suite.robot"}, files)

	_, err = resolveFiles([]string{"missing.robot"})
	assert.Error(t, err)
}

func TestFormatFileWritesAlignedOutput(t *testing.T) {
	fs := useMemFs(t)
	src := "*** Test Cases ***\n" +
		"My Test\n" +
		"    Log    message\n" +
		"    ExtendedLog    message\n"
	require.NoError(t, afero.WriteFile(fs, "suite.robot", []byte(src), 0644))

	changed, err := formatFile("suite.robot", rfl.DefaultConfig(), nil, &formatOptions{})
	require.NoError(t, err)
	assert.True(t, changed)

	content, err := afero.ReadFile(fs, "suite.robot")
	require.NoError(t, err)
	want := "*** Test Cases ***\n" +
		"My Test\n" +
		"    Log             message\n" +
		"    ExtendedLog     message\n"
	assert.Equal(t, want, string(content))

	// A second run is a no-op.
	changed, err = formatFile("suite.robot", rfl.DefaultConfig(), nil, &formatOptions{})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestFormatFileCheckModeLeavesFileAlone(t *testing.T) {
	fs := useMemFs(t)
	src := "*** Test Cases ***\nMy Test\n    Log  hi\n"
	require.NoError(t, afero.WriteFile(fs, "suite.robot", []byte(src), 0644))

	changed, err := formatFile("suite.robot", rfl.DefaultConfig(), nil, &formatOptions{check: true})
	require.NoError(t, err)
	assert.True(t, changed)

	content, err := afero.ReadFile(fs, "suite.robot")
	require.NoError(t, err)
	assert.Equal(t, src, string(content))
}

func TestFormatFileDiffModeLeavesFileAlone(t *testing.T) {
	fs := useMemFs(t)
	src := "*** Test Cases ***\nMy Test\n    Log  hi\n"
	require.NoError(t, afero.WriteFile(fs, "suite.robot", []byte(src), 0644))

	changed, err := formatFile("suite.robot", rfl.DefaultConfig(), nil, &formatOptions{diff: true})
	require.NoError(t, err)
	assert.True(t, changed)

	content, err := afero.ReadFile(fs, "suite.robot")
	require.NoError(t, err)
	assert.Equal(t, src, string(content))
}

func TestIsRobotFile(t *testing.T) {
	assert.True(t, isRobotFile("suite.robot"))
	assert.True(t, isRobotFile("keywords.resource"))
	assert.True(t, isRobotFile("SUITE.ROBOT"))
	assert.False(t, isRobotFile("main.go"))
	assert.False(t, isRobotFile("robot"))
}
