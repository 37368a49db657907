package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the root command with args and an absent config file.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := NewRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yml")}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	rootCmd := NewRootCmd()

	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "search", "facets", "export"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	_, err := runCmd(t, "--log-level", "loud", "facets", "experts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestRootCmd_MissingDataFile(t *testing.T) {
	_, err := runCmd(t, "--data", filepath.Join(t.TempDir(), "absent.yaml"), "search", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start directory")
}

func TestSearchCmd_RequiresKeyword(t *testing.T) {
	_, err := runCmd(t, "search")
	require.Error(t, err)
}

func TestSearchCmd_PrintsPartitions(t *testing.T) {
	out, err := runCmd(t, "search", "反垄断")
	require.NoError(t, err)

	assert.Contains(t, out, "关键字 “反垄断” 的搜索结果：")
	assert.Contains(t, out, "专家 (3)")
	assert.Contains(t, out, "张三 (Zhang San) - 中国社会科学院")
	assert.Contains(t, out, "案例 (0)")
	assert.Contains(t, out, "暂无匹配结果")
}

func TestSearchCmd_WhitespaceKeywordPrompts(t *testing.T) {
	out, err := runCmd(t, "search", "   ")
	require.NoError(t, err)
	assert.Equal(t, "请输入关键字进行搜索。\n", out)
}

func TestSearchCmd_JSON(t *testing.T) {
	out, err := runCmd(t, "search", "--json", "Wang")
	require.NoError(t, err)
	assert.Contains(t, out, `"query": "Wang"`)
	assert.Contains(t, out, `"name_en": "Wang Wu"`)
}

func TestFacetsCmd(t *testing.T) {
	out, err := runCmd(t, "facets", "lawcase")
	require.NoError(t, err)

	assert.Equal(t, "category (scalar)\n  全部\n  中国\n  价格垄断\n  平台经济\n  并购审查\n  欧盟\n  美国\n", out)

	_, err = runCmd(t, "facets", "news")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "news")
}

func TestExportCmd(t *testing.T) {
	_, err := runCmd(t, "export")
	require.Error(t, err, "--out is required")

	path := filepath.Join(t.TempDir(), "directory.gob")
	out, err := runCmd(t, "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "embedded seed")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// The snapshot is a valid dataset for later runs.
	out, err = runCmd(t, "--data", path, "search", "Zhao")
	require.NoError(t, err)
	assert.Contains(t, out, "赵六 (Zhao Liu)")
}

func TestServeCmd_RejectsBadPort(t *testing.T) {
	_, err := runCmd(t, "serve", "--port", "70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}
