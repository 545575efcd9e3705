package configpaths_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padforge/padforge/internal/configpaths"
)

func TestConfigCandidatePathsDefaults(t *testing.T) {
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths("")

	require.NotEmpty(t, jsonPaths)
	require.NotEmpty(t, yamlPaths)
	require.NotEmpty(t, tomlPaths)

	for _, p := range jsonPaths {
		assert.Equal(t, "padforge.json", filepath.Base(p))
	}
	for _, p := range yamlPaths {
		base := filepath.Base(p)
		assert.Contains(t, []string{"padforge.yaml", "padforge.yml"}, base)
	}
	for _, p := range tomlPaths {
		assert.Equal(t, "padforge.toml", filepath.Base(p))
	}
}

func TestConfigCandidatePathsUserOverride(t *testing.T) {
	type testCase struct {
		name   string
		in     string
		pick   func(j, y, tm []string) []string
		others func(j, y, tm []string) [][]string
	}

	cases := []testCase{
		{
			name: "yaml",
			in:   "/tmp/custom.yaml",
			pick: func(j, y, tm []string) []string { return y },
			others: func(j, y, tm []string) [][]string {
				return [][]string{j, tm}
			},
		},
		{
			name: "yml",
			in:   "/tmp/custom.yml",
			pick: func(j, y, tm []string) []string { return y },
			others: func(j, y, tm []string) [][]string {
				return [][]string{j, tm}
			},
		},
		{
			name: "toml",
			in:   "/tmp/custom.toml",
			pick: func(j, y, tm []string) []string { return tm },
			others: func(j, y, tm []string) [][]string {
				return [][]string{j, y}
			},
		},
		{
			name: "json fallback",
			in:   "/tmp/custom.conf",
			pick: func(j, y, tm []string) []string { return j },
			others: func(j, y, tm []string) [][]string {
				return [][]string{y, tm}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j, y, tm := configpaths.ConfigCandidatePaths(tc.in)

			// Explicit config lands last in its format's list so it wins.
			got := tc.pick(j, y, tm)
			require.NotEmpty(t, got)
			assert.Equal(t, tc.in, got[len(got)-1])

			for _, other := range tc.others(j, y, tm) {
				assert.NotContains(t, other, tc.in)
			}
		})
	}
}
