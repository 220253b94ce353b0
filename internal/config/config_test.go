// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `colors:
  added: "#00ff00"
  removed: "#ff0000"
padding: 4
diff:
  format: cargo
  sets:
    defaults:
      - "--summary"
      - "--verbose"
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lockdiff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))
	t.Setenv("LOCKDIFF_CFG_FILE", path)

	_, err := Load()
	require.NoError(t, err)
	t.Cleanup(func() {
		Config = Type{}
	})
}

func TestLoad(t *testing.T) {
	writeTestConfig(t)

	assert.NotEmpty(t, Config.Source)
	assert.NotEmpty(t, Config.Data)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("LOCKDIFF_CFG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestGetString(t *testing.T) {
	writeTestConfig(t)

	tests := []struct {
		name       string
		key        string
		namespace  string
		defaultVal []string
		want       string
		wantErr    bool
	}{
		{name: "nested key", key: "colors.added", want: "#00ff00"},
		{name: "namespaced key preferred", key: "format", namespace: "diff", want: "cargo"},
		{name: "missing key with default", key: "colors.bogus", defaultVal: []string{"#ffffff"}, want: "#ffffff"},
		{name: "missing key without default", key: "colors.bogus", wantErr: true},
		{name: "non-string value", key: "padding", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Config.Namespace = tt.namespace

			got, err := GetString(tt.key, tt.defaultVal...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	writeTestConfig(t)

	got, err := GetInt("padding")
	assert.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = GetInt("bogus", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = GetInt("colors.added")
	assert.Error(t, err)
}

func TestGetStringSlice(t *testing.T) {
	writeTestConfig(t)

	Config.Namespace = "diff"
	got, err := GetStringSlice("sets.defaults")
	assert.NoError(t, err)
	assert.Equal(t, []string{"--summary", "--verbose"}, got)

	Config.Namespace = ""
	_, err = GetStringSlice("sets.defaults")
	assert.Error(t, err)

	fallback := []string{"x"}
	got, err = GetStringSlice("sets.defaults", fallback)
	assert.NoError(t, err)
	assert.Equal(t, fallback, got)
}
