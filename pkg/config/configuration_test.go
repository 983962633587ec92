// Copyright 2025 RowBridge Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowbridge/rowbridge/pkg/common/rberr"
)

func TestSetDefaultValues(t *testing.T) {
	var cfg Configuration
	cfg.SetDefaultValues()
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
	require.Equal(t, `\N`, cfg.Scan.NullPartitionValue)
	require.Equal(t, int64(4000), cfg.Scan.BatchReadRows)
}

func TestLoadConfigurationFromFile(t *testing.T) {
	content := `
[log]
level = "debug"
format = "json"

[scan]
nullPartitionValue = "NULL"
defaultTimeZone = "UTC"
batchReadRows = 128
`
	fname := filepath.Join(t.TempDir(), "rowbridge.toml")
	require.NoError(t, os.WriteFile(fname, []byte(content), 0o644))

	var cfg Configuration
	require.NoError(t, LoadConfigurationFromFile(fname, &cfg))
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "NULL", cfg.Scan.NullPartitionValue)
	require.Equal(t, "UTC", cfg.Scan.DefaultTimeZone)
	require.Equal(t, int64(128), cfg.Scan.BatchReadRows)

	// defaults survive for keys the file does not set
	require.Equal(t, 512, cfg.Log.MaxSize)
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	var cfg Configuration
	err := LoadConfigurationFromFile(filepath.Join(t.TempDir(), "no-such.toml"), &cfg)
	require.Error(t, err)
	require.True(t, rberr.IsErrCode(err, rberr.ErrBadConfig))
}

func TestLoadConfigurationEmptyName(t *testing.T) {
	var cfg Configuration
	require.NoError(t, LoadConfigurationFromFile("", &cfg))
	require.Equal(t, "info", cfg.Log.Level)
}
