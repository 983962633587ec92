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
	"github.com/BurntSushi/toml"

	"github.com/rowbridge/rowbridge/pkg/common/rberr"
	"github.com/rowbridge/rowbridge/pkg/container/types"
	"github.com/rowbridge/rowbridge/pkg/logutil"
)

const (
	defaultNullPartitionValue = "\\N"
	defaultBatchReadRows      = 4000
)

// ScanParameters configures how one data split is read.
type ScanParameters struct {
	// NullPartitionValue is the raw string a prefilled column reads as null.
	NullPartitionValue string `toml:"nullPartitionValue"`

	// DefaultTimeZone is the zone packed into prefilled timestamp-with-zone
	// values.  Empty keeps the host zone.  Historically this was silently
	// taken from the process environment; it is explicit configuration now.
	DefaultTimeZone string `toml:"defaultTimeZone"`

	// BatchReadRows is the row count fetched per read from a text file.
	BatchReadRows int64 `toml:"batchReadRows"`
}

// Configuration is the root of the toml configuration file.
type Configuration struct {
	Log  logutil.LogConfig `toml:"log"`
	Scan ScanParameters    `toml:"scan"`
}

func (c *Configuration) SetDefaultValues() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.MaxSize == 0 {
		c.Log.MaxSize = 512
	}
	if c.Scan.NullPartitionValue == "" {
		c.Scan.NullPartitionValue = defaultNullPartitionValue
	}
	if c.Scan.BatchReadRows == 0 {
		c.Scan.BatchReadRows = defaultBatchReadRows
	}
}

// LoadConfigurationFromFile decodes fname over the defaults.
func LoadConfigurationFromFile(fname string, cfg *Configuration) error {
	cfg.SetDefaultValues()
	if fname == "" {
		return nil
	}
	if _, err := toml.DecodeFile(fname, cfg); err != nil {
		return rberr.NewBadConfigf("parse config file %s: %v", fname, err)
	}
	return nil
}

// Apply pushes the configuration into the process-wide state: the logger
// and the default time zone.
func (c *Configuration) Apply() error {
	logutil.SetupLogger(&c.Log)
	if c.Scan.DefaultTimeZone != "" {
		if _, err := types.SetDefaultZone(c.Scan.DefaultTimeZone); err != nil {
			return err
		}
	}
	return nil
}
