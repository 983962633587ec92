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

package types

import (
	"sync"
	gotime "time"

	"github.com/rowbridge/rowbridge/pkg/common/rberr"
)

// ZoneKey identifies a time zone in the process-wide registry.  Keys fit in
// the low 12 bits of a packed Timestamp, so at most 4095 distinct zones can
// be registered.  Key 0 is the unset sentinel and never names a zone.
type ZoneKey uint16

const (
	ZoneUnset  ZoneKey = 0
	maxZoneKey         = 1<<12 - 1
)

var zoneRegistry = struct {
	sync.RWMutex
	names []string
	keys  map[string]ZoneKey
}{
	// slot 0 is the ZoneUnset sentinel
	names: []string{"", "UTC"},
	keys:  map[string]ZoneKey{"UTC": 1},
}

// ZoneUTC is always registered.
const ZoneUTC ZoneKey = 1

var defaultZone = struct {
	sync.RWMutex
	key ZoneKey
}{key: ZoneUTC}

func init() {
	// the process default starts from the host zone; SetDefaultZone can
	// override it from configuration
	key, err := RegisterZone(gotime.Local.String())
	if err == nil {
		defaultZone.key = key
	}
}

// RegisterZone interns a zone identifier and returns its key.  Registering
// the same name twice returns the same key.
func RegisterZone(name string) (ZoneKey, error) {
	if name == "" {
		return ZoneUnset, rberr.NewInvalidTz("''")
	}
	zoneRegistry.Lock()
	defer zoneRegistry.Unlock()
	if key, ok := zoneRegistry.keys[name]; ok {
		return key, nil
	}
	if len(zoneRegistry.names) > maxZoneKey {
		return ZoneUnset, rberr.NewInternalErrorf("time zone registry is full, cannot register %q", name)
	}
	key := ZoneKey(len(zoneRegistry.names))
	zoneRegistry.names = append(zoneRegistry.names, name)
	zoneRegistry.keys[name] = key
	return key, nil
}

// ZoneName returns the identifier registered for key, or "" for ZoneUnset
// and unknown keys.
func ZoneName(key ZoneKey) string {
	zoneRegistry.RLock()
	defer zoneRegistry.RUnlock()
	if int(key) >= len(zoneRegistry.names) {
		return ""
	}
	return zoneRegistry.names[key]
}

// DefaultZone returns the key of the process-wide default time zone, used
// when a timestamp-with-zone value is decoded without an explicit zone.
func DefaultZone() ZoneKey {
	defaultZone.RLock()
	defer defaultZone.RUnlock()
	return defaultZone.key
}

// SetDefaultZone registers name and makes it the process-wide default.
func SetDefaultZone(name string) (ZoneKey, error) {
	key, err := RegisterZone(name)
	if err != nil {
		return ZoneUnset, err
	}
	defaultZone.Lock()
	defaultZone.key = key
	defaultZone.Unlock()
	return key, nil
}
