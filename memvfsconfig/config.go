// Copyright 2026 The memvfs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package memvfsconfig

import (
	"fmt"

	"github.com/memvfs-go/memvfs/internal/logger"
)

const (
	defaultBlockSize = 8192
)

// Config is the builder input for a filesystem instance. Mapstructure
// decodes it from whatever external source (flags, YAML, env) an
// embedder wires up; this package only owns defaulting and validation.
type Config struct {
	PathType PathType `mapstructure:"path-type"`
	Roots    []string `mapstructure:"roots"`

	WorkingDirectory string `mapstructure:"working-directory"`

	NameCanonicalNormalization []Normalization `mapstructure:"name-canonical-normalization"`
	NameDisplayNormalization   []Normalization `mapstructure:"name-display-normalization"`

	PathEqualityUsesCanonicalForm bool `mapstructure:"path-equality-uses-canonical-form"`

	BlockSize    uint32 `mapstructure:"block-size"`
	MaxSize      uint64 `mapstructure:"max-size"`
	MaxCacheSize uint64 `mapstructure:"max-cache-size"`

	AttributeViews         []AttributeView  `mapstructure:"attribute-views"`
	DefaultAttributeValues map[string]any   `mapstructure:"default-attribute-values"`
	SupportedFeatures      []Feature        `mapstructure:"supported-features"`

	LogSeverity  logger.Severity  `mapstructure:"log-severity"`
	LogFormat    string           `mapstructure:"log-format"`
	LogFilePath  string           `mapstructure:"log-file-path"`
	LogRotation  logger.Rotation  `mapstructure:"log-rotation"`
}

// SetDefaults fills in zero-valued fields with the filesystem's defaults:
// a single "/" root, no normalization, 8KiB blocks, unlimited size, no
// free-block cache (MaxCacheSize 0), and the "basic" view (always implied
// regardless of what the caller lists).
func (c *Config) SetDefaults() {
	if len(c.Roots) == 0 {
		c.Roots = []string{"/"}
	}
	if c.PathType == "" {
		c.PathType = PathTypeUnix
	}
	if c.BlockSize == 0 {
		c.BlockSize = defaultBlockSize
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.LogSeverity == "" {
		c.LogSeverity = logger.INFO
	}
	if !containsView(c.AttributeViews, ViewBasic) {
		c.AttributeViews = append([]AttributeView{ViewBasic}, c.AttributeViews...)
	}
}

func containsView(views []AttributeView, want AttributeView) bool {
	for _, v := range views {
		if v == want {
			return true
		}
	}
	return false
}

// MaxBlockCount derives the block-pool cap from MaxSize/BlockSize, per
// the spec's builder contract; 0 means unlimited.
func (c *Config) MaxBlockCount() uint32 {
	if c.MaxSize == 0 {
		return 0
	}
	return uint32(c.MaxSize / uint64(c.BlockSize))
}

// MaxCachedBlockCount derives the free-block cache cap from
// MaxCacheSize/BlockSize; 0 yields a cap of 0, which disables the cache.
func (c *Config) MaxCachedBlockCount() uint32 {
	if c.MaxCacheSize == 0 {
		return 0
	}
	return uint32(c.MaxCacheSize / uint64(c.BlockSize))
}

// Validate rejects configurations that cannot produce a working
// filesystem: no roots, a zero block size, or a non-zero MaxSize smaller
// than one block. Attribute view names are not checked here; only
// AttributeView.UnmarshalText rejects unknown ones, at decode time.
func (c *Config) Validate() error {
	if len(c.Roots) == 0 {
		return fmt.Errorf("memvfsconfig: at least one root is required")
	}
	if c.BlockSize == 0 {
		return fmt.Errorf("memvfsconfig: block-size must be non-zero")
	}
	if c.MaxSize != 0 && c.MaxSize < uint64(c.BlockSize) {
		return fmt.Errorf("memvfsconfig: max-size must be at least block-size")
	}
	return nil
}
