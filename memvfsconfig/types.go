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

// Package memvfsconfig is the filesystem's configuration builder: a flat,
// mapstructure-decodable struct of scalar and text-marshaled fields, with
// defaulting and validation applied the way the rest of the corpus's
// config packages do it.
package memvfsconfig

import (
	"fmt"
	"slices"
	"strings"
)

// PathType selects the path grammar a filesystem instance uses.
type PathType string

const (
	PathTypeUnix    PathType = "unix"
	PathTypeWindows PathType = "windows"
)

func (p *PathType) UnmarshalText(text []byte) error {
	v := PathType(strings.ToLower(string(text)))
	if v != PathTypeUnix && v != PathTypeWindows {
		return fmt.Errorf("invalid pathType: %q, must be one of [unix, windows]", text)
	}
	*p = v
	return nil
}

func (p PathType) MarshalText() ([]byte, error) { return []byte(p), nil }

// Normalization mirrors name.Normalization as a text-decodable config
// value, so Decode's text-unmarshaler hook can translate user-facing strings without this
// package depending on name's internal representation choices.
type Normalization string

const (
	NormalizationNone          Normalization = "NONE"
	NormalizationCaseFoldASCII Normalization = "CASE_FOLD_ASCII"
	NormalizationCaseFoldUnicode Normalization = "CASE_FOLD_UNICODE"
	NormalizationNFC           Normalization = "NFC"
	NormalizationNFD           Normalization = "NFD"
)

var validNormalizations = []Normalization{
	NormalizationNone, NormalizationCaseFoldASCII, NormalizationCaseFoldUnicode, NormalizationNFC, NormalizationNFD,
}

func (n *Normalization) UnmarshalText(text []byte) error {
	v := Normalization(strings.ToUpper(string(text)))
	if !slices.Contains(validNormalizations, v) {
		return fmt.Errorf("invalid normalization: %q, must be one of %v", text, validNormalizations)
	}
	*n = v
	return nil
}

func (n Normalization) MarshalText() ([]byte, error) { return []byte(n), nil }

// AttributeView names one of the six supported attribute views.
type AttributeView string

const (
	ViewBasic AttributeView = "basic"
	ViewOwner AttributeView = "owner"
	ViewPosix AttributeView = "posix"
	ViewDos   AttributeView = "dos"
	ViewUnix  AttributeView = "unix"
	ViewUser  AttributeView = "user"
)

var validViews = []AttributeView{ViewBasic, ViewOwner, ViewPosix, ViewDos, ViewUnix, ViewUser}

func (v *AttributeView) UnmarshalText(text []byte) error {
	val := AttributeView(strings.ToLower(string(text)))
	if !slices.Contains(validViews, val) {
		return fmt.Errorf("invalid attribute view: %q, must be one of %v", text, validViews)
	}
	*v = val
	return nil
}

func (v AttributeView) MarshalText() ([]byte, error) { return []byte(v), nil }

// Feature names one of the optionally supported filesystem capabilities.
type Feature string

const (
	FeatureLinks                  Feature = "LINKS"
	FeatureSymbolicLinks           Feature = "SYMBOLIC_LINKS"
	FeatureSecureDirectoryStream   Feature = "SECURE_DIRECTORY_STREAM"
	FeatureFileChannel             Feature = "FILE_CHANNEL"
)

var validFeatures = []Feature{FeatureLinks, FeatureSymbolicLinks, FeatureSecureDirectoryStream, FeatureFileChannel}

func (f *Feature) UnmarshalText(text []byte) error {
	val := Feature(strings.ToUpper(string(text)))
	if !slices.Contains(validFeatures, val) {
		return fmt.Errorf("invalid feature: %q, must be one of %v", text, validFeatures)
	}
	*f = val
	return nil
}

func (f Feature) MarshalText() ([]byte, error) { return []byte(f), nil }
