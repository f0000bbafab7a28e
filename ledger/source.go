// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strings"

	"github.com/bitmark-inc/shadowd/fault"
)

// Source - the origin of a shadow item
//
// the set is closed: values can only be the ones declared below
// or the result of a successful SourceFromTag
type Source struct {
	tag uint8
}

// the known sources
var (
	GitHub  = Source{tag: 0}
	Twitter = Source{tag: 1}
)

var sourceNames = []string{
	"GitHub",
	"Twitter",
}

// SourceFromTag - decode the wire tag of a source
func SourceFromTag(tag uint8) (Source, error) {
	if int(tag) >= len(sourceNames) {
		return Source{}, fault.ErrInvalidSource
	}
	return Source{tag: tag}, nil
}

// SourceFromString - decode a source name, case is ignored
func SourceFromString(name string) (Source, error) {
	for i, s := range sourceNames {
		if strings.EqualFold(s, name) {
			return Source{tag: uint8(i)}, nil
		}
	}
	return Source{}, fault.ErrInvalidSource
}

// Tag - wire tag of the source
func (s Source) Tag() uint8 {
	return s.tag
}

// String - name of the source
func (s Source) String() string {
	return sourceNames[s.tag]
}

// MarshalText - source as its name
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - source from its name
func (s *Source) UnmarshalText(text []byte) error {
	source, err := SourceFromString(string(text))
	if nil != err {
		return err
	}
	*s = source
	return nil
}
