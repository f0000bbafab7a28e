// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/ledger"
)

func TestSourceFromTag(t *testing.T) {
	tests := []struct {
		tag    uint8
		source ledger.Source
		name   string
		err    error
	}{
		{0, ledger.GitHub, "GitHub", nil},
		{1, ledger.Twitter, "Twitter", nil},
		{2, ledger.Source{}, "", fault.ErrInvalidSource},
		{255, ledger.Source{}, "", fault.ErrInvalidSource},
	}

	for i, item := range tests {
		s, err := ledger.SourceFromTag(item.tag)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		if nil != err {
			continue
		}
		assert.Equal(t, item.source, s, "%d: wrong source", i)
		assert.Equal(t, item.name, s.String(), "%d: wrong name", i)
		assert.Equal(t, item.tag, s.Tag(), "%d: wrong tag", i)
	}
}

func TestSourceFromString(t *testing.T) {
	tests := []struct {
		name   string
		source ledger.Source
		err    error
	}{
		{"GitHub", ledger.GitHub, nil},
		{"github", ledger.GitHub, nil},
		{"TWITTER", ledger.Twitter, nil},
		{"Twitter", ledger.Twitter, nil},
		{"gitlab", ledger.Source{}, fault.ErrInvalidSource},
		{"", ledger.Source{}, fault.ErrInvalidSource},
	}

	for i, item := range tests {
		s, err := ledger.SourceFromString(item.name)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.source, s, "%d: wrong source", i)
	}
}

func TestSourceText(t *testing.T) {
	buffer, err := json.Marshal(ledger.Twitter)
	assert.Nil(t, err, "wrong marshal error")
	assert.Equal(t, `"Twitter"`, string(buffer), "wrong JSON")

	var s ledger.Source
	err = json.Unmarshal([]byte(`"GitHub"`), &s)
	assert.Nil(t, err, "wrong unmarshal error")
	assert.Equal(t, ledger.GitHub, s, "wrong source")

	err = json.Unmarshal([]byte(`"Gitlab"`), &s)
	assert.Equal(t, fault.ErrInvalidSource, err, "wrong unknown name error")
}
