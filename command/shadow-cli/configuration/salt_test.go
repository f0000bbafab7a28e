// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shadowd/fault"
)

// test Marshal and Unmarshal
func TestSalt(t *testing.T) {
	salt, err := MakeSalt()
	if nil != err {
		t.Fatalf("makeSalt fail: %s", err)
	}

	marshalSalt, err := salt.MarshalText()
	assert.Nil(t, err, "marshal")
	assert.Equal(t, 2*saltSize, len(marshalSalt), "hex length")

	salt2 := new(Salt)
	err = salt2.UnmarshalText(marshalSalt)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, salt.String(), salt2.String(), "round trip")

	err = salt2.UnmarshalText([]byte("0102"))
	assert.Equal(t, fault.ErrUnmarshalTextFailed, err, "short salt")

	err = salt2.UnmarshalText([]byte("xyz"))
	assert.NotNil(t, err, "not hex")
}
