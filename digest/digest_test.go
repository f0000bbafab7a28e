// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/fault"
)

func TestNew(t *testing.T) {
	tests := []struct {
		data     string
		expected string
	}{
		{"", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	}

	for i, item := range tests {
		d := digest.New([]byte(item.data))
		if d.String() != item.expected {
			t.Errorf("%d: digest: %s  expected: %s", i, d, item.expected)
		}
	}
}

func TestScanFmt(t *testing.T) {
	stringDigest := "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"

	var d digest.Digest
	n, err := fmt.Sscan(stringDigest, &d)
	if nil != err {
		t.Fatalf("hex to digest error: %v", err)
	}
	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}
	assert.Equal(t, digest.New([]byte("abc")), d, "scanned value")

	s := fmt.Sprintf("%#v", d)
	if s != "<SHA3-256:"+stringDigest+">" {
		t.Errorf("hash-v: digest = %s expected %s", s, stringDigest)
	}
}

func TestJSON(t *testing.T) {
	d := digest.New([]byte("abc"))

	buffer, err := json.Marshal(d)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `"3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"`, string(buffer), "JSON")

	var result digest.Digest
	err = json.Unmarshal(buffer, &result)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, d, result, "round trip")

	err = json.Unmarshal([]byte(`"3a98"`), &result)
	assert.Equal(t, fault.ErrInvalidDigest, err, "short text")

	err = json.Unmarshal([]byte(`"zz985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"`), &result)
	assert.Equal(t, fault.ErrInvalidDigest, err, "bad hex")
}

func TestFromBytes(t *testing.T) {
	var d digest.Digest
	assert.True(t, d.IsZero(), "zero value")

	err := digest.FromBytes(&d, make([]byte, 31))
	assert.Equal(t, fault.ErrInvalidDigest, err, "short buffer")

	source := digest.New([]byte("abc"))
	err = digest.FromBytes(&d, source[:])
	assert.Nil(t, err, "from bytes")
	assert.Equal(t, source, d, "copied digest")
	assert.False(t, d.IsZero(), "non-zero value")
}
