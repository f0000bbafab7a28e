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

// test encrypt and decrypt one string with various passwords
func TestEncryptDecrypt(t *testing.T) {

	plainText := "The Quick Brown Fox Jumps Over The Lazy Dog"

	passwords := []string{"test", "123", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for _, password := range passwords {
		salt, key, err := hashPassword(password)
		if nil != err {
			t.Fatalf("hash error: %s", err)
		}

		encrypted, err := encryptData(plainText, key)
		if nil != err {
			t.Fatalf("encrypt error: %s", err)
		}

		key2, err := generateKey(password, salt)
		if nil != err {
			t.Fatalf("generateKey error: %s", err)
		}

		decrypted, err := decryptData(encrypted, key2)
		if nil != err {
			t.Fatalf("decrypt error: %s", err)
		}
		assert.Equal(t, plainText, decrypted, "round trip with password: %q", password)

		again, err := encryptData(plainText, key)
		assert.Nil(t, err, "second encrypt")
		assert.NotEqual(t, encrypted, again, "nonce must differ between encryptions")

		wrongKey, err := generateKey("A Bad Password", salt)
		assert.Nil(t, err, "wrong key")
		_, err = decryptData(encrypted, wrongKey)
		assert.Equal(t, fault.ErrCryptoFailed, err, "wrong password")
	}
}

func TestEncryptDataSizeLimits(t *testing.T) {
	_, key, err := hashPassword("password")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}

	_, err = encryptData("short", key)
	assert.Equal(t, fault.ErrCryptoFailed, err, "too short")

	_, err = decryptData("", key)
	assert.Equal(t, fault.ErrCryptoFailed, err, "empty ciphertext")

	_, err = decryptData("0102030405", key)
	assert.Equal(t, fault.ErrCryptoFailed, err, "ciphertext shorter than nonce")
}
