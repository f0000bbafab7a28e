// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(100, 10)
	assert.Nil(t, ratelimit.Limit(limiter), "single request")

	blocked := rate.NewLimiter(0, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(blocked), "zero burst")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(100, 50)

	tests := []struct {
		count int
		err   error
	}{
		{1, nil},
		{20, nil},
		{0, fault.ErrInvalidCount},
		{-3, fault.ErrInvalidCount},
		{21, fault.ErrInvalidCount},
	}

	for i, test := range tests {
		err := ratelimit.LimitN(limiter, test.count, 20)
		assert.Equal(t, test.err, err, "%d: count %d", i, test.count)
	}

	blocked := rate.NewLimiter(0, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(blocked, 5, 20), "zero burst")
}
