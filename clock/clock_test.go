// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shadowd/background"
	"github.com/bitmark-inc/shadowd/clock"
	"github.com/bitmark-inc/shadowd/fixtures"
	"github.com/bitmark-inc/shadowd/storage"
)

func TestStageAndSet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, err := storage.OpenMemory()
	assert.Nil(t, err, "wrong open error")
	defer db.Close()

	c := clock.New(db.Pool.Clock)
	assert.Equal(t, uint64(0), c.Height(), "wrong initial height")

	trx, err := db.Begin()
	assert.Nil(t, err, "wrong begin error")
	next := c.Stage(trx)
	assert.Equal(t, uint64(1), next, "wrong staged height")
	assert.Equal(t, uint64(0), c.Height(), "height changed before commit")
	assert.Nil(t, trx.Commit(), "wrong commit error")
	c.Set(next)
	assert.Equal(t, uint64(1), c.Height(), "wrong committed height")

	c.Set(0)
	assert.Equal(t, uint64(1), c.Height(), "height decreased")

	// a new clock on the same database continues from the stored height
	c2 := clock.New(db.Pool.Clock)
	assert.Equal(t, uint64(1), c2.Height(), "wrong reloaded height")
}

type fakeAdvancer struct {
	sync.Mutex
	ticks int
	fail  bool
}

func (f *fakeAdvancer) Tick() (uint64, error) {
	f.Lock()
	defer f.Unlock()
	if f.fail {
		return 0, errors.New("advance failed")
	}
	f.ticks += 1
	return uint64(f.ticks), nil
}

func (f *fakeAdvancer) count() int {
	f.Lock()
	defer f.Unlock()
	return f.ticks
}

func TestTicker(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	f := &fakeAdvancer{}
	ticker := clock.NewTicker(logger.New(fixtures.LogCategory), f, 2*time.Millisecond)

	p := background.Start(background.Processes{ticker}, nil)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	n := f.count()
	assert.True(t, n > 0, "ticker never advanced")

	// stopped ticker does not advance any more
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, n, f.count(), "ticker advanced after stop")
}

func TestTickerErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	f := &fakeAdvancer{fail: true}
	ticker := clock.NewTicker(logger.New(fixtures.LogCategory), f, time.Millisecond)

	p := background.Start(background.Processes{ticker}, nil)
	time.Sleep(10 * time.Millisecond)
	p.Stop()

	assert.Equal(t, 0, f.count(), "failed ticks counted")
}
