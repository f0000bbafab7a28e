// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// Advancer - something that can move the clock forward one step
type Advancer interface {
	Tick() (uint64, error)
}

// Ticker - background process advancing the clock at a fixed interval
type Ticker struct {
	log      *logger.L
	advancer Advancer
	interval time.Duration
}

// NewTicker - create a ticker process
func NewTicker(log *logger.L, advancer Advancer, interval time.Duration) *Ticker {
	return &Ticker{
		log:      log,
		advancer: advancer,
		interval: interval,
	}
}

// Run - background.Process entry point
func (t *Ticker) Run(args interface{}, shutdown <-chan struct{}) {

	log := t.log

	log.Infof("starting… interval: %s", t.interval)

	tick := time.NewTicker(t.interval)
	defer tick.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-tick.C:
			height, err := t.advancer.Tick()
			if nil != err {
				log.Errorf("advance error: %s", err)
				continue loop
			}
			log.Debugf("height: %d", height)
		}
	}

	log.Info("shutting down…")
	log.Flush()
}
