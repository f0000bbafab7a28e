// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/shadowd/messagebus"
	"github.com/bitmark-inc/shadowd/zmqutil"
)

const (
	heartbeatInterval = 60 * time.Second
	heartbeatKind     = "heartbeat"
)

type broadcaster struct {
	log     *logger.L
	queue   *messagebus.Queue
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, queue *messagebus.Queue) error {

	log := logger.New("broadcaster")

	log.Info("initialising…")

	brdc.log = log
	brdc.queue = queue

	// allocate IPv4 and IPv6 sockets
	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	return nil
}

// Run - wait for incoming events and send them to subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

loop:
	for {
		log.Debug("waiting…")

		select {
		case <-shutdown:
			break loop

		case item := <-brdc.queue.Chan():
			log.Debugf("sending: %s", item.Command)
			brdc.send(item.Command, item.Parameters...)

		case <-heartbeat.C:
			brdc.send(heartbeatKind, []byte(time.Now().UTC().Format(time.RFC3339)))
		}
	}

	log.Info("shutting down…")

	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}

	log.Info("stopped")
	log.Flush()
}

// send one message as separate frames on every socket
func (brdc *broadcaster) send(command string, parameters ...[]byte) {
	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}

		frames := make([]interface{}, 0, 1+len(parameters))
		frames = append(frames, command)
		for _, p := range parameters {
			frames = append(frames, p)
		}

		_, err := socket.SendMessage(frames...)
		if nil != err {
			brdc.log.Errorf("send: %s  error: %s", command, err)
		}
	}
}
