// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/shadowd/bounded"
	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/util"
)

// Item - a shadow item
type Item struct {
	Id           digest.Digest
	Cid          bounded.Bytes
	EncryptedKey bounded.Bytes
	Timestamp    uint64
	Source       Source
	Metadata     bounded.Bytes
	Deleted      bool
}

// packed item layout
const (
	idOffset        = 0
	timestampOffset = idOffset + digest.Length
	sourceOffset    = timestampOffset + 8
	deletedOffset   = sourceOffset + 1
	fieldsOffset    = deletedOffset + 1
)

// pack - id ++ timestamp ++ source ++ deleted ++ cid ++ key ++ metadata
//
// the variable fields are varint length prefixed
func (item *Item) pack() []byte {
	buffer := make([]byte, fieldsOffset, fieldsOffset+item.Cid.Len()+item.EncryptedKey.Len()+item.Metadata.Len()+3*util.Varint64MaximumBytes)
	copy(buffer[idOffset:], item.Id[:])
	binary.BigEndian.PutUint64(buffer[timestampOffset:], item.Timestamp)
	buffer[sourceOffset] = item.Source.Tag()
	if item.Deleted {
		buffer[deletedOffset] = 1
	}
	buffer = util.AppendBytes(buffer, item.Cid.Bytes())
	buffer = util.AppendBytes(buffer, item.EncryptedKey.Bytes())
	buffer = util.AppendBytes(buffer, item.Metadata.Bytes())
	return buffer
}

// unpack a stored item
func unpackItem(buffer []byte) (*Item, error) {
	if len(buffer) < fieldsOffset {
		return nil, fault.ErrUnexpectedEndOfRecord
	}

	source, err := SourceFromTag(buffer[sourceOffset])
	if nil != err {
		return nil, err
	}

	item := &Item{
		Timestamp: binary.BigEndian.Uint64(buffer[timestampOffset:]),
		Source:    source,
		Deleted:   0 != buffer[deletedOffset],
	}
	copy(item.Id[:], buffer[idOffset:timestampOffset])

	fields := make([]bounded.Bytes, 3)
	n := fieldsOffset
	for i := range fields {
		data, used := util.FromBytes(buffer[n:])
		if 0 == used {
			return nil, fault.ErrUnexpectedEndOfRecord
		}
		n += used
		fields[i], _ = bounded.New(data, len(data), nil)
	}
	if n != len(buffer) {
		return nil, fault.ErrRecordHasExtraData
	}

	item.Cid = fields[0]
	item.EncryptedKey = fields[1]
	item.Metadata = fields[2]

	return item, nil
}
