// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/shadowd/fault"
)

// Pools - the set of storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	ConsentRecords *PoolHandle `prefix:"C"`
	ItemNextCount  *PoolHandle `prefix:"N"`
	ItemCount      *PoolHandle `prefix:"K"`
	ItemList       *PoolHandle `prefix:"L"`
	ItemIndex      *PoolHandle `prefix:"I"`
	Transactions   *PoolHandle `prefix:"T"`
	Events         *PoolHandle `prefix:"E"`
	Clock          *PoolHandle `prefix:"H"`
	TestData       *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - a LevelDB database split into pools
type Database struct {
	sync.Mutex
	Pool   Pools
	db     *leveldb.DB
	access Access
	trx    *transactionData
}

// Open - open up a database file
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}

	return setup(db, readOnly)
}

// OpenMemory - open a database that is only held in memory
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

// common setup after a leveldb has been opened
func setup(db *leveldb.DB, readOnly bool) (*Database, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersionNotSupported
	}

	if 0 == version {
		if readOnly {
			return nil, fmt.Errorf("read only database has no version")
		}
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	database := &Database{
		db:     db,
		access: newDA(db, newCache()),
	}
	database.trx = newTransaction(database.access)

	// this will be a struct type
	poolType := reflect.TypeOf(database.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&database.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: db,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return database, nil
}

// Close - close the database
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()
	if nil != d.db {
		d.db.Close()
		d.db = nil
	}
}

// Begin - start a new transaction
//
// only one transaction may be active at a time
func (d *Database) Begin() (Transaction, error) {
	err := d.trx.begin()
	if nil != err {
		return nil, err
	}
	return d.trx, nil
}

// return the stored version or zero for a new database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
