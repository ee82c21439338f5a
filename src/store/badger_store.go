package store

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/dgraph-io/badger"
	cm "github.com/mosaicnetworks/midline/src/common"
	"github.com/mosaicnetworks/midline/src/series"
	"github.com/pkg/errors"
)

const (
	samplePrefix = "sample"
	seriesPrefix = "series"
)

// BadgerStore is a write-through store: every sample lands in the in-memory
// windows and in a BadgerDB database. Reads that fall out of the windows are
// served from the database.
type BadgerStore struct {
	inmemStore    *InmemStore
	db            *badger.DB
	path          string
	needBootstrap bool
}

//NewBadgerStore creates a brand new Store with a new database
func NewBadgerStore(cacheSize int, path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.SyncWrites = false
	opts.Logger = nil
	handle, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening badger database %s", path)
	}
	store := &BadgerStore{
		inmemStore: NewInmemStore(cacheSize),
		db:         handle,
		path:       path,
	}
	return store, nil
}

//LoadBadgerStore creates a Store from an existing database
func LoadBadgerStore(cacheSize int, path string) (*BadgerStore, error) {

	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(path)
	opts.SyncWrites = false
	opts.Logger = nil
	handle, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening badger database %s", path)
	}
	store := &BadgerStore{
		db:            handle,
		path:          path,
		needBootstrap: true,
	}

	metas, err := store.dbGetAllMetas()
	if err != nil {
		return nil, err
	}

	//reload the tail of each series into a fresh window
	inmemStore := NewInmemStore(cacheSize)
	for _, meta := range metas {
		first := meta.LastIndex - 2*cacheSize + 1
		if first < 0 {
			first = 0
		}

		values, err := store.dbGetSamples(meta.Name, first-1)
		if err != nil {
			return nil, err
		}

		if err := inmemStore.ResetSeries(meta.Name, values, meta.LastIndex); err != nil {
			return nil, err
		}
	}

	store.inmemStore = inmemStore

	return store, nil
}

// LoadOrCreateBadgerStore loads a BadgerStore from an existing database, or
// creates a new one when there is nothing to load.
func LoadOrCreateBadgerStore(cacheSize int, path string) (*BadgerStore, error) {
	store, err := LoadBadgerStore(cacheSize, path)

	if err != nil {
		store, err = NewBadgerStore(cacheSize, path)

		if err != nil {
			return nil, err
		}
	}

	return store, nil
}

//==============================================================================
//Keys

func sampleKey(name string, index int) []byte {
	return []byte(fmt.Sprintf("%s_%s_%012d", samplePrefix, name, index))
}

func seriesKey(name string) []byte {
	return []byte(fmt.Sprintf("%s_%s", seriesPrefix, name))
}

//==============================================================================
//Implement the Store interface

// CacheSize implements the Store interface.
func (s *BadgerStore) CacheSize() int {
	return s.inmemStore.CacheSize()
}

// SeriesNames implements the Store interface.
func (s *BadgerStore) SeriesNames() []string {
	return s.inmemStore.SeriesNames()
}

// GetSeries implements the Store interface.
func (s *BadgerStore) GetSeries(name string) (*series.Series, error) {
	//try to get it from the windows first
	res, err := s.inmemStore.GetSeries(name)
	//if not there, try to get it from the db
	if err != nil {
		res, err = s.dbGetSeries(name)
	}
	return res, mapError(err, "Series", cm.NoSeries, name)
}

// AppendValue implements the Store interface.
func (s *BadgerStore) AppendValue(name string, value int64) error {
	//add it to the windows
	if err := s.inmemStore.AppendValue(name, value); err != nil {
		return err
	}

	index, err := s.inmemStore.LastIndex(name)
	if err != nil {
		return err
	}

	//write it through to the db
	return s.dbSetSample(name, index, value)
}

// LastIndex implements the Store interface.
func (s *BadgerStore) LastIndex(name string) (int, error) {
	res, err := s.inmemStore.LastIndex(name)
	if err != nil {
		meta, merr := s.dbGetMeta(name)
		if merr != nil {
			return -1, mapError(merr, "Series", cm.NoSeries, name)
		}
		res, err = meta.LastIndex, nil
	}
	return res, err
}

// GetWindow implements the Store interface.
func (s *BadgerStore) GetWindow(name string, skip int) ([]int64, error) {
	res, err := s.inmemStore.GetWindow(name, skip)
	if err != nil {
		if _, merr := s.dbGetMeta(name); merr != nil {
			return nil, mapError(merr, "Series", cm.NoSeries, name)
		}
		res, err = s.dbGetSamples(name, skip)
	}
	return res, err
}

// TotalSamples implements the Store interface.
func (s *BadgerStore) TotalSamples() int {
	return s.inmemStore.TotalSamples()
}

// Close implements the Store interface.
func (s *BadgerStore) Close() error {
	if err := s.inmemStore.Close(); err != nil {
		return err
	}
	return s.db.Close()
}

// StorePath implements the Store interface.
func (s *BadgerStore) StorePath() string {
	return s.path
}

// NeedBootstrap implements the Store interface.
func (s *BadgerStore) NeedBootstrap() bool {
	return s.needBootstrap
}

//++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++
//DB Methods

func (s *BadgerStore) dbGetSample(name string, index int) (int64, error) {
	var valueBytes []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sampleKey(name, index))
		if err != nil {
			return err
		}
		valueBytes, err = item.ValueCopy(nil)
		return err
	})

	if err != nil {
		return 0, err
	}

	return decodeSample(valueBytes), nil
}

func (s *BadgerStore) dbSetSample(name string, index int, value int64) error {
	tx := s.db.NewTransaction(true)
	defer tx.Discard()

	//insert [sample_name_index] => [value bytes]
	if err := tx.Set(sampleKey(name, index), encodeSample(value)); err != nil {
		return err
	}

	//update [series_name] => [meta bytes]
	meta := &series.Meta{Name: name, LastIndex: index}
	val, err := meta.Marshal()
	if err != nil {
		return err
	}
	if err := tx.Set(seriesKey(name), val); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *BadgerStore) dbGetSamples(name string, skip int) ([]int64, error) {
	res := []int64{}
	err := s.db.View(func(txn *badger.Txn) error {
		i := skip + 1
		item, errr := txn.Get(sampleKey(name, i))
		for errr == nil {
			v, errrr := item.ValueCopy(nil)
			if errrr != nil {
				break
			}
			res = append(res, decodeSample(v))

			i++
			item, errr = txn.Get(sampleKey(name, i))
		}

		if !isDBKeyNotFound(errr) {
			return errr
		}

		return nil
	})
	return res, err
}

func (s *BadgerStore) dbGetSeries(name string) (*series.Series, error) {
	meta, err := s.dbGetMeta(name)
	if err != nil {
		return nil, err
	}

	first := meta.LastIndex - 2*s.inmemStore.CacheSize() + 1
	if first < 0 {
		first = 0
	}

	values, err := s.dbGetSamples(meta.Name, first-1)
	if err != nil {
		return nil, err
	}

	return series.NewSeries(meta.Name, values), nil
}

func (s *BadgerStore) dbGetMeta(name string) (*series.Meta, error) {
	var metaBytes []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(seriesKey(name))
		if err != nil {
			return err
		}
		metaBytes, err = item.ValueCopy(nil)
		return err
	})

	if err != nil {
		return nil, err
	}

	meta := new(series.Meta)
	if err := meta.Unmarshal(metaBytes); err != nil {
		return nil, err
	}

	return meta, nil
}

func (s *BadgerStore) dbGetAllMetas() ([]*series.Meta, error) {
	res := []*series.Meta{}
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(seriesPrefix + "_")

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			metaBytes, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}

			meta := new(series.Meta)
			if err := meta.Unmarshal(metaBytes); err != nil {
				return err
			}

			res = append(res, meta)
		}

		return nil
	})
	return res, err
}

//++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++

func encodeSample(value int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(value))
	return buf
}

func decodeSample(data []byte) int64 {
	return int64(binary.BigEndian.Uint64(data))
}

func isDBKeyNotFound(err error) bool {
	return err.Error() == badger.ErrKeyNotFound.Error()
}

func mapError(err error, name string, errType cm.StoreErrType, key string) error {
	if err != nil {
		if isDBKeyNotFound(err) {
			return cm.NewStoreErr(name, errType, key)
		}
	}
	return err
}
