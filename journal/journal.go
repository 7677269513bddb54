// Package journal stores finished translations in a bolt database,
// so that the same sequence is not translated twice.
package journal

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("journal")

// TRANSLATIONS is the bucket name for all the records.
var TRANSLATIONS = []byte("translations")

// Record stores a single finished translation.
type Record struct {
	Input   string    `json:"input"`
	Output  string    `json:"output"`
	Protein string    `json:"protein"`
	Codons  int       `json:"codons"`
	Stopped bool      `json:"stopped"`
	Time    time.Time `json:"time"`
}

// Journal provides operations with translation records.
type Journal struct {
	db *bolt.DB
}

// Key returns the record key for a normalized sequence.
func Key(seq string) string {
	sum := sha256.Sum256([]byte(seq))
	return hex.EncodeToString(sum[:])
}

// Open opens or creates a journal database.
func Open(fn string) (*Journal, error) {
	db, err := bolt.Open(fn, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	log.Debugf("opened journal %s", fn)
	return &Journal{db: db}, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.db.Close()
}

// Save saves the record under the key.
func (j *Journal) Save(key string, r *Record) error {
	if j == nil {
		return nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		log.Error("Error serializing record", err)
		return err
	}
	err = saveData(j.db, []byte(key), data)
	if err != nil {
		log.Error("Error saving record", err)
	}
	return err
}

// Load returns the record stored under the key, or nil if there is
// none.
func (j *Journal) Load(key string) (*Record, error) {
	if j == nil {
		return nil, nil
	}
	b, err := loadData(j.db, []byte(key))
	if err != nil || b == nil {
		return nil, err
	}

	var r *Record
	if err = json.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	if r != nil {
		log.Debugf("Found record for %s (input=%s, %d codons)", key, r.Input, r.Codons)
	}
	return r, nil
}

// saveData saves value in bolt database.
func saveData(db *bolt.DB, key []byte, data []byte) error {
	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(TRANSLATIONS)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// loadData loads value from bolt database.
func loadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(TRANSLATIONS)
		if b == nil {
			return nil
		}
		// the value is only valid during the transaction
		if v := b.Get(key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
