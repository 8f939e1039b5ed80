package database

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"

	"github.com/lhecker/ta-office/office"
)

var (
	runsBucket = []byte("runs")
)

type Database bbolt.DB

func NewDatabase(path string) (*Database, error) {
	db, err := bbolt.Open(path, 0644, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		return nil, err
	}

	return (*Database)(db), nil
}

func (s *Database) Close() error {
	return s.get().Close()
}

// Record is the persisted form of one simulation event.
type Record struct {
	Seq      uint64    `json:"seq"`
	Kind     string    `json:"kind"`
	Student  int       `json:"student,omitempty"`
	Occupied int       `json:"occupied,omitempty"`
	Duration string    `json:"duration,omitempty"`
	Time     time.Time `json:"time"`
	Error    string    `json:"error,omitempty"`
}

// AppendEvent stores one event under the given run, keyed by a
// monotonically increasing sequence number so a cursor replays the
// transcript in emission order.
func (s *Database) AppendEvent(runID string, ev office.Event) error {
	return s.get().Update(func(tx *bbolt.Tx) error {
		b, err := tx.Bucket(runsBucket).CreateBucketIfNotExists([]byte(runID))
		if err != nil {
			return err
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		rec := Record{
			Seq:      seq,
			Kind:     ev.Kind.String(),
			Student:  ev.Student,
			Occupied: ev.Occupied,
			Time:     ev.Time,
		}
		if ev.Duration != 0 {
			rec.Duration = ev.Duration.String()
		}
		if ev.Err != nil {
			rec.Error = ev.Err.Error()
		}

		buf, err := json.Marshal(&rec)
		if err != nil {
			return err
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return b.Put(key, buf)
	})
}

// Runs lists all recorded run IDs in key order.
func (s *Database) Runs() ([]string, error) {
	var runs []string

	err := s.get().View(func(tx *bbolt.Tx) error {
		return tx.Bucket(runsBucket).ForEachBucket(func(k []byte) error {
			runs = append(runs, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return runs, nil
}

// Events replays the transcript of one run in emission order.
func (s *Database) Events(runID string) ([]Record, error) {
	var records []Record

	err := s.get().View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(runsBucket).Bucket([]byte(runID))
		if b == nil {
			return nil
		}

		return b.ForEach(func(k, v []byte) error {
			var rec Record
			err := json.Unmarshal(v, &rec)
			if err != nil {
				return err
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (s *Database) get() *bbolt.DB {
	return (*bbolt.DB)(s)
}
