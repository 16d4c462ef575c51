package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"

	"github.com/blackwell-systems/readlog/internal/book"
)

var (
	// ErrUnavailable wraps failures to open the underlying database file.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrNotFound is returned by Get, Update and Remove for an absent id.
	ErrNotFound = errors.New("book not found")
)

var (
	bucketBooks    = []byte("books")
	bucketSettings = []byte("settings")
	bucketSessions = []byte("sessions")

	keyYearlyGoal = []byte("yearly_goal")
)

// Store is the local catalog: one bolt file holding every book record,
// the yearly goal scalar, and the reading-session log.
// Bolt's file lock makes it safe for exactly one process at a time.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the database file and ensures all buckets exist.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketBooks, bucketSettings, bucketSessions} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %v", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns every book record. Order follows the bucket's key order;
// callers sort themselves.
func (s *Store) List() ([]book.Book, error) {
	var books []book.Book
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketBooks).Cursor()
		for k, data := c.First(); k != nil; k, data = c.Next() {
			var b book.Book
			if err := json.Unmarshal(data, &b); err != nil {
				return fmt.Errorf("decoding book %s: %w", k, err)
			}
			books = append(books, b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return books, nil
}

// Get retrieves one book by id.
func (s *Store) Get(id string) (book.Book, error) {
	var b book.Book
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketBooks).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return json.Unmarshal(data, &b)
	})
	if err != nil {
		return book.Book{}, err
	}
	return b, nil
}

// Add assigns a fresh id and creation timestamp, persists the record, and
// returns it as stored. Field validation is the caller's job; the store
// only guarantees id uniqueness.
func (s *Store) Add(b book.Book) (book.Book, error) {
	b.ID = uuid.NewString()
	b.DateAdded = time.Now().UTC()
	if b.Status == "" {
		b.Status = book.StatusToRead
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketBooks)
		if bucket.Get([]byte(b.ID)) != nil {
			return fmt.Errorf("id collision on %s", b.ID)
		}
		data, err := json.Marshal(b)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(b.ID), data)
	})
	if err != nil {
		return book.Book{}, err
	}
	return b, nil
}

// Update applies a modification to the stored record in one transaction.
// ID and DateAdded are restored after the callback runs, so they stay
// immutable no matter what the caller does.
func (s *Store) Update(id string, apply func(*book.Book)) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketBooks)
		data := bucket.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}

		var b book.Book
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("decoding book %s: %w", id, err)
		}

		added := b.DateAdded
		apply(&b)
		b.ID = id
		b.DateAdded = added

		out, err := json.Marshal(b)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(id), out)
	})
}

// Remove deletes one record. A second remove of the same id returns
// ErrNotFound. Callers treating the record as already gone may ignore it.
func (s *Store) Remove(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketBooks)
		if bucket.Get([]byte(id)) == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return bucket.Delete([]byte(id))
	})
}

// Clear deletes every book record. Irreversible.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketBooks); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketBooks)
		return err
	})
}

// BulkReplace swaps the whole table for the given records in a single
// transaction. Records are stored verbatim, without revalidation. If any record
// fails to encode the transaction rolls back and the prior table survives.
func (s *Store) BulkReplace(books []book.Book) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketBooks); err != nil {
			return err
		}
		bucket, err := tx.CreateBucket(bucketBooks)
		if err != nil {
			return err
		}
		for i := range books {
			b := &books[i]
			if b.ID == "" {
				return fmt.Errorf("record %d has no id", i)
			}
			data, err := json.Marshal(b)
			if err != nil {
				return fmt.Errorf("encoding book %s: %w", b.ID, err)
			}
			if err := bucket.Put([]byte(b.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Goal returns the yearly reading target, or 0 when the user has not set
// one. Callers substitute the configured default for 0.
func (s *Store) Goal() (int, error) {
	target := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketSettings).Get(keyYearlyGoal)
		if data == nil {
			return nil
		}
		n, err := strconv.Atoi(string(data))
		if err != nil {
			return fmt.Errorf("corrupt goal setting %q: %w", data, err)
		}
		target = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return target, nil
}

// SetGoal stores the yearly reading target. Non-positive values are
// silently ignored.
func (s *Store) SetGoal(n int) error {
	if n <= 0 {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSettings).Put(keyYearlyGoal, []byte(strconv.Itoa(n)))
	})
}

// AddSession appends a reading session. ID is assigned here; a zero Date
// is stamped with now.
func (s *Store) AddSession(sess book.ReadingSession) (book.ReadingSession, error) {
	sess.ID = uuid.NewString()
	if sess.Date.IsZero() {
		sess.Date = time.Now().UTC()
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(&sess)
		if err != nil {
			return fmt.Errorf("encoding session: %w", err)
		}
		return tx.Bucket(bucketSessions).Put([]byte(sess.ID), data)
	})
	if err != nil {
		return book.ReadingSession{}, err
	}
	return sess, nil
}

// SessionsFor returns the sessions recorded for one book, oldest first.
// Sessions are never cascaded on book removal, so a stale BookID simply
// matches nothing.
func (s *Store) SessionsFor(bookID string) ([]book.ReadingSession, error) {
	var out []book.ReadingSession
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSessions).ForEach(func(k, v []byte) error {
			var sess book.ReadingSession
			if err := json.Unmarshal(v, &sess); err != nil {
				return fmt.Errorf("decoding session %s: %w", k, err)
			}
			if sess.BookID == bookID {
				out = append(out, sess)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// ClearAll wipes books, sessions, and settings in one transaction.
func (s *Store) ClearAll() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketBooks, bucketSettings, bucketSessions} {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
}
