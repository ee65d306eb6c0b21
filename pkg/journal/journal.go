package journal

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var (
	entryPrefix = []byte("e")
	sequenceKey = []byte("m:sequence")
)

type Options struct {
	// Now overrides the clock used for CreatedAt and key assignment.
	Now func() time.Time
}

type Journal struct {
	db       *leveldb.DB
	now      func() time.Time
	mu       sync.Mutex
	sequence uint64
}

// Open opens or creates the journal database in dir.
func Open(dir string, options Options) (*Journal, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, fmt.Errorf("journal directory is required")
	}
	db, err := leveldb.OpenFile(trimmed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return newJournal(db, options)
}

// OpenInMemory opens a journal that is discarded on Close.
func OpenInMemory(options Options) (*Journal, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory journal: %w", err)
	}
	return newJournal(db, options)
}

func newJournal(db *leveldb.DB, options Options) (*Journal, error) {
	now := options.Now
	if now == nil {
		now = time.Now
	}

	journal := &Journal{db: db, now: now}
	sequence, err := journal.loadSequence()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	journal.sequence = sequence
	return journal, nil
}

func (journal *Journal) Close() error {
	return journal.db.Close()
}

// Append stores entry and returns it with ID and CreatedAt assigned.
func (journal *Journal) Append(entry Entry) (Entry, error) {
	if strings.TrimSpace(entry.Operation) == "" {
		return Entry{}, fmt.Errorf("journal entry operation is required")
	}

	journal.mu.Lock()
	defer journal.mu.Unlock()

	createdAt := journal.now().UTC()
	next := uint64(createdAt.UnixNano())
	if next <= journal.sequence {
		next = journal.sequence + 1
	}

	entry.ID = next
	entry.CreatedAt = createdAt
	payload, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to encode journal entry: %w", err)
	}

	sequenceValue := make([]byte, 8)
	binary.BigEndian.PutUint64(sequenceValue, next)

	batch := new(leveldb.Batch)
	batch.Put(makeEntryKey(next), payload)
	batch.Put(sequenceKey, sequenceValue)
	if err := journal.db.Write(batch, nil); err != nil {
		return Entry{}, fmt.Errorf("failed to write journal entry: %w", err)
	}

	journal.sequence = next
	return entry, nil
}

// List returns the newest limit entries, oldest first. A limit of 0 or less
// returns every entry.
func (journal *Journal) List(limit int) ([]Entry, error) {
	iter := journal.db.NewIterator(util.BytesPrefix(entryPrefix), nil)
	defer iter.Release()

	var newestFirst []Entry
	for ok := iter.Last(); ok; ok = iter.Prev() {
		var entry Entry
		if err := json.Unmarshal(iter.Value(), &entry); err != nil {
			return nil, fmt.Errorf("failed to decode journal entry %x: %w", iter.Key(), err)
		}
		newestFirst = append(newestFirst, entry)
		if limit > 0 && len(newestFirst) == limit {
			break
		}
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	entries := make([]Entry, 0, len(newestFirst))
	for index := len(newestFirst) - 1; index >= 0; index-- {
		entries = append(entries, newestFirst[index])
	}
	return entries, nil
}

// Get returns the entry with the given ID.
func (journal *Journal) Get(id uint64) (Entry, bool, error) {
	payload, err := journal.db.Get(makeEntryKey(id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to read journal entry: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return Entry{}, false, fmt.Errorf("failed to decode journal entry: %w", err)
	}
	return entry, true, nil
}

func (journal *Journal) loadSequence() (uint64, error) {
	value, err := journal.db.Get(sequenceKey, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read journal sequence: %w", err)
	}
	if len(value) != 8 {
		return 0, fmt.Errorf("corrupt journal sequence: %d bytes", len(value))
	}
	return binary.BigEndian.Uint64(value), nil
}

func makeEntryKey(id uint64) []byte {
	key := make([]byte, 1+8)
	copy(key, entryPrefix)
	binary.BigEndian.PutUint64(key[1:], id)
	return key
}
