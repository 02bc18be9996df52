package history

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// KV is the byte store results are persisted in.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// Options configures a Store.
type Options struct {
	Key        string
	MaxResults int
	Logger     *log.Logger
}

// Store reads and writes the result list. Storage failures never reach the
// caller: reads fall back to an empty list and writes are dropped, both
// with a warning in the log.
type Store struct {
	mu     sync.Mutex
	kv     KV
	key    string
	max    int
	logger *log.Logger
}

// New creates a store on top of kv.
func New(kv KV, opts Options) *Store {
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Store{
		kv:     kv,
		key:    opts.Key,
		max:    opts.MaxResults,
		logger: opts.Logger,
	}
}

// Key returns the key the list is stored under.
func (s *Store) Key() string {
	return s.key
}

// Record prepends r and truncates the list to the configured maximum.
func (s *Store) Record(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := append([]Result{r}, s.load()...)
	if len(results) > s.max {
		results = results[:s.max]
	}
	s.save(results)
}

// List returns results, most recent first.
func (s *Store) List() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Best returns the result with the lowest score. On a tie the most recent
// result wins.
func (s *Store) Best() (Result, bool) {
	results := s.List()
	if len(results) == 0 {
		return Result{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Score < best.Score {
			best = r
		}
	}
	return best, true
}

// Stats summarises the stored results.
func (s *Store) Stats() Stats {
	return Summarize(s.List())
}

// Clear removes every stored result.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv == nil {
		return
	}
	if err := s.kv.Delete(s.key); err != nil {
		s.logger.Warn("history clear failed", "key", s.key, "error", err)
	}
}

func (s *Store) load() []Result {
	if s.kv == nil {
		return nil
	}
	data, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.logger.Warn("history read failed", "key", s.key, "error", err)
		return nil
	}
	if !ok || len(data) == 0 {
		return nil
	}
	var results []Result
	if err := json.Unmarshal(data, &results); err != nil {
		s.logger.Warn("history data corrupted, starting empty", "key", s.key, "error", err)
		return nil
	}
	return results
}

func (s *Store) save(results []Result) {
	if s.kv == nil {
		return
	}
	data, err := json.Marshal(results)
	if err != nil {
		s.logger.Warn("history encode failed", "error", err)
		return
	}
	if err := s.kv.Put(s.key, data); err != nil {
		s.logger.Warn("history write failed", "key", s.key, "error", err)
	}
}
