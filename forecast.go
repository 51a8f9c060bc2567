package finance

import (
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

// DefaultForecastCacheSize is the capacity of a Forecaster built with a non positive size.
const DefaultForecastCacheSize = 1024

// Snapshot is a canonical, order preserving encoding of a transaction collection.
//
// Two snapshots are equal only if they encode the same transactions in the
// same order: reordering a collection yields a different Snapshot.
type Snapshot struct {
	transactions []Transaction
	encoding     string
	digest       uint64
}

// NewSnapshot encodes transactions. The snapshot keeps its own copy.
func NewSnapshot(transactions []Transaction) Snapshot {
	var b strings.Builder
	for _, t := range transactions {
		writeField(&b, t.ID)
		writeField(&b, t.AccountID)
		writeField(&b, t.CategoryID)
		writeField(&b, strconv.FormatInt(t.Amount, 10))
		writeField(&b, t.Date.String())
		note, ok := t.Note.Get()
		if !ok {
			b.WriteString("-;")
		} else {
			writeField(&b, note)
		}
	}
	encoding := b.String()
	return Snapshot{
		transactions: append([]Transaction(nil), transactions...),
		encoding:     encoding,
		digest:       xxhash.Sum64String(encoding),
	}
}

// writeField writes a length prefixed field, so that no field content can be
// mistaken for a separator.
func writeField(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
	b.WriteByte(';')
}

// Digest returns a 64 bits fingerprint of the encoding.
func (s Snapshot) Digest() uint64 { return s.digest }

// Len returns the number of transactions in s.
func (s Snapshot) Len() int { return len(s.transactions) }

// Equal reports whether s and o encode the same collection.
func (s Snapshot) Equal(o Snapshot) bool { return s.digest == o.digest && s.encoding == o.encoding }

// ForecastExpense estimates the next expense of a category: the mean absolute
// amount of its last min(period, count) expenses in insertion order,
// truncated to an integer. It is 0 without expenses or for a non positive period.
func ForecastExpense(categoryID string, transactions []Transaction, period int) int64 {
	if period <= 0 {
		return 0
	}
	var amounts []int64
	for _, t := range transactions {
		if t.CategoryID == categoryID && t.IsExpense() {
			amounts = append(amounts, t.Spent())
		}
	}
	if len(amounts) == 0 {
		return 0
	}
	n := min(period, len(amounts))
	var sum int64
	for _, a := range amounts[len(amounts)-n:] {
		sum += a
	}
	return sum / int64(n)
}

type forecastKey struct {
	categoryID string
	digest     uint64
	period     int
}

type forecastEntry struct {
	encoding string
	value    int64
}

// ForecastStats counts cache hits and misses of a Forecaster.
type ForecastStats struct {
	Hits, Misses int
}

// Forecaster memoizes ForecastExpense by (category, snapshot, period) in a
// bounded least recently used cache.
//
// It is safe for concurrent use.
type Forecaster struct {
	mu    sync.Mutex
	cache *lru.Cache[forecastKey, forecastEntry]
	stats ForecastStats
	log   *logrus.Entry
}

// NewForecaster returns a Forecaster keeping at most size results.
func NewForecaster(size int, log *logrus.Entry) *Forecaster {
	if size <= 0 {
		size = DefaultForecastCacheSize
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	// lru.New only fails on a non positive size.
	cache, _ := lru.New[forecastKey, forecastEntry](size)
	return &Forecaster{cache: cache, log: log}
}

// Forecast returns ForecastExpense(categoryID, snapshot, period), computed at
// most once per distinct key while it stays in the cache.
func (f *Forecaster) Forecast(categoryID string, snap Snapshot, period int) int64 {
	key := forecastKey{categoryID: categoryID, digest: snap.digest, period: period}

	f.mu.Lock()
	defer f.mu.Unlock()

	if e, ok := f.cache.Get(key); ok && e.encoding == snap.encoding {
		f.stats.Hits++
		return e.value
	}
	f.stats.Misses++
	value := ForecastExpense(categoryID, snap.transactions, period)
	f.cache.Add(key, forecastEntry{encoding: snap.encoding, value: value})
	f.log.WithFields(logrus.Fields{
		"category": categoryID,
		"period":   period,
		"forecast": value,
		"cached":   f.cache.Len(),
	}).Debug("Forecaster.Forecast.computed")
	return value
}

// Stats returns the hit and miss counters.
func (f *Forecaster) Stats() ForecastStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

// Len returns the number of cached results.
func (f *Forecaster) Len() int { return f.cache.Len() }
