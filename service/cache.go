package service

import (
	"encoding/binary"
	"sync"

	"github.com/minio/highwayhash"

	"github.com/dugjason/split-csv/document"
	"github.com/dugjason/split-csv/splitter"
)

var cacheKey = []byte("split-csv-result-cache-key-0001!")

// resultKey hashes normalized content together with the options so repeated
// identical calls can reuse a prior result.
func resultKey(content string, options splitter.Options) (uint64, error) {
	h, err := highwayhash.New64(cacheKey)
	if err != nil {
		return 0, err
	}
	if _, err = h.Write([]byte(content)); err != nil {
		return 0, err
	}
	var opts [9]byte
	binary.BigEndian.PutUint64(opts[:8], uint64(options.MaxLinesPerFile))
	if options.IncludeHeader {
		opts[8] = 1
	}
	if _, err = h.Write(opts[:]); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

// resultCache is a per-Service in-memory store of split results. It lives
// and dies with the Service value; nothing persists between runs.
type resultCache struct {
	sync.RWMutex
	data map[uint64]*document.SplitResult
}

func newResultCache() *resultCache {
	return &resultCache{data: make(map[uint64]*document.SplitResult)}
}

func (c *resultCache) get(key uint64) (*document.SplitResult, bool) {
	c.RLock()
	defer c.RUnlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *resultCache) set(key uint64, value *document.SplitResult) {
	c.Lock()
	defer c.Unlock()
	c.data[key] = value
}

func (c *resultCache) size() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.data)
}
