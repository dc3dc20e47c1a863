// rtcrack.go -- top-level "generate", "search" and "crack" entry
// points wiring the Hash Registry, Chain Walker, Generator Pool, Table
// Store, Sorter, Lookup Engine and Exhaustive Searcher together.
//
// (c) 2024 opencoff contributors

package rtcrack

import (
	"fmt"
	"path/filepath"
)

// GenerateTables builds tableCount independent tables of chainNum
// chains x chainLen steps each for the hash registered as hashName,
// writing one file per index in [0, tableCount) under dir (or the
// current directory if dir is empty) named per EncodeTableName. Each
// table is sorted by endpoint before GenerateTables returns, so it is
// immediately ready for Session.SearchFile.
func GenerateTables(dir, hashName string, chainNum, chainLen uint64, tableCount uint) error {
	h, digestLen, err := Resolve(hashName)
	if err != nil {
		return err
	}

	for idx := uint(0); idx < tableCount; idx++ {
		path := EncodeTableName(hashName, chainNum, chainLen, idx)
		if dir != "" {
			path = filepath.Join(dir, path)
		}

		if err := generateOneTable(path, chainNum, chainLen, h, digestLen); err != nil {
			return err
		}
	}
	return nil
}

func generateOneTable(path string, chainNum, chainLen uint64, h HashFunc, digestLen int) error {
	w, err := CreateTable(path)
	if err != nil {
		return err
	}

	genErr := Generate(chainNum, chainLen, h, digestLen, w, DefaultSource())
	closeErr := w.Close()
	if genErr != nil {
		return genErr
	}
	if closeErr != nil {
		return closeErr
	}

	return SortTableFile(path)
}

// SortTableFile opens path read-write, sorts it in place by endpoint,
// and closes it -- the MAP_SHARED unmap flushes the sorted order back
// to disk.
func SortTableFile(path string) error {
	t, err := OpenTableRW(path)
	if err != nil {
		return err
	}

	Sort(t.Chains)
	return t.Close()
}

// VerifyTable checks that a table file's name-encoded chain count
// matches its actual size and that its chains are sorted by endpoint.
// This is the one operation SPEC_FULL.md adds beyond spec.md's literal
// generate/search/crack trio.
func VerifyTable(path string) error {
	_, chainNum, _, err := DecodeTableName(filepath.Base(path))
	if err != nil {
		return err
	}

	t, err := OpenTableRO(path)
	if err != nil {
		return err
	}
	defer t.Close()

	if uint64(len(t.Chains)) != chainNum {
		return fmt.Errorf("rtcrack: %s: holds %d chains, name says %d", path, len(t.Chains), chainNum)
	}

	for i := 1; i < len(t.Chains); i++ {
		if t.Chains[i-1].End > t.Chains[i].End {
			return fmt.Errorf("rtcrack: %s: not sorted at chain %d", path, i)
		}
	}
	return nil
}

// Session bundles a resolved hash function with a result cache, for
// callers that search or crack the same target digest across many
// table files. The CLI creates one Session per invocation and makes a
// single lookup with it.
type Session struct {
	HashName  string
	Fn        HashFunc
	DigestLen int

	cache *ResultCache
}

// NewSession resolves hashName and prepares a result cache of the
// default size.
func NewSession(hashName string) (*Session, error) {
	h, digestLen, err := Resolve(hashName)
	if err != nil {
		return nil, err
	}

	cache, err := NewResultCache(0)
	if err != nil {
		return nil, err
	}

	return &Session{HashName: hashName, Fn: h, DigestLen: digestLen, cache: cache}, nil
}

// SearchFile opens one sorted table file and looks up targetDigest in
// it, consulting the session's result cache first and populating it
// on a hit.
func (s *Session) SearchFile(path string, targetDigest []byte) (Result, error) {
	key := targetDigest[:s.DigestLen]
	if r, ok := s.cache.Get(s.HashName, key); ok {
		return r, nil
	}

	_, _, chainLen, err := DecodeTableName(filepath.Base(path))
	if err != nil {
		return Result{}, err
	}

	t, err := OpenTableRO(path)
	if err != nil {
		return Result{}, err
	}
	defer t.Close()

	r, err := Search(t.Chains, int(chainLen), s.Fn, s.DigestLen, targetDigest)
	if err != nil {
		return Result{}, err
	}
	if r.Found {
		s.cache.Add(s.HashName, key, r)
	}
	return r, nil
}

// Crack exhaustively searches the full seed space for targetDigest,
// consulting and populating the session's result cache the same way
// SearchFile does.
func (s *Session) Crack(targetDigest []byte) Result {
	key := targetDigest[:s.DigestLen]
	if r, ok := s.cache.Get(s.HashName, key); ok {
		return r
	}

	r := Crack(s.Fn, s.DigestLen, targetDigest)
	if r.Found {
		s.cache.Add(s.HashName, key, r)
	}
	return r
}
