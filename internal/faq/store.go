package faq

import "sync/atomic"

// Store holds the catalog being served; Replace swaps it atomically.
type Store struct {
	current atomic.Pointer[Catalog]
}

func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

func (s *Store) Catalog() *Catalog {
	return s.current.Load()
}

func (s *Store) Replace(c *Catalog) {
	s.current.Store(c)
}
