// Package memory keeps sessions and their document stores in process memory.
// Nothing survives a restart.
package memory

import (
	"sync"

	"smartcarbon/internal/domain"
)

// DocumentStore is an append-only sequence of processed documents with a
// running emissions total. The total always equals the sum of the recorded
// documents' emissions.
type DocumentStore struct {
	mu    sync.RWMutex
	docs  []domain.ProcessedDocument
	total float64
}

// NewDocumentStore returns an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Record appends doc and adds its emissions to the running total.
func (s *DocumentStore) Record(doc domain.ProcessedDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, doc)
	s.total += doc.Emissions
}

// Snapshot copies the documents and total under one lock.
func (s *DocumentStore) Snapshot() domain.StoreSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.ProcessedDocument, len(s.docs))
	copy(docs, s.docs)
	return domain.StoreSnapshot{Documents: docs, TotalEmissions: s.total}
}

// Len returns the number of recorded documents.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Total returns the running emissions total.
func (s *DocumentStore) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}
