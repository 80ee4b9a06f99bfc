package storage

import (
	"context"
	"sync"
)

// MemoryKV guarda os blobs em memória. Usado nos testes e como
// fallback quando não se quer tocar em disco.
type MemoryKV struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	// Quando setados, forçam falha na próxima operação (testes de
	// propagação de erro).
	FailRead  error
	FailWrite error
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{blobs: map[string][]byte{}}
}

func (s *MemoryKV) Read(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailRead != nil {
		return nil, false, s.FailRead
	}

	b, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, true, nil
}

func (s *MemoryKV) Write(ctx context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrite != nil {
		return s.FailWrite
	}

	b := make([]byte, len(blob))
	copy(b, blob)
	s.blobs[key] = b
	return nil
}
