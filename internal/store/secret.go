package store

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbearia-app/internal/storage"
)

// O blob de segredo guarda uma única string: o hash bcrypt do código
// de acesso administrativo. No primeiro boot é semeado o hash do
// código padrão.

func (s *Store) loadAdminCode(ctx context.Context) error {
	blob, found, err := s.kv.Read(ctx, storage.KeySecret)
	if err != nil {
		return err
	}

	if found {
		s.codeHash = string(blob)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminCode), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.codeHash = string(hash)
	return s.kv.Write(ctx, storage.KeySecret, hash)
}

func (s *Store) VerifyAdminCode(code string) bool {
	s.mu.Lock()
	hash := s.codeHash
	s.mu.Unlock()

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}

func (s *Store) UpdateAdminCode(ctx context.Context, code string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.codeHash = string(hash)
	return s.kv.Write(ctx, storage.KeySecret, hash)
}
