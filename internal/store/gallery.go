package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbearia-app/internal/models"
	"github.com/BruksfildServices01/barbearia-app/internal/storage"
	"github.com/BruksfildServices01/barbearia-app/internal/timefmt"
)

// NewPhotoID gera o identificador composto tempo+aleatório das fotos.
func NewPhotoID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("photo_%d_%s", timefmt.Now().UnixMilli(), random)
}

func (s *Store) Photos() []models.GalleryPhoto {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.GalleryPhoto, len(s.gallery.Photos))
	copy(out, s.gallery.Photos)
	return out
}

func (s *Store) AddPhoto(ctx context.Context, photo models.GalleryPhoto) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gallery.Photos = append(s.gallery.Photos, photo)
	return s.persistGallery(ctx)
}

func (s *Store) DeletePhoto(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.gallery.Photos {
		if s.gallery.Photos[i].ID == id {
			s.gallery.Photos = append(
				s.gallery.Photos[:i],
				s.gallery.Photos[i+1:]...,
			)
			return s.persistGallery(ctx)
		}
	}

	return ErrNotFound
}

// LikePhoto incrementa a contagem de curtidas. A contagem é local ao
// aparelho, sem pretensão de consistência entre dispositivos.
func (s *Store) LikePhoto(ctx context.Context, id string) (models.GalleryPhoto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.gallery.Photos {
		if s.gallery.Photos[i].ID == id {
			s.gallery.Photos[i].Likes++
			photo := s.gallery.Photos[i]
			return photo, s.persistGallery(ctx)
		}
	}

	return models.GalleryPhoto{}, ErrNotFound
}

func (s *Store) persistGallery(ctx context.Context) error {
	blob, err := json.Marshal(s.gallery)
	if err != nil {
		return err
	}
	return s.kv.Write(ctx, storage.KeyGallery, blob)
}
