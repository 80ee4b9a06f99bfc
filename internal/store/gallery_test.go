package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/BruksfildServices01/barbearia-app/internal/models"
)

func TestGalleryLifecycle(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	photo := models.GalleryPhoto{
		ID:        NewPhotoID(),
		Title:     "Degradê navalhado",
		StaffName: "Carlos",
		Date:      "25/12/2025",
		Image:     "/media/abc.webp",
		Category:  models.CategoryCut,
	}

	if err := s.AddPhoto(ctx, photo); err != nil {
		t.Fatalf("AddPhoto: %v", err)
	}

	liked, err := s.LikePhoto(ctx, photo.ID)
	if err != nil {
		t.Fatalf("LikePhoto: %v", err)
	}
	if liked.Likes != 1 {
		t.Errorf("Likes = %d, want 1", liked.Likes)
	}

	// Curtidas persistem.
	reloaded, err := Load(ctx, kv)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	photos := reloaded.Photos()
	if len(photos) != 1 || photos[0].Likes != 1 {
		t.Errorf("after reload: %+v", photos)
	}

	if err := s.DeletePhoto(ctx, photo.ID); err != nil {
		t.Fatalf("DeletePhoto: %v", err)
	}
	if len(s.Photos()) != 0 {
		t.Error("photo still present after delete")
	}

	if _, err := s.LikePhoto(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LikePhoto on missing id: err = %v, want ErrNotFound", err)
	}
	if err := s.DeletePhoto(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeletePhoto on missing id: err = %v, want ErrNotFound", err)
	}
}

func TestNewPhotoID(t *testing.T) {
	a := NewPhotoID()
	b := NewPhotoID()

	if a == b {
		t.Errorf("ids collide: %s", a)
	}
	for _, id := range []string{a, b} {
		if !strings.HasPrefix(id, "photo_") {
			t.Errorf("id %q missing prefix", id)
		}
		if len(strings.Split(id, "_")) != 3 {
			t.Errorf("id %q is not a time+random composite", id)
		}
	}
}
