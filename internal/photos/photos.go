// Package photos stores player photos on disk. Uploads are re-encoded as
// JPEG so the stored file format never depends on what the admin uploaded.
package photos

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
)

const jpegQuality = 85

// Store saves player photos under a single directory.
type Store struct {
	dir string
}

// New creates the photos directory if needed and returns a Store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create photos dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save decodes the uploaded image, re-encodes it as JPEG and writes it as
// <id>_<slug(name)>.jpg, replacing any previous file at that path. It returns
// the stored path for the player row.
func (s *Store) Save(playerID int64, playerName string, r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("failed to decode uploaded image: %w", err)
	}

	filename := fmt.Sprintf("%d_%s.jpg", playerID, slugify(playerName))
	path := filepath.Join(s.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("failed to encode photo: %w", err)
	}

	log.Info("Saved player photo", "playerID", playerID, "path", path)
	return path, nil
}

// slugify keeps letters, digits and spaces, then joins words with underscores.
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' {
			b.WriteRune(r)
		}
	}
	slug := strings.Join(strings.Fields(b.String()), "_")
	if slug == "" {
		slug = "player"
	}
	return slug
}
