package services

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"safari/internal/models/response_models"
	"safari/pkg/utils"
)

// GalleryURLPrefix is where the gallery directory is served.
const GalleryURLPrefix = "/gallery"

var galleryExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true, ".avif": true,
}

type GalleryServiceInterface interface {
	ListImages(ctx context.Context) ([]response_models.GalleryImage, error)
}

type GalleryService struct {
	dir string
	log *zap.Logger
}

func NewGalleryService(dir string, log *zap.Logger) GalleryServiceInterface {
	return &GalleryService{dir: dir, log: log}
}

// ListImages derives the listing from the files on disk on every call, so
// dropping an image into the directory publishes it.
func (s *GalleryService) ListImages(ctx context.Context) ([]response_models.GalleryImage, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Error("read gallery dir", zap.String("dir", s.dir), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", utils.ErrGalleryUnavailable, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if galleryExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	images := make([]response_models.GalleryImage, 0, len(names))
	for i, name := range names {
		images = append(images, response_models.GalleryImage{
			ID:  i + 1,
			Src: path.Join(GalleryURLPrefix, name),
			Alt: altFromFileName(name),
		})
	}
	return images, nil
}

// altFromFileName turns "lion-pride_at-dawn.jpg" into "Lion pride at dawn".
func altFromFileName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})
	if len(words) == 0 {
		return "Gallery image"
	}
	alt := strings.Join(words, " ")
	first, size := utf8.DecodeRuneInString(alt)
	return string(unicode.ToUpper(first)) + alt[size:]
}
