package gallery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	domain "feldiserhof/internal/domain/gallery"
)

// Scanner lists gallery albums.
type Scanner interface {
	ListAlbums(ctx context.Context) ([]domain.Album, error)
}

// FSScanner reads albums from a directory on disk. Each subdirectory is an
// album; image files inside it become that album's images in filename order.
type FSScanner struct {
	root    string // directory containing album folders
	urlBase string // URL prefix images are served under, e.g. "/gallery"
}

// NewFSScanner creates a scanner rooted at dir serving images under urlBase.
func NewFSScanner(dir, urlBase string) *FSScanner {
	return &FSScanner{root: dir, urlBase: urlBase}
}

// ListAlbums scans the gallery directory.
// POST: Returns albums sorted by name, images sorted by filename;
// a missing gallery directory yields an empty list, not an error
func (s *FSScanner) ListAlbums(_ context.Context) ([]domain.Album, error) {
	entries, err := os.ReadDir(s.root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read gallery dir: %w", err)
	}

	var albums []domain.Album
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		album, err := s.scanAlbum(entry.Name())
		if err != nil {
			return nil, err
		}
		if len(album.Images) > 0 {
			albums = append(albums, album)
		}
	}
	sort.Slice(albums, func(i, j int) bool { return albums[i].Name < albums[j].Name })
	return albums, nil
}

func (s *FSScanner) scanAlbum(name string) (domain.Album, error) {
	files, err := os.ReadDir(filepath.Join(s.root, name))
	if err != nil {
		return domain.Album{}, fmt.Errorf("read album %s: %w", name, err)
	}

	album := domain.Album{Name: name}
	for _, f := range files {
		if f.IsDir() || !domain.IsImageFile(f.Name()) {
			continue
		}
		album.Images = append(album.Images, domain.Image{
			Src: s.urlBase + "/" + name + "/" + f.Name(),
			Alt: domain.AltText(name, f.Name()),
		})
	}
	sort.Slice(album.Images, func(i, j int) bool { return album.Images[i].Src < album.Images[j].Src })
	return album, nil
}
