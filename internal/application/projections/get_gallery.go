package projections

import (
	"context"

	"feldiserhof/internal/domain/gallery"
)

// GalleryScanner defines the scanner interface needed by this projection.
type GalleryScanner interface {
	ListAlbums(ctx context.Context) ([]gallery.Album, error)
}

// GetGalleryDeps holds dependencies for the projection.
type GetGalleryDeps struct {
	Scanner GalleryScanner
}

// GalleryImage is one photo as sent to the client.
type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// GalleryAlbum is one album as sent to the client.
type GalleryAlbum struct {
	Name   string         `json:"name"`
	Images []GalleryImage `json:"images"`
}

// QueryGallery lists the photo albums found on disk.
func QueryGallery(ctx context.Context, deps GetGalleryDeps) ([]GalleryAlbum, error) {
	albums, err := deps.Scanner.ListAlbums(ctx)
	if err != nil {
		return nil, err
	}

	var results []GalleryAlbum
	for _, a := range albums {
		album := GalleryAlbum{Name: a.Name}
		for _, img := range a.Images {
			album.Images = append(album.Images, GalleryImage{Src: img.Src, Alt: img.Alt})
		}
		results = append(results, album)
	}
	return results, nil
}
