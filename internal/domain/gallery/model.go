package gallery

import (
	"path"
	"strings"
)

// imageExtensions lists the file types served from album folders.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// Image is one photo inside an album.
type Image struct {
	Src string // URL path under /gallery/
	Alt string
}

// Album is a named folder of images under the gallery directory.
type Album struct {
	Name   string
	Images []Image
}

// IsImageFile reports whether the filename has a served image extension.
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(path.Ext(name))]
}

// AltText builds the alt attribute for an image: the album name plus the
// filename without its extension.
func AltText(album, filename string) string {
	base := strings.TrimSuffix(filename, path.Ext(filename))
	return album + " – " + base
}
