package gallery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"photo-gallery/internal/exif"
	"photo-gallery/internal/logging"

	"github.com/joho/godotenv"
)

// photoExtensions are the accepted image extensions, matched
// case-insensitively against direct album entries.
var photoExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

// ScanAlbums discovers every album under photosRoot. A missing or
// unreadable root yields an empty list. Dot-prefixed entries and
// non-directories are skipped. The result is sorted by album title.
func ScanAlbums(photosRoot string) []Album {
	albums := []Album{}

	entries, err := os.ReadDir(photosRoot)
	if err != nil {
		logging.Debug("ScanAlbums: unreadable root %s: %v", photosRoot, err)
		return albums
	}

	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		albumPath := filepath.Join(photosRoot, name)
		photos := ListPhotos(albumPath)
		albums = append(albums, LoadAlbum(name, albumPath, photos))
	}

	sort.Slice(albums, func(i, j int) bool {
		return albums[i].Title < albums[j].Title
	})

	return albums
}

// ListPhotos enumerates the image files directly inside albumPath, sorted
// ascending by filename so that prev/next ordering and cover selection are
// deterministic. An unreadable directory yields an empty list.
func ListPhotos(albumPath string) []Photo {
	photos := []Photo{}

	entries, err := os.ReadDir(albumPath)
	if err != nil {
		logging.Debug("ListPhotos: unreadable directory %s: %v", albumPath, err)
		return photos
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if photoExtensions[ext] {
			photos = append(photos, Photo{Filename: entry.Name()})
		}
	}

	sort.Slice(photos, func(i, j int) bool {
		return photos[i].Filename < photos[j].Filename
	})

	return photos
}

// LoadAlbum builds the Album for slug from its directory and photo list.
// Display fields come from the album's override file when present;
// otherwise the title is derived from the slug and the timespan from the
// photos' EXIF capture dates.
func LoadAlbum(slug, albumPath string, photos []Photo) Album {
	override := loadOverride(albumPath)

	album := Album{
		Slug:        slug,
		Title:       slugToTitle(slug),
		Description: "",
		Timespan:    "",
	}

	if override.Title != nil {
		album.Title = *override.Title
	}
	if override.Description != nil {
		album.Description = *override.Description
	}
	if override.Timespan != nil {
		album.Timespan = *override.Timespan
	} else {
		album.Timespan = deriveTimespan(albumPath, photos)
	}

	if len(photos) > 0 {
		cover := photos[0].Filename
		album.Cover = &cover
	}

	return album
}

// loadOverride reads the album's optional metadata file. Absence or a
// parse failure silently yields an empty override; bad per-album config
// must never take an album offline.
func loadOverride(albumPath string) AlbumOverride {
	path := filepath.Join(albumPath, OverrideFile)

	values, err := godotenv.Read(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Debug("loadOverride: ignoring unparsable %s: %v", path, err)
		}
		return AlbumOverride{}
	}

	override := AlbumOverride{}
	if v, ok := values["TITLE"]; ok {
		override.Title = &v
	}
	if v, ok := values["DESCRIPTION"]; ok {
		override.Description = &v
	}
	if v, ok := values["TIMESPAN"]; ok {
		override.Timespan = &v
	}
	return override
}

// deriveTimespan collects capture dates from the album's photos and
// reduces them to a month/year caption. Photos without EXIF dates simply
// contribute nothing.
func deriveTimespan(albumPath string, photos []Photo) string {
	var dates []string
	for _, photo := range photos {
		if date := exif.CaptureDate(filepath.Join(albumPath, photo.Filename)); date != nil {
			dates = append(dates, *date)
		}
	}
	return FormatDateRange(dates)
}

// slugToTitle turns a directory name like "summer-trip" into "Summer Trip":
// hyphens become spaces and each word's first rune is upper-cased.
func slugToTitle(slug string) string {
	words := strings.Fields(strings.ReplaceAll(slug, "-", " "))
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}
