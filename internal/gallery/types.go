package gallery

// OverrideFile is the well-known name of the optional per-album metadata
// file, in KEY=value format with TITLE, DESCRIPTION, and TIMESPAN keys.
const OverrideFile = "album.conf"

// Album is a directory-backed collection of photos with derived or
// overridden display metadata. Albums are immutable once constructed.
type Album struct {
	// Slug is the album directory name and the album's stable identity.
	Slug string `json:"slug"`
	// Title is the display name: the override title if present, otherwise
	// the slug transformed to title case.
	Title string `json:"title"`
	// Description is free text and may be empty.
	Description string `json:"description"`
	// Timespan is a display caption such as "June 2024 – September 2024".
	// Empty when no override is set and no photo carries a capture date.
	Timespan string `json:"timespan"`
	// Cover is the filename of the first photo in sort order, or nil for
	// an empty album.
	Cover *string `json:"cover,omitempty"`
}

// Photo is a single image file within an album.
type Photo struct {
	Filename string `json:"filename"`
}

// AlbumOverride holds the optional per-album configuration. Each field is
// nil when the override file is absent, unparsable, or missing the key.
type AlbumOverride struct {
	Title       *string
	Description *string
	Timespan    *string
}
