package exif

import (
	"os"
	"strconv"
	"strings"

	"photo-gallery/internal/logging"

	goexif "github.com/rwcarlsen/goexif/exif"
)

// Metadata holds normalized camera metadata for one image. Every field is
// optional; nil means the tag was missing or unreadable. Values are display
// strings without unit decoration, except FocalLength which carries a
// " mm" suffix.
type Metadata struct {
	Camera      *string `json:"camera,omitempty"`
	Lens        *string `json:"lens,omitempty"`
	FocalLength *string `json:"focalLength,omitempty"`
	Aperture    *string `json:"aperture,omitempty"`
	Exposure    *string `json:"exposure,omitempty"`
	ISO         *string `json:"iso,omitempty"`
}

// Extract reads the EXIF container of the file at path and returns its
// normalized metadata. Any failure yields a zero Metadata.
func Extract(path string) Metadata {
	x := decode(path)
	if x == nil {
		return Metadata{}
	}

	var focal *string
	if f := rationalField(x, goexif.FocalLength); f != nil {
		withUnit := *f + " mm"
		focal = &withUnit
	}

	return Metadata{
		Camera:      cameraName(stringField(x, goexif.Make), stringField(x, goexif.Model)),
		Lens:        stringField(x, goexif.LensModel),
		FocalLength: focal,
		Aperture:    rationalField(x, goexif.FNumber),
		Exposure:    exposureField(x),
		ISO:         intField(x, goexif.ISOSpeedRatings),
	}
}

// CaptureDate returns the raw DateTimeOriginal value, or nil when the file
// has no readable capture date.
func CaptureDate(path string) *string {
	x := decode(path)
	if x == nil {
		return nil
	}
	return stringField(x, goexif.DateTimeOriginal)
}

// Summary renders the metadata as a single display line: camera and lens
// joined by " · ", followed by the settings cluster (focal length,
// aperture, exposure, ISO) joined by two spaces. Absent fields are simply
// omitted; fully absent metadata renders as an empty string.
func (m Metadata) Summary() string {
	var parts []string

	if m.Camera != nil {
		parts = append(parts, *m.Camera)
	}
	if m.Lens != nil {
		parts = append(parts, *m.Lens)
	}

	var settings []string
	if m.FocalLength != nil {
		settings = append(settings, *m.FocalLength)
	}
	if m.Aperture != nil {
		settings = append(settings, "ƒ/"+*m.Aperture)
	}
	if m.Exposure != nil {
		settings = append(settings, *m.Exposure+"s")
	}
	if m.ISO != nil {
		settings = append(settings, "ISO "+*m.ISO)
	}
	if len(settings) > 0 {
		parts = append(parts, strings.Join(settings, "  "))
	}

	return strings.Join(parts, " · ")
}

// decode opens and parses the file's EXIF container. All failures,
// including a missing file, degrade to nil.
func decode(path string) *goexif.Exif {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	x, err := goexif.Decode(f)
	if err != nil {
		logging.Debug("exif: no readable metadata in %s: %v", path, err)
		return nil
	}
	return x
}

// stringField looks up a tag and cleans its display value.
func stringField(x *goexif.Exif, name goexif.FieldName) *string {
	tag, err := x.Get(name)
	if err != nil {
		return nil
	}
	return cleanValue(tag.String())
}

// rationalField renders a rational tag as a plain decimal string, e.g.
// FNumber 28/5 becomes "5.6" and FocalLength 18/1 becomes "18".
func rationalField(x *goexif.Exif, name goexif.FieldName) *string {
	tag, err := x.Get(name)
	if err != nil {
		return nil
	}

	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		return cleanValue(tag.String())
	}

	v := strconv.FormatFloat(float64(num)/float64(den), 'f', -1, 64)
	return &v
}

// exposureField keeps exposure times in their familiar fractional form,
// e.g. "1/280", collapsing whole-second values to a plain integer.
func exposureField(x *goexif.Exif) *string {
	tag, err := x.Get(goexif.ExposureTime)
	if err != nil {
		return nil
	}

	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		return cleanValue(tag.String())
	}

	var v string
	if den == 1 {
		v = strconv.FormatInt(num, 10)
	} else {
		v = strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
	}
	return &v
}

func intField(x *goexif.Exif, name goexif.FieldName) *string {
	tag, err := x.Get(name)
	if err != nil {
		return nil
	}

	n, err := tag.Int(0)
	if err != nil {
		return cleanValue(tag.String())
	}

	v := strconv.Itoa(n)
	return &v
}

// cleanValue strips the surrounding quotes that raw tag rendering adds and
// treats an empty remainder as absent, preserving the distinction between
// "present but empty" and "absent".
func cleanValue(raw string) *string {
	val := strings.Trim(raw, `"`)
	if val == "" {
		return nil
	}
	return &val
}

// cameraName combines the camera make and model into one display name.
// Some vendors repeat the make inside the model string, so a model that
// already starts with the make stands alone.
func cameraName(make, model *string) *string {
	switch {
	case make != nil && model != nil:
		if strings.HasPrefix(*model, *make) {
			return model
		}
		combined := *make + " " + *model
		return &combined
	case model != nil:
		return model
	case make != nil:
		return make
	default:
		return nil
	}
}
