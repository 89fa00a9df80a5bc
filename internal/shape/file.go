package shape

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the file suffix used for shape files.
const Extension = ".shapefile"

// Load parses raw text at the caller boundary: empty input is a single
// file-level error and an empty shape list. The bundle is empty when every
// line parsed.
func Load(raw string) (Result, Bundle) {
	if raw == "" {
		b := emptyFileBundle()
		return Result{Errors: b.Logs}, b
	}
	res := Parse(raw)
	if len(res.Errors) == 0 {
		return res, Bundle{}
	}
	return res, Bundle{Title: TitleParse, Logs: res.Errors}
}

// LoadFile reads and parses a shape file. A read failure is returned as err
// together with the bundle the overlay should show.
func LoadFile(path string) (Result, Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fileErrorBundle(), fmt.Errorf("read shape file: %w", err)
	}
	res, b := Load(string(data))
	return res, b, nil
}

// Save serializes shapes to dir/name.shapefile. An empty name blocks the save
// and is reported through the bundle with nothing written.
func Save(dir, name string, shapes []Shape) (string, Bundle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", emptySaveNameBundle(), nil
	}
	if !strings.HasSuffix(strings.ToLower(name), Extension) {
		name += Extension
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(Serialize(shapes)), 0o644); err != nil {
		return "", Bundle{}, fmt.Errorf("save shape file: %w", err)
	}
	return path, Bundle{}, nil
}
