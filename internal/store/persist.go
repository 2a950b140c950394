package store

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/aliasman/internal/errors"
	"github.com/thoreinstein/aliasman/internal/fileaccess"
)

// Decode parses TOML text into a Store.
// The document must contain an [alias] table; a missing general mapping is
// treated as empty.
func Decode(text string) (*Store, error) {
	var doc Document
	if err := toml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if doc.Alias == nil {
		return nil, fmt.Errorf("%w: missing [alias] table", ErrInvalidFile)
	}
	return New(doc.Alias), nil
}

// Encode renders s as TOML text.
func Encode(s *Store) (string, error) {
	out, err := toml.Marshal(Document{Alias: s.cfg})
	if err != nil {
		return "", errors.Wrap(err, "marshaling alias file")
	}
	return string(out), nil
}

// Load reads and decodes the alias file at path.
func Load(r fileaccess.Reader, path string) (*Store, error) {
	text, err := r.ReadText(path)
	if err != nil {
		return nil, errors.Wrap(err, "loading alias file")
	}
	s, err := Decode(text)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return s, nil
}

// Save encodes s and replaces the alias file at path.
func Save(w fileaccess.Writer, path string, s *Store) error {
	text, err := Encode(s)
	if err != nil {
		return err
	}
	if err := w.WriteText(path, text); err != nil {
		return errors.Wrap(err, "saving alias file")
	}
	return nil
}
