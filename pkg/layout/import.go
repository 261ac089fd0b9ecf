package layout

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/seqdraw/pkg/errors"
)

// ReadJSON decodes a layout model from r and validates it.
//
// ReadJSON returns an INVALID_LAYOUT error for malformed JSON or unknown
// fields, and whatever [Model.Validate] reports for inconsistent models.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Model, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var m Model
	if err := dec.Decode(&m); err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode layout")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ImportJSON reads the layout model file at path.
func ImportJSON(path string) (*Model, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
