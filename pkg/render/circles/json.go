package circles

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/grid"
	"github.com/matzehuels/circlegrid/pkg/pack"
)

// document is the on-disk form of a Layout.
type document struct {
	Width   float64       `json:"width"`
	Height  float64       `json:"height"`
	Margin  float64       `json:"margin"`
	Rows    int           `json:"rows"`
	Cols    int           `json:"cols"`
	Cells   []grid.Cell   `json:"cells,omitempty"`
	Circles []pack.Circle `json:"circles"`
}

// MarshalLayout encodes l as indented JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	data, err := json.MarshalIndent(document(l), "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal layout")
	}
	return data, nil
}

// UnmarshalLayout decodes a layout written by MarshalLayout. Missing cells
// are recomputed from the circles.
func UnmarshalLayout(data []byte) (Layout, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse layout")
	}
	if err := errors.ValidateArea("layout", doc.Width, doc.Height); err != nil {
		return Layout{}, err
	}
	if len(doc.Cells) == 0 && len(doc.Circles) > 0 {
		return FromCircles(doc.Width, doc.Height, doc.Margin, doc.Circles)
	}
	return Layout(doc), nil
}

// RenderJSON is MarshalLayout under the sink naming.
func RenderJSON(l Layout) ([]byte, error) {
	return MarshalLayout(l)
}

// ReadJSON reads a layout from r.
func ReadJSON(r io.Reader) (Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read layout")
	}
	return UnmarshalLayout(data)
}
