// Package store persists completed studies as a self-describing
// labeled-array container.
//
// The on-disk document carries the dimension sizes and coordinate labels
// alongside the data, so a loaded study is usable identically to a freshly
// computed one without external context. Only the computed prefix of each
// trajectory is stored; the unset NaN padding is reconstructed on load.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/kyle-brindley/chaos/internal/study"
)

// ErrBadFormat indicates a file that is not a valid study container.
var ErrBadFormat = errors.New("store: not a chaos study file")

const (
	formatName    = "chaos-study"
	formatVersion = 1
)

type document struct {
	Format  string   `json:"format"`
	Version int      `json:"version"`
	Map     string   `json:"map"`
	Dims    dims     `json:"dims"`
	Coords  coords   `json:"coords"`
	Data    dataVars `json:"data"`
}

type dims struct {
	R         int `json:"r"`
	X0        int `json:"x_0"`
	Iteration int `json:"iteration"`
}

type coords struct {
	R  []float64 `json:"r"`
	X0 []float64 `json:"x_0"`
}

type dataVars struct {
	// Value holds each trajectory's computed prefix, indexed by
	// (parameter, initial state). The unset NaN padding is redundant
	// given Steps and is dropped entirely.
	Value   [][][]jsonValue `json:"value"`
	Steps   []int           `json:"steps"`
	Periods []study.Period  `json:"period"`
}

// jsonValue carries one trajectory value. A computed prefix can contain
// non-finite values (an overflow step precedes the negative stop), which
// JSON numbers cannot represent; those are encoded as quoted tokens.
type jsonValue float64

func (v jsonValue) MarshalJSON() ([]byte, error) {
	f := float64(v)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(f)
}

func (v *jsonValue) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"Infinity"`:
		*v = jsonValue(math.Inf(1))
		return nil
	case `"-Infinity"`:
		*v = jsonValue(math.Inf(-1))
		return nil
	case `"NaN"`:
		*v = jsonValue(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = jsonValue(f)
	return nil
}

// Save writes a study to path.
func Save(path string, res *study.Result) error {
	doc := document{
		Format:  formatName,
		Version: formatVersion,
		Map:     res.MapName,
		Dims: dims{
			R:         len(res.Parameters),
			X0:        len(res.InitialStates),
			Iteration: res.MaxIteration,
		},
		Coords: coords{R: res.Parameters, X0: res.InitialStates},
		Data: dataVars{
			Value:   make([][][]jsonValue, len(res.Parameters)),
			Steps:   res.Steps,
			Periods: res.Periods,
		},
	}
	for p := range res.Parameters {
		doc.Data.Value[p] = make([][]jsonValue, len(res.InitialStates))
		for row := range res.InitialStates {
			prefix := res.Prefix(p, row)
			encoded := make([]jsonValue, len(prefix))
			for i, v := range prefix {
				encoded[i] = jsonValue(v)
			}
			doc.Data.Value[p][row] = encoded
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("store: encode %s: %w", path, err)
	}
	return nil
}

// Load reads a study from path, reconstructing the NaN padding past each
// parameter's computed prefix.
func Load(path string) (*study.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadFormat, path, err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadFormat, path, err)
	}

	res := &study.Result{
		MapName:       doc.Map,
		Parameters:    doc.Coords.R,
		InitialStates: doc.Coords.X0,
		MaxIteration:  doc.Dims.Iteration,
		Values:        make([][][]float64, doc.Dims.R),
		Steps:         doc.Data.Steps,
		Periods:       doc.Data.Periods,
	}
	for p := range res.Values {
		res.Values[p] = make([][]float64, doc.Dims.X0)
		for row := range res.Values[p] {
			values := make([]float64, doc.Dims.Iteration)
			prefix := doc.Data.Value[p][row]
			for i, v := range prefix {
				values[i] = float64(v)
			}
			for i := len(prefix); i < len(values); i++ {
				values[i] = math.NaN()
			}
			res.Values[p][row] = values
		}
	}
	return res, nil
}

func (doc *document) validate() error {
	if doc.Format != formatName {
		return fmt.Errorf("format %q, want %q", doc.Format, formatName)
	}
	if doc.Version != formatVersion {
		return fmt.Errorf("unsupported version %d", doc.Version)
	}
	if doc.Dims.R < 1 || doc.Dims.X0 < 1 || doc.Dims.Iteration < 1 {
		return fmt.Errorf("empty dimension in %+v", doc.Dims)
	}
	if len(doc.Coords.R) != doc.Dims.R || len(doc.Coords.X0) != doc.Dims.X0 {
		return errors.New("coordinate labels do not match dimensions")
	}
	if len(doc.Data.Value) != doc.Dims.R ||
		len(doc.Data.Steps) != doc.Dims.R ||
		len(doc.Data.Periods) != doc.Dims.R {
		return errors.New("data variables do not match the r dimension")
	}
	for p, rows := range doc.Data.Value {
		if len(rows) != doc.Dims.X0 {
			return fmt.Errorf("parameter %d: %d rows, want %d", p, len(rows), doc.Dims.X0)
		}
		steps := doc.Data.Steps[p]
		if steps < 1 || steps > doc.Dims.Iteration {
			return fmt.Errorf("parameter %d: steps %d out of range", p, steps)
		}
		for row, values := range rows {
			if len(values) != steps {
				return fmt.Errorf("parameter %d row %d: %d values, want %d", p, row, len(values), steps)
			}
		}
	}
	return nil
}
