package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nexhub-io/nexctl/pkg/field"
)

// jsonFormatter streams a JSON array, one self-describing object per
// row. Object keys are the field keys in the field set's order, which
// survives parsing because each object is written by hand rather than
// through a Go map. Warnings never appear in the stream; they belong
// to stderr.
type jsonFormatter struct {
	w    io.Writer
	rows int
}

func newJSONFormatter(w io.Writer) *jsonFormatter {
	return &jsonFormatter{w: w}
}

func (f *jsonFormatter) Header(_ field.FieldSet) error {
	_, err := io.WriteString(f.w, "[")
	return err
}

func (f *jsonFormatter) Row(row field.ProjectedRow) error {
	sep := ",\n  "
	if f.rows == 0 {
		sep = "\n  "
	}
	f.rows++
	if _, err := io.WriteString(f.w, sep); err != nil {
		return err
	}
	return writeOrderedObject(f.w, row)
}

func (f *jsonFormatter) Footer(_ Summary) error {
	if f.rows == 0 {
		_, err := io.WriteString(f.w, "]\n")
		return err
	}
	_, err := io.WriteString(f.w, "\n]\n")
	return err
}

// writeOrderedObject emits one row as a JSON object with keys in field
// order. Failed and missing cells become null.
func writeOrderedObject(w io.Writer, row field.ProjectedRow) error {
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	for i, cell := range row {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		key, err := json.Marshal(cell.Spec.Key)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s: ", key); err != nil {
			return err
		}

		var value []byte
		if cell.Err != nil || cell.Value == nil {
			value = []byte("null")
		} else {
			value, err = json.Marshal(cell.Value)
			if err != nil {
				// Unmarshalable display values degrade to their
				// string form rather than poisoning the stream.
				value, _ = json.Marshal(formatValue(cell.Value))
			}
		}
		if _, err := w.Write(value); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}")
	return err
}
