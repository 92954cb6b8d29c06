package form

import (
	"fmt"
	"sort"
	"strings"
)

// Field identifies a header field of a form.
type Field int

const (
	FieldNama Field = iota + 1
	FieldKategori
	FieldHarga
	FieldDomisili
	FieldJenisKelamin
	FieldTgl
	FieldPelanggan
)

func (f Field) String() string {
	switch f {
	case FieldNama:
		return "nama"
	case FieldKategori:
		return "kategori"
	case FieldHarga:
		return "harga"
	case FieldDomisili:
		return "domisili"
	case FieldJenisKelamin:
		return "jenis_kelamin"
	case FieldTgl:
		return "tgl"
	case FieldPelanggan:
		return "pelanggan"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// LineField identifies a field inside one line item.
type LineField int

const (
	LineBarang LineField = iota + 1
	LineQty
)

func (f LineField) String() string {
	switch f {
	case LineBarang:
		return "barang"
	case LineQty:
		return "qty"
	default:
		return fmt.Sprintf("line_field(%d)", int(f))
	}
}

// Key is either a header field or a line field at an index. The zero Key is invalid.
type Key struct {
	field Field
	line  LineField
	index int
}

// Header returns the key of a header field.
func Header(f Field) Key {
	return Key{field: f}
}

// Line returns the key of field f of the line item at index.
func Line(index int, f LineField) Key {
	return Key{line: f, index: index}
}

func (k Key) IsLine() bool { return k.line != 0 }

func (k Key) Field() Field { return k.field }

func (k Key) LineField() LineField { return k.line }

func (k Key) Index() int { return k.index }

func (k Key) String() string {
	if k.IsLine() {
		return fmt.Sprintf("%s_%d", k.line, k.index)
	}
	return k.field.String()
}

// Errors maps field keys to messages. The zero value is empty and ready to use.
type Errors struct {
	msgs map[Key]string
}

// Add records msg for k, replacing an earlier message for the same key.
func (e *Errors) Add(k Key, msg string) {
	if e.msgs == nil {
		e.msgs = make(map[Key]string)
	}
	e.msgs[k] = msg
}

func (e Errors) Get(k Key) string {
	return e.msgs[k]
}

func (e Errors) Header(f Field) string {
	return e.msgs[Header(f)]
}

func (e Errors) Line(index int, f LineField) string {
	return e.msgs[Line(index, f)]
}

// ByName maps every message by Key.String, the form input name it belongs to.
func (e Errors) ByName() map[string]string {
	out := make(map[string]string, len(e.msgs))
	for k, msg := range e.msgs {
		out[k.String()] = msg
	}
	return out
}

func (e Errors) Len() int {
	return len(e.msgs)
}

func (e Errors) Empty() bool {
	return len(e.msgs) == 0
}

// Keys returns header keys first, then line keys by index.
func (e Errors) Keys() []Key {
	keys := make([]Key, 0, len(e.msgs))
	for k := range e.msgs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.IsLine() != b.IsLine() {
			return !a.IsLine()
		}
		if !a.IsLine() {
			return a.field < b.field
		}
		if a.index != b.index {
			return a.index < b.index
		}
		return a.line < b.line
	})
	return keys
}

// Err returns nil when there is nothing to report, a *ValidationError otherwise.
func (e Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return &ValidationError{Errors: e}
}

// ValidationError is returned by use cases when a draft is rejected before any network call.
type ValidationError struct {
	Errors Errors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, e.Errors.Len())
	for _, k := range e.Errors.Keys() {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Errors.Get(k)))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
