package corpus

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
)

const indentUnit = "    "

// WriteJSON writes the table as {column: {"0": v, "1": v, ...}, ...}.
//
// Output is indented with four spaces, uses ": " between keys and values,
// keeps non-ASCII text and <, >, & unescaped and has no trailing newline.
func (t *Table) WriteJSON(w io.Writer) error {
	bw := bufio.NewWriter(w)
	enc := &encoder{w: bw}

	cols := domain.NewMapping()
	for _, col := range t.columns {
		rows := domain.NewMapping()
		for i := range t.rows {
			rows.Set(strconv.Itoa(i), t.Cell(i, col))
		}
		cols.Set(col, rows)
	}

	enc.value(cols, 0)
	if enc.err != nil {
		return enc.err
	}
	return bw.Flush()
}

// MarshalJSON renders one extracted value the way WriteJSON does.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := &encoder{w: &buf}
	enc.value(v, 0)
	if enc.err != nil {
		return nil, enc.err
	}
	return buf.Bytes(), nil
}

type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *encoder) value(v any, depth int) {
	switch val := v.(type) {
	case nil:
		e.write("null")
	case string:
		e.str(val)
	case bool:
		e.write(strconv.FormatBool(val))
	case int:
		e.write(strconv.Itoa(val))
	case *domain.Mapping:
		if val == nil {
			e.write("null")
			return
		}
		e.mapping(val, depth)
	case []any:
		e.list(val, depth)
	default:
		if e.err == nil {
			e.err = fmt.Errorf("%w: cannot encode %T", domain.ErrUnsupportedType, v)
		}
	}
}

func (e *encoder) mapping(m *domain.Mapping, depth int) {
	if m.Len() == 0 {
		e.write("{}")
		return
	}
	inner := strings.Repeat(indentUnit, depth+1)
	e.write("{")
	first := true
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			e.write(",")
		}
		first = false
		e.write("\n" + inner)
		e.str(pair.Key)
		e.write(": ")
		e.value(pair.Value, depth+1)
	}
	e.write("\n" + strings.Repeat(indentUnit, depth) + "}")
}

func (e *encoder) list(items []any, depth int) {
	if len(items) == 0 {
		e.write("[]")
		return
	}
	inner := strings.Repeat(indentUnit, depth+1)
	e.write("[")
	for i, item := range items {
		if i > 0 {
			e.write(",")
		}
		e.write("\n" + inner)
		e.value(item, depth+1)
	}
	e.write("\n" + strings.Repeat(indentUnit, depth) + "]")
}

// str writes a JSON string literal without HTML escaping.
func (e *encoder) str(s string) {
	if e.err != nil {
		return
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		e.err = err
		return
	}
	e.write(strings.TrimSuffix(buf.String(), "\n"))
}
