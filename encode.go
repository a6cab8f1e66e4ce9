package chatcard

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// appender is implemented by every entity: it appends the entity's JSON
// object to dst.
type appender interface {
	appendJSON(dst []byte) ([]byte, error)
}

// Marshal renders a message as the compact JSON body expected by the chat
// webhook. Object keys follow declared field order and absent optional fields
// are omitted.
func Marshal(m Message) ([]byte, error) {
	return m.appendJSON(nil)
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(m Message, prefix, indent string) ([]byte, error) {
	b, err := Marshal(m)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// objectWriter writes one JSON object. Fields are emitted in call order; the
// opt* variants skip absent values entirely.
type objectWriter struct {
	buf []byte
	n   int
	err error
}

func newObjectWriter(dst []byte) *objectWriter {
	return &objectWriter{buf: append(dst, '{')}
}

func (w *objectWriter) key(name string) {
	if w.n > 0 {
		w.buf = append(w.buf, ',')
	}
	w.n++
	w.buf = appendString(w.buf, name, &w.err)
	w.buf = append(w.buf, ':')
}

func (w *objectWriter) str(name, v string) {
	if w.err != nil {
		return
	}
	w.key(name)
	w.buf = appendString(w.buf, v, &w.err)
}

func (w *objectWriter) optStr(name string, v *string) {
	if v == nil {
		return
	}
	w.str(name, *v)
}

func (w *objectWriter) obj(name string, v appender) {
	if w.err != nil {
		return
	}
	w.key(name)
	w.buf, w.err = v.appendJSON(w.buf)
}

// writeArray writes a JSON array of objects. A nil slice is absent and
// omitted unless required is set, in which case it renders as [].
func writeArray[E appender](w *objectWriter, name string, s []E, required bool) {
	if w.err != nil || (s == nil && !required) {
		return
	}
	w.key(name)
	w.buf = append(w.buf, '[')
	for i, e := range s {
		if i > 0 {
			w.buf = append(w.buf, ',')
		}
		if w.buf, w.err = e.appendJSON(w.buf); w.err != nil {
			return
		}
	}
	w.buf = append(w.buf, ']')
}

func (w *objectWriter) close() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return append(w.buf, '}'), nil
}

func appendString(dst []byte, s string, errp *error) []byte {
	if *errp != nil {
		return dst
	}
	b, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		*errp = err
		return dst
	}
	return append(dst, b...)
}
