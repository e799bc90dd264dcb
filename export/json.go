package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// field is one key of a JSON object, kept in document order.
type field struct {
	Key   string
	Value any
}

// object is a JSON object whose keys keep their document order.
type object []field

// parseOrdered decodes data into object, []any, json.Number, string, bool
// or nil values.
func parseOrdered(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := object{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				obj = append(obj, field{Key: key, Value: val})
			}
			_, err := dec.Token()
			return obj, err
		case '[':
			arr := []any{}
			for dec.More() {
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			_, err := dec.Token()
			return arr, err
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	default:
		return tok, nil
	}
}

// isTable reports whether v is a non-empty array of objects.
func isTable(v any) bool {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return false
	}
	for _, item := range arr {
		if _, ok := item.(object); !ok {
			return false
		}
	}
	return true
}

// flatten expands nested objects into dotted keys.
func flatten(prefix string, obj object, out *object) {
	for _, f := range obj {
		key := f.Key
		if prefix != "" {
			key = prefix + "." + f.Key
		}
		if nested, ok := f.Value.(object); ok {
			flatten(key, nested, out)
			continue
		}
		*out = append(*out, field{Key: key, Value: f.Value})
	}
}

// cellValue converts a parsed JSON value into something excelize can write.
func cellValue(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case string, bool:
		return t
	case []any:
		var b bytes.Buffer
		for i, item := range t {
			if i > 0 {
				b.WriteString("; ")
			}
			fmt.Fprint(&b, cellValue(item))
		}
		return b.String()
	case object:
		parts := object{}
		flatten("", t, &parts)
		var b bytes.Buffer
		for i, f := range parts {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", f.Key, cellValue(f.Value))
		}
		return b.String()
	default:
		return fmt.Sprint(t)
	}
}
