package logtail

import (
	"strconv"
	"strings"

	"github.com/go-faster/jx"
)

// Entry is one structured record from the diagnostics log.
type Entry struct {
	Time    string
	Level   string
	Logger  string
	Message string
	Fields  []Field
	// Raw is set when the line was not a JSON record.
	Raw string
}

// Field is an extra key/value pair carried by an entry, such as "error".
type Field struct {
	Key   string
	Value string
}

// skipped keys are either shown elsewhere or noise in the TUI.
var skipped = map[string]bool{
	"caller":     true,
	"stacktrace": true,
	"service":    true,
}

// Parse decodes one zap JSON line. Anything that does not parse as an
// object is returned with Raw set to the original text.
func Parse(line string) Entry {
	raw := Entry{Raw: line}
	d := jx.DecodeStr(line)
	if d.Next() != jx.Object {
		return raw
	}

	var e Entry
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "ts":
			v, err := scalar(d)
			e.Time = v
			return err
		case "level":
			v, err := scalar(d)
			e.Level = strings.ToUpper(v)
			return err
		case "logger":
			v, err := scalar(d)
			e.Logger = v
			return err
		case "msg":
			v, err := scalar(d)
			e.Message = v
			return err
		default:
			if skipped[string(key)] {
				return d.Skip()
			}
			v, err := scalar(d)
			if err != nil {
				return err
			}
			e.Fields = append(e.Fields, Field{Key: string(key), Value: v})
			return nil
		}
	})
	if err != nil {
		return raw
	}
	return e
}

// scalar renders the next value as text. Composite values keep their JSON.
func scalar(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		return d.Str()
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return "", err
		}
		return n.String(), nil
	case jx.Bool:
		b, err := d.Bool()
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	case jx.Null:
		return "null", d.Null()
	default:
		b, err := d.Raw()
		if err != nil {
			return "", err
		}
		return b.String(), nil
	}
}

// String formats the entry as a single plain-text line:
//
//	2026-10-17T09:12:03.114Z ERROR [catalog] Catalog load failed error=...
func (e Entry) String() string {
	if e.Raw != "" {
		return e.Raw
	}
	var b strings.Builder
	if e.Time != "" {
		b.WriteString(e.Time)
		b.WriteByte(' ')
	}
	if e.Level != "" {
		b.WriteString(e.Level)
		b.WriteByte(' ')
	}
	if e.Logger != "" {
		b.WriteString("[" + e.Logger + "] ")
	}
	b.WriteString(e.Message)
	for _, f := range e.Fields {
		b.WriteString(" " + f.Key + "=" + f.Value)
	}
	return strings.TrimRight(b.String(), " ")
}
