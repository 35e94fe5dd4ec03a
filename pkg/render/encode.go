package render

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-intake/pkg/schema"
	"github.com/goliatone/go-intake/pkg/submission"
)

// OutputFormat selects the wire encoding for a finished record.
type OutputFormat string

const (
	// OutputFormatJSON emits an application/json object.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatForm emits an application/x-www-form-urlencoded payload.
	OutputFormatForm OutputFormat = "form"
	// OutputFormatPretty emits a human-friendly key=value listing.
	OutputFormatPretty OutputFormat = "pretty"
)

// ContentType reports the MIME type for the format.
func (f OutputFormat) ContentType() string {
	switch f {
	case OutputFormatForm:
		return "application/x-www-form-urlencoded"
	case OutputFormatPretty:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Encode serializes a record in the requested format. Key order is the
// record's sorted key order, so output is deterministic regardless of map
// iteration.
func Encode(record submission.Record, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatForm:
		return encodeForm(record), nil
	case OutputFormatPretty:
		return encodePretty(record), nil
	case OutputFormatJSON, "":
		return json.Marshal(record)
	default:
		return nil, fmt.Errorf("render: unknown output format %q", format)
	}
}

// EncodeOrdered serializes the record as JSON preserving schema field order
// instead of lexical key order, for downstream sinks that care about
// presentation order.
func EncodeOrdered(sch *schema.Schema, record submission.Record) ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for _, key := range sch.InputKeys() {
		value, ok := record[key]
		if !ok {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		valueJSON, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		b.Write(keyJSON)
		b.WriteByte(':')
		b.Write(valueJSON)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

func encodeForm(record submission.Record) []byte {
	values := url.Values{}
	for _, key := range record.Keys() {
		values.Set(key, record[key])
	}
	return []byte(values.Encode())
}

func encodePretty(record submission.Record) []byte {
	var b strings.Builder
	for _, key := range record.Keys() {
		fmt.Fprintf(&b, "%s=%s\n", key, record[key])
	}
	return []byte(b.String())
}
