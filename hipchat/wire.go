// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// The upstream API is loose about scalar types: ids arrive as numbers
// or strings, timestamps as numbers, numeric strings, "" or null, and
// booleans as 0/1 or true/false. The types below absorb that variation
// so a single odd field never fails a whole response. Malformed values
// decode to the zero value.

var jsonNull = []byte("null")

// flexString decodes a JSON string or number into its text form.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	*s = ""
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*s = flexString(text)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err == nil {
		*s = flexString(number.String())
	}
	return nil
}

// flexInt decodes a JSON number or numeric string into an int.
type flexInt int

func (i *flexInt) UnmarshalJSON(data []byte) error {
	*i = 0
	var number json.Number
	if err := json.Unmarshal(data, &number); err == nil {
		if value, err := number.Int64(); err == nil {
			*i = flexInt(value)
		} else if value, err := number.Float64(); err == nil {
			*i = flexInt(value)
		}
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		if value, ok := parseInt(text); ok {
			*i = flexInt(value)
		}
	}
	return nil
}

// intFlag is a 0/1 boolean. Any value other than 1 (or JSON true)
// decodes as 0.
type intFlag int

func (f *intFlag) UnmarshalJSON(data []byte) error {
	*f = 0
	var truth bool
	if err := json.Unmarshal(data, &truth); err == nil {
		if truth {
			*f = 1
		}
		return nil
	}
	var value flexInt
	if err := value.UnmarshalJSON(data); err == nil && value == 1 {
		*f = 1
	}
	return nil
}

func (f intFlag) bool() bool { return f == 1 }

func toFlag(value bool) intFlag {
	if value {
		return 1
	}
	return 0
}

// epochSeconds is a Unix timestamp. Zero means absent.
type epochSeconds int64

func (e *epochSeconds) UnmarshalJSON(data []byte) error {
	var value flexInt
	if err := value.UnmarshalJSON(data); err != nil {
		return err
	}
	*e = epochSeconds(value)
	return nil
}

func (e epochSeconds) time() time.Time {
	if e <= 0 {
		return time.Time{}
	}
	return time.Unix(int64(e), 0).UTC()
}

func toEpochSeconds(value time.Time) epochSeconds {
	if value.IsZero() {
		return 0
	}
	return epochSeconds(value.Unix())
}

// messageDateLayouts are the accepted forms of a history message date,
// tried in order. The API emits the first; the rest cover proxies and
// fixtures that normalize to RFC 3339 or drop the zone.
var messageDateLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// messageDate is an ISO-8601 timestamp. Absent, empty, or unparseable
// dates decode to the zero time.
type messageDate struct {
	time.Time
}

func (d *messageDate) UnmarshalJSON(data []byte) error {
	d.Time = time.Time{}
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return nil
	}
	for _, layout := range messageDateLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			d.Time = parsed
			return nil
		}
	}
	return nil
}

func (d messageDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return jsonNull, nil
	}
	return []byte(strconv.Quote(d.Format(messageDateLayouts[0]))), nil
}

// decodeObject decodes a single-object response. The API wraps the
// object in an envelope keyed by its kind ({"room": {...}}); a body
// without that key is decoded as the object itself.
func decodeObject(body []byte, key string, target any) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return err
	}
	if raw, ok := envelope[key]; ok && !bytes.Equal(raw, jsonNull) {
		return json.Unmarshal(raw, target)
	}
	return json.Unmarshal(body, target)
}
