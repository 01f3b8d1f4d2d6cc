package draft

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Text is the raw content of a form input. It unmarshals from a JSON string
// or a bare JSON number, so clients may send either.
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(data)
	return nil
}

// String returns the trimmed text
func (t Text) String() string {
	return strings.TrimSpace(string(t))
}

func (t Text) float() (float64, bool) {
	f, err := strconv.ParseFloat(t.String(), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (t Text) int() (int, bool) {
	i, err := strconv.Atoi(t.String())
	if err != nil {
		return 0, false
	}
	return i, true
}

func formatFloat(f float64) Text {
	return Text(strconv.FormatFloat(f, 'f', -1, 64))
}
