package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// flexInt accepts a JSON number or a numeric string. Anything else decodes
// to zero so the field's own validation reports it.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	var number json.Number
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		number = json.Number(strings.TrimSpace(s))
	} else {
		number = json.Number(data)
	}

	if n, err := strconv.Atoi(number.String()); err == nil {
		*f = flexInt(n)
		return nil
	}
	if v, err := number.Float64(); err == nil {
		*f = flexInt(clampToInt(v))
		return nil
	}
	*f = 0
	return nil
}

// clampToInt truncates v toward zero and pins it to the int range. NaN
// decodes as zero.
func clampToInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}
