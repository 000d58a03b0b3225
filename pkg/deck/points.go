package deck

import (
	"strconv"

	json "github.com/goccy/go-json"
)

// DataPoint is one named value of a chart slide. Value is a pointer so a
// point authored without a value can be told apart from a zero.
type DataPoint struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value,omitempty"`
}

// UnmarshalJSON never fails on a malformed point. Scalar names are kept as
// text; a value that is not a number is left nil so ValidPoints drops the
// point instead of the whole deck failing to load.
func (p *DataPoint) UnmarshalJSON(data []byte) error {
	*p = DataPoint{}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch name := raw["name"].(type) {
	case string:
		p.Name = name
	case float64:
		p.Name = strconv.FormatFloat(name, 'f', -1, 64)
	case bool:
		p.Name = strconv.FormatBool(name)
	}
	if v, ok := raw["value"].(float64); ok {
		p.Value = &v
	}
	return nil
}

// Point builds a well-formed data point.
func Point(name string, value float64) DataPoint {
	return DataPoint{Name: name, Value: &value}
}

// ValidPoints keeps the points that have both a name and a value, in
// their original order. Malformed points are dropped silently.
func ValidPoints(points []DataPoint) []DataPoint {
	out := make([]DataPoint, 0, len(points))
	for _, p := range points {
		if p.Name == "" || p.Value == nil {
			continue
		}
		out = append(out, p)
	}
	return out
}
