package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// GramMap stores a material-name -> grams mapping as a JSON text column.
// Work orders carry their bill of materials in this shape.
type GramMap map[string]float64

func (g GramMap) Value() (driver.Value, error) {
	if g == nil {
		return "{}", nil
	}
	b, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (g *GramMap) Scan(value interface{}) error {
	if value == nil {
		*g = GramMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, g)
	case string:
		return json.Unmarshal([]byte(v), g)
	default:
		return fmt.Errorf("cannot convert %v to GramMap", value)
	}
}
