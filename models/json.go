package models

import (
	"database/sql/driver"
	"fmt"

	json "github.com/goccy/go-json"
)

// JSONMap guarda metadata arbitraria en una columna jsonb.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("jsonmap: tipo no soportado %T", value)
	}
	return json.Unmarshal(data, m)
}

// JSONValue guarda un valor JSON de cualquier tipo (string, número,
// booleano u objeto) en una columna jsonb. Lo usan las configuraciones
// del sitio, cuyos valores son heterogéneos.
type JSONValue struct {
	Any interface{}
}

func (v JSONValue) Value() (driver.Value, error) {
	return json.Marshal(v.Any)
}

func (v *JSONValue) Scan(value interface{}) error {
	if value == nil {
		v.Any = nil
		return nil
	}
	var data []byte
	switch raw := value.(type) {
	case []byte:
		data = raw
	case string:
		data = []byte(raw)
	default:
		return fmt.Errorf("jsonvalue: tipo no soportado %T", value)
	}
	return json.Unmarshal(data, &v.Any)
}

func (v JSONValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any)
}

func (v *JSONValue) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.Any)
}
