package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSONType stores T as a json document column (jsonb on postgres, text elsewhere).
type JSONType[T any] struct {
	data T
}

func NewJSONType[T any](data T) JSONType[T] {
	return JSONType[T]{data: data}
}

func (j JSONType[T]) Data() T {
	return j.data
}

func (j JSONType[T]) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j.data)
	return string(valueString), err
}

func (j *JSONType[T]) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported json column value %T", value)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, &j.data)
}

func (j JSONType[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.data)
}

func (j *JSONType[T]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &j.data)
}

func (JSONType[T]) GormDataType() string {
	return "json"
}

func (JSONType[T]) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}
	return "text"
}

type StringList = JSONType[[]string]

func NewStringList(list []string) StringList {
	if list == nil {
		list = []string{}
	}
	return NewJSONType(list)
}
