package db_models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList is stored as text[] on postgres and as the array literal text
// ("{a,b}") elsewhere. It always marshals to a JSON array, never null.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return pq.StringArray(l.orEmpty()).Value()
}

func (l *StringList) Scan(src any) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*l = StringList(arr)
	return nil
}

func (StringList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func (l StringList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(l.orEmpty()))
}

func (l StringList) orEmpty() StringList {
	if l == nil {
		return StringList{}
	}
	return l
}
