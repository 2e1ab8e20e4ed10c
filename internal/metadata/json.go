package metadata

import (
	"encoding/json"

	"github.com/thoreinstein/riderctl/pkg/fileutil"
)

// object is a decoded JSON object with typed field accessors that report
// absence instead of failing.
type object map[string]any

func readObject(path string) (object, bool) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, false
	}
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

func (o object) str(field string) (string, bool) {
	s, ok := o[field].(string)
	return s, ok
}

func (o object) array(field string) ([]any, bool) {
	a, ok := o[field].([]any)
	return a, ok
}

func (o object) child(field string) (object, bool) {
	m, ok := o[field].(map[string]any)
	return object(m), ok
}

func asObject(v any) (object, bool) {
	m, ok := v.(map[string]any)
	return object(m), ok
}
