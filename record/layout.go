package record

import (
	"fmt"
	"reflect"
	"sync"
)

type layout struct {
	name   string
	fields []field
	size   int
}

var layouts sync.Map

// layoutOf parses and caches the fixed tags of a struct type. Fields
// without a tag are not part of the record.
func layoutOf(t reflect.Type) (*layout, error) {
	if l, ok := layouts.Load(t); ok {
		return l.(*layout), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, recordError("value is not a struct: %s", t)
	}

	l := &layout{name: t.Name()}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get(TagName)
		if len(tag) == 0 {
			continue
		}
		f, err := parseTag(tag)
		if err != nil {
			return nil, recordError("field %s: %v", sf.Name, err)
		}
		if !sf.IsExported() {
			return nil, recordError("field %s: unexported fields cannot carry a %s tag", sf.Name, TagName)
		}
		switch sf.Type.Kind() {
		case reflect.String, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		default:
			return nil, recordError("field %s: unsupported kind %s", sf.Name, sf.Type.Kind())
		}
		f.index = i
		f.name = sf.Name
		f.kind = sf.Type.Kind()
		if f.end() > l.size {
			l.size = f.end()
		}
		l.fields = append(l.fields, f)
	}
	if len(l.fields) == 0 {
		return nil, recordError("struct %s has no %s fields", t, TagName)
	}

	actual, _ := layouts.LoadOrStore(t, l)
	return actual.(*layout), nil
}

func (l *layout) String() string {
	return fmt.Sprintf("%s[%d fields, %d bytes]", l.name, len(l.fields), l.size)
}
