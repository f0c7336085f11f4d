package record

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const TagName = "fixed"

// field is the slot a struct field occupies in a record area. The slot holds
// a NUL-terminated value of at most length-1 bytes followed by pad bytes.
type field struct {
	index    int
	name     string
	kind     reflect.Kind
	start    int
	length   int
	pad      byte
	truncate bool
}

func (f *field) end() int { return f.start + f.length }

func keyValueParser(s string) map[string]string {
	keyValueMap := make(map[string]string)
	for _, keyValue := range strings.Split(s, ",") {
		keyValue = strings.TrimSpace(keyValue)
		if keyValue == "" {
			continue
		}
		k, v, _ := strings.Cut(keyValue, "=")
		keyValueMap[k] = v
	}
	return keyValueMap
}

// parseTag reads `fixed:"start=S,length=L[,pad=P][,truncate]"`. start is
// 1-based, as in the copybooks the layouts come from.
func parseTag(tag string) (field, error) {
	f := field{}
	kv := keyValueParser(tag)

	val, ok := kv["start"]
	if !ok {
		return f, errors.New("fixed tag defined but not start")
	}
	start, err := strconv.Atoi(val)
	if err != nil {
		return f, fmt.Errorf("invalid start %q: %w", val, err)
	}
	if start < 1 {
		return f, fmt.Errorf("start must be at least 1, got %d", start)
	}
	f.start = start - 1

	val, ok = kv["length"]
	if !ok {
		return f, errors.New("fixed tag defined but not length")
	}
	f.length, err = strconv.Atoi(val)
	if err != nil {
		return f, fmt.Errorf("invalid length %q: %w", val, err)
	}
	if f.length < 1 {
		return f, fmt.Errorf("length must be at least 1, got %d", f.length)
	}

	if pad, ok := kv["pad"]; ok {
		switch pad {
		case "", "nul":
			f.pad = 0
		case "space":
			f.pad = ' '
		default:
			if len(pad) != 1 {
				return f, fmt.Errorf("pad must be nul, space or a single character, got %q", pad)
			}
			f.pad = pad[0]
		}
	}
	_, f.truncate = kv["truncate"]

	return f, nil
}
