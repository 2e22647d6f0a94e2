package navbar

import (
	"fmt"
	"reflect"
	"strings"
)

// FromStruct builds a registry from the `nav` tags of a struct's fields, in
// field order. The tag holds the path followed by the label:
//
//	type links struct {
//		men   struct{} `nav:"/Men Men"`
//		deals struct{} `nav:"/deals Today's Deals"`
//	}
//
// When the tag has no label, the field name is used. Untagged fields are skipped.
func FromStruct(v any) (*Registry, error) {
	st := reflect.TypeOf(v)
	if st != nil && st.Kind() == reflect.Ptr {
		st = st.Elem()
	}
	if st == nil || st.Kind() != reflect.Struct {
		return nil, &ValidationError{Index: -1, Reason: fmt.Sprintf("FromStruct: expected struct, got %v", st)}
	}
	var entries []Entry
	for i := range st.NumField() {
		field := st.Field(i)
		tag, ok := field.Tag.Lookup("nav")
		if !ok {
			continue
		}
		path, label := parseTag(tag)
		if label == "" {
			label = field.Name
		}
		entries = append(entries, Entry{Label: label, Path: path})
	}
	return New(entries...)
}

func parseTag(tag string) (path, label string) {
	parts := strings.Fields(tag)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
