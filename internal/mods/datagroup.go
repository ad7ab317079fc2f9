package mods

import "sort"

// DataGroup is state shared by every mod of a single session. Any mod may
// read or write any key, mods that keep state use DataKey to namespace their
// keys as "<mod>.<key>".
type DataGroup struct {
	values map[string]interface{}
}

func NewDataGroup() *DataGroup {
	return &DataGroup{values: map[string]interface{}{}}
}

func DataKey(mod, key string) string {
	return mod + "." + key
}

func (d *DataGroup) Get(key string) (interface{}, bool) {
	v, ok := d.values[key]
	return v, ok
}

func (d *DataGroup) Set(key string, value interface{}) {
	if nil == d.values {
		d.values = map[string]interface{}{}
	}
	d.values[key] = value
}

func (d *DataGroup) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

func (d *DataGroup) Delete(key string) {
	delete(d.values, key)
}

func (d *DataGroup) Len() int {
	return len(d.values)
}

func (d *DataGroup) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clear drops all state, called when the session ends.
func (d *DataGroup) Clear() {
	d.values = map[string]interface{}{}
}
