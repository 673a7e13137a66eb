package http

import "encoding/json"

// Patch is a JSON field that distinguishes "absent" from "explicitly null".
// An absent field leaves Set false; a null value sets Set with a nil Value.
type Patch[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON is only invoked for fields present in the payload.
func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	p.Set = true
	if string(data) == "null" {
		p.Value = nil
		return nil
	}
	return json.Unmarshal(data, &p.Value)
}
