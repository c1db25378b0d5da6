// Package variant is the runtime support for generated union types.
//
// A generated union is a struct holding one pointer per variant, exactly one
// of which is set. Decoding picks the variant whose Matcher accepts the
// input with the lowest penalty; encoding requires exactly one set pointer.
package variant

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

var (
	// ErrNoVariant is returned when no variant of a union is set, or no variant matches the input.
	ErrNoVariant = errors.New("no union variant")
	// ErrMultipleVariants is returned when marshaling a union with more than one variant set.
	ErrMultipleVariants = errors.New("more than one union variant set")
)

// Matcher reports whether a JSON value can be decoded as one union variant.
// A lower penalty means a better fit. Specificity breaks ties between equal penalties.
type Matcher interface {
	Match(data []byte) (ok bool, penalty int)
	Specificity() int
}

// Object matches JSON objects by key set.
// Every Required key and every Consts key must be present and Consts values
// must be equal. Unknown keys never reject the input: each key outside
// Required, Optional and Consts adds one to the penalty instead.
type Object struct {
	Required []string
	Optional []string
	Consts   map[string]interface{}
}

func (o Object) Match(data []byte) (bool, int) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return false, 0
	}
	for _, k := range o.Required {
		if _, ok := fields[k]; !ok {
			return false, 0
		}
	}
	for k, want := range o.Consts {
		got, ok := fields[k]
		if !ok || !jsonEqual(got, want) {
			return false, 0
		}
	}
	penalty := 0
	for k := range fields {
		if !o.known(k) {
			penalty++
		}
	}
	return true, penalty
}

func (o Object) Specificity() int {
	return len(o.Required) + len(o.Consts)
}

func (o Object) known(k string) bool {
	if _, ok := o.Consts[k]; ok {
		return true
	}
	for _, r := range o.Required {
		if r == k {
			return true
		}
	}
	for _, r := range o.Optional {
		if r == k {
			return true
		}
	}
	return false
}

// Enum matches a JSON string equal to one of the values.
type Enum []string

func (e Enum) Match(data []byte) (bool, int) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return false, 0
	}
	for _, v := range e {
		if v == s {
			return true, 0
		}
	}
	return false, 0
}

func (e Enum) Specificity() int {
	return 1
}

// Strict matches any value that decodes into T without unknown fields.
type Strict[T any] struct{}

func (Strict[T]) Match(data []byte) (bool, int) {
	return DecodeStrict(data, new(T)) == nil, 0
}

func (Strict[T]) Specificity() int {
	return 0
}

// Select returns the index of the best matching variant of the named union.
// Ties are broken by specificity, then by declaration order.
func Select(union string, data []byte, matchers []Matcher) (int, error) {
	type candidate struct {
		index, penalty, specificity int
	}
	var cands []candidate
	for i, m := range matchers {
		if ok, penalty := m.Match(data); ok {
			cands = append(cands, candidate{i, penalty, m.Specificity()})
		}
	}
	if len(cands) == 0 {
		return -1, NoMatch(union, data)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].penalty != cands[j].penalty {
			return cands[i].penalty < cands[j].penalty
		}
		return cands[i].specificity > cands[j].specificity
	})
	return cands[0].index, nil
}

// NoMatch builds the error returned when no variant of union accepts data.
func NoMatch(union string, data []byte) error {
	const max = 128
	snippet := string(data)
	if len(snippet) > max {
		snippet = snippet[:max] + "..."
	}
	return fmt.Errorf("%s: %w matches %s", union, ErrNoVariant, strconv.Quote(snippet))
}

// MarshalOne encodes the single non-nil variant.
func MarshalOne(union string, variants ...interface{}) ([]byte, error) {
	var set interface{}
	n := 0
	for _, v := range variants {
		if isNil(v) {
			continue
		}
		set = v
		n++
	}
	switch n {
	case 0:
		return nil, fmt.Errorf("%s: %w set", union, ErrNoVariant)
	case 1:
		return json.Marshal(set)
	default:
		return nil, fmt.Errorf("%s: %w", union, ErrMultipleVariants)
	}
}

// MarshalWithConsts encodes v, which must encode as a JSON object, and adds
// the constant fields. Keys come out sorted.
func MarshalWithConsts(v interface{}, consts map[string]interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("constant fields need an object: %w", err)
	}
	for k, c := range consts {
		cb, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		fields[k] = cb
	}
	return json.Marshal(fields)
}

// DecodeStrict decodes data into v, rejecting unknown object fields and trailing data.
func DecodeStrict(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing data after JSON value")
	}
	return nil
}

func jsonEqual(raw json.RawMessage, want interface{}) bool {
	var got interface{}
	if err := json.Unmarshal(raw, &got); err != nil {
		return false
	}
	wb, err := json.Marshal(want)
	if err != nil {
		return false
	}
	var w interface{}
	if err := json.Unmarshal(wb, &w); err != nil {
		return false
	}
	return reflect.DeepEqual(got, w)
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
