// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides the reflection helpers used to fill
// configuration structs from struct field tags.
package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/simcore/base/errors"
)

// NonPointerValue returns a non-pointer version of the given value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the values of fields in the given struct,
// which must be passed by pointer, from their `default:` struct tags.
// Fields of struct type without a default tag are set recursively.
// Array and slice defaults list their elements separated by commas
// or spaces. It returns all errors joined together.
func SetFromDefaultTags(obj any) error {
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: need a non-nil pointer, not %T", obj)
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: %T is not a pointer to a struct", obj)
	}
	return setFromDefaultTags(val)
}

func setFromDefaultTags(val reflect.Value) error {
	typ := val.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if f.Type.Kind() == reflect.Struct && !ok {
			errs = append(errs, setFromDefaultTags(fv))
			continue
		}
		if !ok {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the settable value v by parsing s according to
// the kind of v. Types implementing [encoding.TextUnmarshaler] use
// it; otherwise strings, booleans, numbers, and arrays and slices of
// those are supported.
func SetFromString(v reflect.Value, s string) error {
	if v.CanAddr() {
		if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(s))
		}
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Array, reflect.Slice:
		elems := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
		if v.Kind() == reflect.Array {
			if len(elems) != v.Len() {
				return fmt.Errorf("need %d elements for %v, got %d", v.Len(), v.Type(), len(elems))
			}
		} else {
			v.Set(reflect.MakeSlice(v.Type(), len(elems), len(elems)))
		}
		for i, e := range elems {
			if err := SetFromString(v.Index(i), e); err != nil {
				return err
			}
		}
	case reflect.Pointer:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return SetFromString(v.Elem(), s)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
