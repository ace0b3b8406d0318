package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/papier/paper"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// ToStarlark converts a Go value to a starlark value. Positions and words
// become dicts, instructions their text and machines a summary dict.
// Unsupported types panic.
func ToStarlark(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None
	case starlark.Value:
		return v

	case paper.Pos:
		return dict(
			"x", starlark.MakeInt64(v.X),
			"y", starlark.MakeInt64(v.Y),
		)
	case paper.Word:
		return dict(
			"x", starlark.MakeInt64(v.Offset.X),
			"y", starlark.MakeInt64(v.Offset.Y),
			"len", starlark.MakeInt(v.Len),
		)
	case paper.Instruction:
		return starlark.String(v.String())
	case *paper.Machine:
		if v == nil {
			return starlark.None
		}
		return ToStarlark(Summarize(v))

	case []byte:
		return starlark.Bytes(v)
	case []rune:
		return starlark.String(string(v))
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())
	case reflect.String:
		return starlark.String(value.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())
	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = ToStarlark(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				ToStarlark(iter.Key().Interface()),
				ToStarlark(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(typ.NumField())
		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				ToStarlark(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None
		}
		return ToStarlark(value.Elem().Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

func dict(kvs ...any) *starlark.Dict {
	d := starlark.NewDict(len(kvs) / 2)
	for i := 0; i+1 < len(kvs); i += 2 {
		d.SetKey(starlark.String(kvs[i].(string)), kvs[i+1].(starlark.Value))
	}
	return d
}
