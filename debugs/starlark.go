package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/bcc/tapes"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// toStarlarkValue converts Go values for the tap. Structs become dicts of
// their exported fields, funcs become builtins.
func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {
	case nil:
		return starlark.None
	case starlark.Value:
		return v
	case []byte:
		return starlark.Bytes(v)
	case tapes.Cells:
		return starlark.Tuple{
			starlark.MakeInt(v.Position),
			starlark.MakeInt(v.Size),
		}
	}
	return reflectValue(reflect.ValueOf(v))
}

func reflectValue(value reflect.Value) starlark.Value {
	switch kind := value.Kind(); {

	case kind == reflect.Bool:
		return starlark.Bool(value.Bool())

	case kind == reflect.String:
		return starlark.String(value.String())

	case value.CanInt():
		return starlark.MakeInt64(value.Int())

	case value.CanUint():
		return starlark.MakeUint64(value.Uint())

	case value.CanFloat():
		return starlark.Float(value.Float())

	case kind == reflect.Slice, kind == reflect.Array:
		return listValue(value)

	case kind == reflect.Map:
		return dictValue(value)

	case kind == reflect.Struct:
		return structValue(value)

	case kind == reflect.Pointer, kind == reflect.Interface:
		if value.IsNil() {
			return starlark.None
		}
		return toStarlarkValue(value.Elem().Interface())

	case kind == reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}
	panic(fmt.Errorf("unsupported type for starlark: %v", value.Type()))
}

func listValue(value reflect.Value) *starlark.List {
	elems := make([]starlark.Value, 0, value.Len())
	for _, elem := range value.Seq2() {
		elems = append(elems, toStarlarkValue(elem.Interface()))
	}
	return starlark.NewList(elems)
}

func dictValue(value reflect.Value) *starlark.Dict {
	d := starlark.NewDict(value.Len())
	for k, v := range value.Seq2() {
		d.SetKey(toStarlarkValue(k.Interface()), toStarlarkValue(v.Interface()))
	}
	return d
}

func structValue(value reflect.Value) *starlark.Dict {
	typ := value.Type()
	d := starlark.NewDict(typ.NumField())
	for i := range typ.NumField() {
		if field := typ.Field(i); field.IsExported() {
			d.SetKey(starlark.String(field.Name), toStarlarkValue(value.Field(i).Interface()))
		}
	}
	return d
}
