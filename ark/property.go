package ark

import (
	"arksave/memory"
	"arksave/ue"
)

// Property is a self-describing record within an object's property list
// (spec §3/§4.4).
type Property struct {
	Name  NameRef
	Type  string
	Index uint32
	Size  uint32
	Value any
}

// ObjectRef is an unresolved ObjectProperty value: either an ASE index into
// the container or an ASA GUID. Null is set for the -1 / all-zero sentinel
// (spec §4.4).
type ObjectRef struct {
	Index int32
	GUID  ue.FGuid
	Null  bool
}

// EnumValue is a decoded EnumProperty (spec §4.4).
type EnumValue struct {
	EnumType string
	Value    string
}

// TextValue is a decoded TextProperty. Only HistoryType 0 (literal source
// string) and 255 (empty/culture-invariant) are given first-class fields;
// anything else is recorded as Unsupported (spec §4.4, §9 open question).
type TextValue struct {
	Flags        uint32
	HistoryType  uint8
	Namespace    string
	Key          string
	SourceString string
	Unsupported  bool
}

// ArrayValue is a decoded ArrayProperty or SetProperty (spec §4.4).
type ArrayValue struct {
	ElementType string
	Items       []any
}

// MapEntry is one key/value pair inside a decoded MapProperty.
type MapEntry struct {
	Key   any
	Value any
}

// MapValue is a decoded MapProperty (spec §4.4).
type MapValue struct {
	KeyType   string
	ValueType string
	Entries   []MapEntry
}

// StructValue is a decoded StructProperty: either a registered fixed-schema
// struct (Value holds its concrete Go type) or an anonymous nested property
// list (Value holds []Property) (spec §4.3).
type StructValue struct {
	StructName string
	Value      any
}

// skipPropertyGuid consumes the per-tagged-property "has property GUID"
// byte (and the GUID itself when set) that precedes every top-level or
// struct-member property value. Array/set/map elements are raw and skip
// this (spec §4.4 prelude discussion; UE tagged-property wire format).
func skipPropertyGuid(r *memory.Reader) error {
	has, err := r.ReadBool8()
	if err != nil {
		return err
	}
	if has {
		if _, err := r.ReadBytes(16); err != nil {
			return err
		}
	}
	return nil
}

func readSize(r *memory.Reader) (uint32, error) {
	return r.ReadU32()
}

// ReadPropertyList decodes a property list until the "None" sentinel name
// terminates it (spec §4.4). Recoverable per-property errors are appended
// to ctx.Errors and the cursor skips to the declared end. A property whose
// value failed to decode is still yielded, with a nil Value; one whose
// value decoded but consumed the wrong number of bytes keeps that value.
func ReadPropertyList(r *memory.Reader, ctx *Context) ([]Property, error) {
	var result []Property
	for {
		p, err := readProperty(r, ctx)
		if err != nil {
			return result, err
		}
		if p == nil {
			return result, nil
		}
		result = append(result, *p)
	}
}

func readProperty(r *memory.Reader, ctx *Context) (*Property, error) {
	name, err := ReadNameRef(r, ctx.Names)
	if err != nil {
		return nil, err
	}
	if name.IsNone() {
		return nil, nil
	}

	typeRef, err := ReadNameRef(r, ctx.Names)
	if err != nil {
		return nil, err
	}

	size, err := readSize(r)
	if err != nil {
		return nil, err
	}
	index, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	preOffset := r.Tell()
	value, decErr := decodeValue(r, typeRef.Name, size, ctx, false)
	if decErr != nil {
		ctx.addParseError(name.String(), preOffset, decErr)
		if err := r.Seek(preOffset + int64(size)); err != nil {
			return nil, err
		}
		value = nil
	} else {
		postOffset := r.Tell()
		if postOffset-preOffset != int64(size) {
			ctx.addParseError(name.String(), preOffset, &UnexpectedError{
				Context: "ReadPropertyList",
				Detail:  "declared size did not match bytes consumed",
			})
			if err := r.Seek(preOffset + int64(size)); err != nil {
				return nil, err
			}
		}
	}

	return &Property{Name: name, Type: typeRef.Name, Index: index, Size: size, Value: value}, nil
}

// decodeValue dispatches on the property type tag. raw selects whether the
// per-tagged-property GUID-flag prelude is present: false for a named
// top-level/struct-member property, true for an array/set/map element.
func decodeValue(r *memory.Reader, tag string, size uint32, ctx *Context, raw bool) (any, error) {
	switch tag {
	case TagBool:
		return decodeBool(r, ctx, raw)
	case TagByte:
		return decodeByte(r, ctx, raw)
	case TagInt:
		return decodeScalar[int32](r, raw)
	case TagInt16:
		return decodeScalar[int16](r, raw)
	case TagInt64:
		return decodeScalar[int64](r, raw)
	case TagUInt16:
		return decodeScalar[uint16](r, raw)
	case TagUInt32:
		return decodeScalar[uint32](r, raw)
	case TagUInt64:
		return decodeScalar[uint64](r, raw)
	case TagFloat:
		return decodeFloat32(r, raw)
	case TagDouble:
		return decodeFloat64(r, raw)
	case TagStr, TagSoftObj:
		return decodeStr(r, raw)
	case TagName:
		return decodeName(r, ctx, raw)
	case TagText:
		return decodeText(r, raw)
	case TagEnum:
		return decodeEnum(r, ctx)
	case TagObject:
		return decodeObject(r, ctx, raw)
	case TagStruct:
		return decodeStruct(r, ctx, size, raw)
	case TagArray:
		return decodeArrayOrSet(r, ctx, size)
	case TagSet:
		return decodeArrayOrSet(r, ctx, size)
	case TagMap:
		return decodeMap(r, ctx)
	case TagNone:
		return nil, nil
	default:
		return nil, &UnknownPropertyError{PropertyName: tag, Tag: tag}
	}
}

func maybeSkipGuid(r *memory.Reader, raw bool) error {
	if raw {
		return nil
	}
	return skipPropertyGuid(r)
}

func decodeBool(r *memory.Reader, ctx *Context, raw bool) (bool, error) {
	if ctx.Format == FormatASA {
		if !raw {
			if err := skipPropertyGuid(r); err != nil {
				return false, err
			}
		}
		v, err := r.ReadU8()
		return v != 0, err
	}
	// ASE: the 1-byte value lives inside the prelude itself (size is 0).
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	if !raw {
		if err := skipPropertyGuid(r); err != nil {
			return false, err
		}
	}
	return v != 0, nil
}

func decodeByte(r *memory.Reader, ctx *Context, raw bool) (any, error) {
	enumType, err := ReadNameRef(r, ctx.Names)
	if err != nil {
		return nil, err
	}
	if err := maybeSkipGuid(r, raw); err != nil {
		return nil, err
	}
	if enumType.Name == TagNone || enumType.Name == "" {
		v, err := r.ReadU8()
		return v, err
	}
	val, err := ReadNameRef(r, ctx.Names)
	if err != nil {
		return nil, err
	}
	return EnumValue{EnumType: enumType.Name, Value: val.Name}, nil
}

func decodeScalar[T memory.Int](r *memory.Reader, raw bool) (T, error) {
	if !raw {
		if err := skipPropertyGuid(r); err != nil {
			return 0, err
		}
	}
	return memory.ReadInt[T](r)
}

func decodeFloat32(r *memory.Reader, raw bool) (float32, error) {
	if !raw {
		if err := skipPropertyGuid(r); err != nil {
			return 0, err
		}
	}
	return r.ReadF32()
}

func decodeFloat64(r *memory.Reader, raw bool) (float64, error) {
	if !raw {
		if err := skipPropertyGuid(r); err != nil {
			return 0, err
		}
	}
	return r.ReadF64()
}

func decodeStr(r *memory.Reader, raw bool) (string, error) {
	if !raw {
		if err := skipPropertyGuid(r); err != nil {
			return "", err
		}
	}
	return ue.ReadFString(r)
}

func decodeName(r *memory.Reader, ctx *Context, raw bool) (string, error) {
	if !raw {
		if err := skipPropertyGuid(r); err != nil {
			return "", err
		}
	}
	n, err := ReadNameRef(r, ctx.Names)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func decodeText(r *memory.Reader, raw bool) (TextValue, error) {
	if !raw {
		if err := skipPropertyGuid(r); err != nil {
			return TextValue{}, err
		}
	}
	flags, err := r.ReadU32()
	if err != nil {
		return TextValue{}, err
	}
	historyType, err := r.ReadU8()
	if err != nil {
		return TextValue{}, err
	}
	tv := TextValue{Flags: flags, HistoryType: historyType}
	switch historyType {
	case 0:
		tv.Namespace, err = ue.ReadFString(r)
		if err != nil {
			return tv, err
		}
		tv.Key, err = ue.ReadFString(r)
		if err != nil {
			return tv, err
		}
		tv.SourceString, err = ue.ReadFString(r)
		if err != nil {
			return tv, err
		}
	case 255:
		hasText, err := r.ReadU32()
		if err != nil {
			return tv, err
		}
		if hasText != 0 {
			tv.SourceString, err = ue.ReadFString(r)
			if err != nil {
				return tv, err
			}
		}
	default:
		tv.Unsupported = true
	}
	return tv, nil
}

func decodeEnum(r *memory.Reader, ctx *Context) (EnumValue, error) {
	enumType, err := ReadNameRef(r, ctx.Names)
	if err != nil {
		return EnumValue{}, err
	}
	if err := skipPropertyGuid(r); err != nil {
		return EnumValue{}, err
	}
	val, err := ReadNameRef(r, ctx.Names)
	if err != nil {
		return EnumValue{}, err
	}
	return EnumValue{EnumType: enumType.Name, Value: val.Name}, nil
}

func decodeObject(r *memory.Reader, ctx *Context, raw bool) (ObjectRef, error) {
	if err := maybeSkipGuid(r, raw); err != nil {
		return ObjectRef{}, err
	}
	if ctx.Format == FormatASA {
		guid, err := ue.ReadGuid(r)
		if err != nil {
			return ObjectRef{}, err
		}
		if guid.IsZero() {
			return ObjectRef{Null: true}, nil
		}
		return ObjectRef{GUID: guid}, nil
	}
	idx, err := r.ReadI32()
	if err != nil {
		return ObjectRef{}, err
	}
	if idx == -1 {
		return ObjectRef{Null: true}, nil
	}
	return ObjectRef{Index: idx}, nil
}

func decodeStruct(r *memory.Reader, ctx *Context, size uint32, raw bool) (StructValue, error) {
	structName, err := ReadNameRef(r, ctx.Names)
	if err != nil {
		return StructValue{}, err
	}
	if !raw {
		// struct-typed properties carry the property GUID + a struct GUID.
		if err := skipPropertyGuid(r); err != nil {
			return StructValue{}, err
		}
	}
	if _, err := ue.ReadGuid(r); err != nil {
		return StructValue{}, err
	}
	if _, err := r.ReadU8(); err != nil {
		return StructValue{}, err
	}
	val, err := DecodeRegisteredOrAnonymousStruct(r, ctx, structName.Name)
	if err != nil {
		return StructValue{StructName: structName.Name}, err
	}
	return StructValue{StructName: structName.Name, Value: val}, nil
}

func decodeArrayOrSet(r *memory.Reader, ctx *Context, _ uint32) (ArrayValue, error) {
	elemType, err := ReadNameRef(r, ctx.Names)
	if err != nil {
		return ArrayValue{}, err
	}
	if err := skipPropertyGuid(r); err != nil {
		return ArrayValue{}, err
	}
	count, err := r.ReadU32()
	if err != nil {
		return ArrayValue{}, err
	}

	if elemType.Name == TagStruct {
		innerName, innerStruct, innerSize, err := readArrayStructHeader(r, ctx)
		if err != nil {
			return ArrayValue{}, err
		}
		items := make([]any, count)
		for i := uint32(0); i < count; i++ {
			v, err := DecodeRegisteredOrAnonymousStruct(r, ctx, innerStruct)
			if err != nil {
				return ArrayValue{ElementType: TagStruct}, err
			}
			items[i] = StructValue{StructName: innerStruct, Value: v}
		}
		_ = innerName
		_ = innerSize
		return ArrayValue{ElementType: TagStruct, Items: items}, nil
	}

	items := make([]any, count)
	for i := uint32(0); i < count; i++ {
		v, err := decodeValue(r, elemType.Name, 0, ctx, true)
		if err != nil {
			return ArrayValue{ElementType: elemType.Name, Items: items[:i]}, err
		}
		items[i] = v
	}
	return ArrayValue{ElementType: elemType.Name, Items: items}, nil
}

// readArrayStructHeader decodes the inner header that precedes the elements
// of a struct-typed array/set: a redundant (name, "StructProperty") pair, a
// byte size, an index, the element struct's type name, its GUID and the
// trailing property-GUid-flag byte (spec §4.4).
func readArrayStructHeader(r *memory.Reader, ctx *Context) (name string, structType string, size uint32, err error) {
	n, err := ReadNameRef(r, ctx.Names)
	if err != nil {
		return "", "", 0, err
	}
	if _, err = ReadNameRef(r, ctx.Names); err != nil { // redundant "StructProperty" tag
		return "", "", 0, err
	}
	size, err = r.ReadU32()
	if err != nil {
		return "", "", 0, err
	}
	if _, err = r.ReadU32(); err != nil { // redundant index
		return "", "", 0, err
	}
	st, err := ReadNameRef(r, ctx.Names)
	if err != nil {
		return "", "", 0, err
	}
	if _, err = ue.ReadGuid(r); err != nil {
		return "", "", 0, err
	}
	if _, err = r.ReadU8(); err != nil {
		return "", "", 0, err
	}
	return n.Name, st.Name, size, nil
}

func decodeMap(r *memory.Reader, ctx *Context) (MapValue, error) {
	keyType, err := ReadNameRef(r, ctx.Names)
	if err != nil {
		return MapValue{}, err
	}
	valueType, err := ReadNameRef(r, ctx.Names)
	if err != nil {
		return MapValue{}, err
	}
	if err := skipPropertyGuid(r); err != nil {
		return MapValue{}, err
	}
	if _, err := r.ReadU32(); err != nil { // num_removed, discarded
		return MapValue{}, err
	}
	count, err := r.ReadU32()
	if err != nil {
		return MapValue{}, err
	}
	entries := make([]MapEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		k, err := decodeValue(r, keyType.Name, 0, ctx, true)
		if err != nil {
			return MapValue{KeyType: keyType.Name, ValueType: valueType.Name, Entries: entries}, err
		}
		v, err := decodeValue(r, valueType.Name, 0, ctx, true)
		if err != nil {
			return MapValue{KeyType: keyType.Name, ValueType: valueType.Name, Entries: entries}, err
		}
		entries = append(entries, MapEntry{Key: k, Value: v})
	}
	return MapValue{KeyType: keyType.Name, ValueType: valueType.Name, Entries: entries}, nil
}
