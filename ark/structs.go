package ark

import (
	"arksave/ue"

	"arksave/memory"
)

// DinoAncestorsEntry records one ancestor line entry (spec §4.3, §4.9
// parent linkage).
type DinoAncestorsEntry struct {
	Name    string
	DinoID1 uint64
	DinoID2 uint64
}

// PrimalPlayerDataStruct is a compact player reference as stored inside
// tribe member lists.
type PrimalPlayerDataStruct struct {
	PlayerDataID int64
	PlayerName   string
	UniqueID     ue.FUniqueNetIdRepl
}

// ArkInventoryData is the fixed-schema inventory-item reference list
// attached to some container structs.
type ArkInventoryData struct {
	Items []ObjectRef
}

// ArkTribeGovernment is a tribe's governance settings struct.
type ArkTribeGovernment struct {
	TribeGovernTypeIndex               int32
	DinoOwnershipRequiresTameLock      bool
	StructureOwnershipRequiresTameLock bool
	LimitStructuresRange               bool
	PinCode                            int32
}

// TribeAlliance is the fixed-schema alliance membership struct.
type TribeAlliance struct {
	AllianceID       int64
	AllianceName     string
	TribesInAlliance []int64
}

// CryopodPayload is the raw embedded mini-save byte blob carried by a
// cryopod item's custom struct data (spec §4.9). The bytes are decoded
// separately by the models package, which owns the recursive mini-save
// decode (spec §9, "the only intentional recursion").
type CryopodPayload struct {
	Data []byte
}

type structDecoder func(r *memory.Reader, ctx *Context) (any, error)

var registeredStructs map[string]structDecoder

func init() {
	registeredStructs = map[string]structDecoder{
		"Vector":          func(r *memory.Reader, ctx *Context) (any, error) { return ue.ReadFVector(r, ctx.Format == FormatASA) },
		"Rotator":         func(r *memory.Reader, ctx *Context) (any, error) { return ue.ReadFRotator(r, ctx.Format == FormatASA) },
		"Quat":            func(r *memory.Reader, ctx *Context) (any, error) { return ue.ReadFQuat(r) },
		"LinearColor":     func(r *memory.Reader, ctx *Context) (any, error) { return ue.ReadFLinearColor(r) },
		"Color":           func(r *memory.Reader, ctx *Context) (any, error) { return ue.ReadFColor(r) },
		"Guid":            func(r *memory.Reader, ctx *Context) (any, error) { return ue.ReadGuid(r) },
		"UniqueNetIdRepl": func(r *memory.Reader, ctx *Context) (any, error) { return ue.ReadFUniqueNetIdRepl(r) },
		"Transform":       func(r *memory.Reader, ctx *Context) (any, error) { return ue.ReadFTransform(r) },
		"DateTime":        func(r *memory.Reader, ctx *Context) (any, error) { return ue.ReadFDateTime(r) },
		"Timespan":        func(r *memory.Reader, ctx *Context) (any, error) { return ue.ReadFTimespan(r) },
		"SoftClassPath":   func(r *memory.Reader, ctx *Context) (any, error) { return ue.ReadFString(r) },
		"SoftObjectPath":  func(r *memory.Reader, ctx *Context) (any, error) { return ue.ReadFString(r) },

		"DinoAncestorsEntry":     decodeDinoAncestorsEntry,
		"PrimalPlayerDataStruct": decodePrimalPlayerDataStruct,
		"ArkInventoryData":       decodeArkInventoryData,
		"ArkTribeGovernment":     decodeArkTribeGovernment,
		"TribeAlliance":          decodeTribeAlliance,
		"CryopodPayload":         decodeCryopodPayload,
	}
}

// DecodeRegisteredOrAnonymousStruct decodes a StructProperty's body (spec
// §4.3). A name in the closed registered table is decoded by its fixed
// schema; anything else is assumed to be a nested property list. If that
// best-effort anonymous decode itself fails, the struct is genuinely
// unrecognized and the error is surfaced as UnknownStructError so the
// caller's recovery path (skip to declared end, increment
// parse_error_count) takes over.
func DecodeRegisteredOrAnonymousStruct(r *memory.Reader, ctx *Context, structName string) (any, error) {
	if dec, ok := registeredStructs[structName]; ok {
		return dec(r, ctx)
	}
	props, err := ReadPropertyList(r, ctx)
	if err != nil {
		return nil, &UnknownStructError{StructName: structName}
	}
	return props, nil
}

func decodeDinoAncestorsEntry(r *memory.Reader, ctx *Context) (any, error) {
	name, err := ue.ReadFString(r)
	if err != nil {
		return nil, err
	}
	id1, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	id2, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return DinoAncestorsEntry{Name: name, DinoID1: id1, DinoID2: id2}, nil
}

func decodePrimalPlayerDataStruct(r *memory.Reader, ctx *Context) (any, error) {
	id, err := r.ReadI64()
	if err != nil {
		return nil, err
	}
	name, err := ue.ReadFString(r)
	if err != nil {
		return nil, err
	}
	netID, err := ue.ReadFUniqueNetIdRepl(r)
	if err != nil {
		return nil, err
	}
	return PrimalPlayerDataStruct{PlayerDataID: id, PlayerName: name, UniqueID: netID}, nil
}

func decodeArkInventoryData(r *memory.Reader, ctx *Context) (any, error) {
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	items := make([]ObjectRef, count)
	for i := range items {
		items[i], err = decodeObject(r, ctx, true)
		if err != nil {
			return nil, err
		}
	}
	return ArkInventoryData{Items: items}, nil
}

func decodeArkTribeGovernment(r *memory.Reader, ctx *Context) (any, error) {
	governType, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	dinoLock, err := r.ReadBool32()
	if err != nil {
		return nil, err
	}
	structLock, err := r.ReadBool32()
	if err != nil {
		return nil, err
	}
	limitRange, err := r.ReadBool32()
	if err != nil {
		return nil, err
	}
	pin, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	return ArkTribeGovernment{
		TribeGovernTypeIndex:               governType,
		DinoOwnershipRequiresTameLock:      dinoLock,
		StructureOwnershipRequiresTameLock: structLock,
		LimitStructuresRange:               limitRange,
		PinCode:                            pin,
	}, nil
}

func decodeTribeAlliance(r *memory.Reader, ctx *Context) (any, error) {
	id, err := r.ReadI64()
	if err != nil {
		return nil, err
	}
	name, err := ue.ReadFString(r)
	if err != nil {
		return nil, err
	}
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	tribes := make([]int64, count)
	for i := range tribes {
		tribes[i], err = r.ReadI64()
		if err != nil {
			return nil, err
		}
	}
	return TribeAlliance{AllianceID: id, AllianceName: name, TribesInAlliance: tribes}, nil
}

func decodeCryopodPayload(r *memory.Reader, ctx *Context) (any, error) {
	size, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	data, err := r.ReadBytes(int(size))
	if err != nil {
		return nil, err
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return CryopodPayload{Data: cp}, nil
}
