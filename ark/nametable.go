package ark

import (
	"strconv"

	"arksave/memory"
	"arksave/ue"
)

// NameTableStrategy selects how NameRefs are materialized (spec §4.2).
type NameTableStrategy int

const (
	// StrategyTrailing resolves NameRefs against a table loaded from a
	// trailing offset in the file (world saves, §4.6/§4.7).
	StrategyTrailing NameTableStrategy = iota
	// StrategyInline decodes every NameRef as an FString read in place.
	StrategyInline
)

// NameTable is the deduplicated string pool a decode pass threads through
// every NameRef read (spec C2).
type NameTable struct {
	strategy NameTableStrategy
	names    []string
}

// NewInlineNameTable returns a NameTable that reads every NameRef as an
// inline FString.
func NewInlineNameTable() *NameTable {
	return &NameTable{strategy: StrategyInline}
}

// LoadTrailingNameTable seeks to offset, reads a u32 entry count followed
// by that many FStrings, and restores the cursor to wherever it was before
// the call.
func LoadTrailingNameTable(r *memory.Reader, offset int64) (*NameTable, error) {
	saved := r.Tell()
	if err := r.Seek(offset); err != nil {
		return nil, err
	}
	count32, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	count := int(count32)
	names := make([]string, count)
	for i := 0; i < count; i++ {
		s, err := ue.ReadFString(r)
		if err != nil {
			return nil, err
		}
		names[i] = s
	}
	if err := r.Seek(saved); err != nil {
		return nil, err
	}
	return &NameTable{strategy: StrategyTrailing, names: names}, nil
}

// NewTrailingNameTable wraps an already-decoded slice of names, used by
// formats (ASA) that materialize the whole table from a single blob rather
// than seeking within the current cursor (spec §4.7).
func NewTrailingNameTable(names []string) *NameTable {
	return &NameTable{strategy: StrategyTrailing, names: names}
}

// Resolve looks up a table index. The wire index is 1-based; an
// out-of-range index is always fatal (spec §3, invariant 1).
func (nt *NameTable) Resolve(index int32) (string, error) {
	internalIndex := index - 1
	if internalIndex < 0 || int(internalIndex) >= len(nt.names) {
		return "", &CorruptError{Context: "NameTable.Resolve", Detail: "name index out of range"}
	}
	return nt.names[internalIndex], nil
}

// NameRef is a logical interned string: the resolved name plus an optional
// numeric suffix (spec §3). Two NameRefs are equal iff both the resolved
// string and the suffix match — the zero value's struct equality already
// has that property.
type NameRef struct {
	Name   string
	Number int32
}

// IsNone reports whether this NameRef is the "None" sentinel that
// terminates property lists (spec §4.4).
func (n NameRef) IsNone() bool {
	return n.Name == "None"
}

// String renders "name" or "name_suffix" when a nonzero instance is
// present. The wire Number is the instance value; the rendered suffix is
// instance-1.
func (n NameRef) String() string {
	if n.Number != 0 {
		return n.Name + "_" + strconv.Itoa(int(n.Number)-1)
	}
	return n.Name
}

// ReadNameRef decodes a NameRef according to nt's strategy.
func ReadNameRef(r *memory.Reader, nt *NameTable) (NameRef, error) {
	if nt.strategy == StrategyInline {
		s, err := ue.ReadFString(r)
		if err != nil {
			return NameRef{}, err
		}
		return NameRef{Name: s}, nil
	}
	fn, err := ue.ReadFName(r)
	if err != nil {
		return NameRef{}, err
	}
	name, err := nt.Resolve(fn.Index)
	if err != nil {
		return NameRef{}, err
	}
	return NameRef{Name: name, Number: fn.Number}, nil
}
