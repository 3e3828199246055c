package ark

import (
	"arksave/memory"
	"arksave/ue"

	"github.com/sirupsen/logrus"
)

// ASEHeader is the decoded preamble of an ASE world save (spec §4.6, §6).
type ASEHeader struct {
	Version         int32
	SaveCount       int32
	GameTime        float32
	NameTableOffset int64
	ObjectCount     int32
	ObjectsOffset   int64
	PropsOffset     int64
	DataFiles       []string
}

func readOffset64(r *memory.Reader) (int64, error) {
	lo, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	hi, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return int64(lo) | int64(hi)<<32, nil
}

func readASEWorldHeader(r *memory.Reader) (*ASEHeader, error) {
	h := &ASEHeader{}
	version, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	h.Version = version
	if !validASEVersions[version] {
		return nil, &CorruptError{Context: "readASEWorldHeader", Detail: "unrecognized version"}
	}
	if version >= 9 {
		h.SaveCount, err = r.ReadI32()
		if err != nil {
			return nil, err
		}
	}
	h.GameTime, err = r.ReadF32()
	if err != nil {
		return nil, err
	}
	h.NameTableOffset, err = readOffset64(r)
	if err != nil {
		return nil, err
	}
	oc, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	h.ObjectCount = oc
	h.ObjectsOffset, err = readOffset64(r)
	if err != nil {
		return nil, err
	}
	h.PropsOffset, err = readOffset64(r)
	if err != nil {
		return nil, err
	}
	numDataFiles, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	h.DataFiles = make([]string, numDataFiles)
	for i := range h.DataFiles {
		h.DataFiles[i], err = ue.ReadFString(r)
		if err != nil {
			return nil, err
		}
	}
	return h, nil
}

// objectHeaderRecord holds the pre-properties fields read during the first
// object pass (spec §4.6 step 4).
type objectHeaderRecord struct {
	guid            ue.FGuid
	names           []string
	isItem          bool
	components      []string
	location        *LocationData
	propsOffset     int64
	shouldBeLoaded  bool
	extraDataSize   uint32
	hasExtraData    bool
}

func readObjectHeader(r *memory.Reader, nt *NameTable) (*objectHeaderRecord, error) {
	rec := &objectHeaderRecord{}
	guid, err := ue.ReadGuid(r)
	if err != nil {
		return nil, err
	}
	rec.guid = guid

	nameCount, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	rec.names = make([]string, nameCount)
	for i := range rec.names {
		n, err := ReadNameRef(r, nt)
		if err != nil {
			return nil, err
		}
		rec.names[i] = n.String()
	}

	rec.isItem, err = r.ReadBool32()
	if err != nil {
		return nil, err
	}

	compCount, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	rec.components = make([]string, compCount)
	for i := range rec.components {
		n, err := ReadNameRef(r, nt)
		if err != nil {
			return nil, err
		}
		rec.components[i] = n.String()
	}

	hasLocation, err := r.ReadBool32()
	if err != nil {
		return nil, err
	}
	if hasLocation {
		x, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		y, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		z, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		pitch, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		yaw, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		roll, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		rec.location = &LocationData{X: float64(x), Y: float64(y), Z: float64(z), Pitch: float64(pitch), Yaw: float64(yaw), Roll: float64(roll)}
	}

	propsOffset, err := readOffset64(r)
	if err != nil {
		return nil, err
	}
	rec.propsOffset = propsOffset

	rec.shouldBeLoaded, err = r.ReadBool32()
	if err != nil {
		return nil, err
	}

	if rec.isItem {
		rec.extraDataSize, err = r.ReadU32()
		if err != nil {
			return nil, err
		}
		rec.hasExtraData = true
	}

	return rec, nil
}

func classNameFromPath(name string) string {
	last := name
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' || name[i] == '/' {
			last = name[i+1:]
			break
		}
	}
	return last
}

// DecodeASEWorld decodes a world save in the legacy binary format (spec
// §4.6). It returns the decoded objects in on-disk order, ready to hand to
// NewContainer, plus the shared Context carrying accumulated parse_errors.
func DecodeASEWorld(r *memory.Reader, logger logrus.FieldLogger) ([]*GameObject, *Context, error) {
	header, err := readASEWorldHeader(r)
	if err != nil {
		return nil, nil, err
	}

	names, err := LoadTrailingNameTable(r, header.NameTableOffset)
	if err != nil {
		return nil, nil, err
	}

	ctx := NewContext(FormatASE, names, logger)
	ctx.GameTime = float64(header.GameTime)

	if err := r.Seek(header.ObjectsOffset); err != nil {
		return nil, nil, err
	}

	recs := make([]*objectHeaderRecord, header.ObjectCount)
	for i := range recs {
		rec, err := readObjectHeader(r, names)
		if err != nil {
			return nil, nil, err
		}
		recs[i] = rec
	}

	objects := make([]*GameObject, len(recs))
	for i, rec := range recs {
		ctx.ObjectIndex = i
		obj := &GameObject{
			ID:        i,
			GUID:      rec.guid,
			ClassName: classNameFromPath(lastOrEmpty(rec.components)),
			Names:     rec.names,
			IsItem:    rec.isItem,
			Location:  rec.location,
		}

		if err := r.Seek(rec.propsOffset); err != nil {
			return nil, nil, err
		}
		props, err := ReadPropertyList(r, ctx)
		if err != nil {
			return nil, nil, err
		}
		obj.Properties = props

		if rec.hasExtraData {
			extra, err := r.ReadBytes(int(rec.extraDataSize))
			if err != nil {
				return nil, nil, err
			}
			buf := make([]byte, len(extra))
			copy(buf, extra)
			obj.ExtraData = buf
		}

		objects[i] = obj
	}

	return objects, ctx, nil
}

func lastOrEmpty(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

// DecodeASESingleObject decodes a single inline object — the shape used by
// .arkprofile, .arktribe, and cloud-inventory files in the legacy format
// (spec §6): a version int, then one object's properties directly, with
// NameRefs resolved inline rather than through a trailing table (spec
// §4.2).
func DecodeASESingleObject(r *memory.Reader, logger logrus.FieldLogger) (*GameObject, *Context, error) {
	version, err := r.ReadI32()
	if err != nil {
		return nil, nil, err
	}
	_ = version

	names := NewInlineNameTable()
	ctx := NewContext(FormatASE, names, logger)

	props, err := ReadPropertyList(r, ctx)
	if err != nil {
		return nil, nil, err
	}

	obj := &GameObject{
		ID:         0,
		Names:      []string{inferPrimaryName(props)},
		Properties: props,
	}
	return obj, ctx, nil
}

// inferPrimaryName picks a display name for a single-object file from
// whichever identifying property is present, falling back to a generic
// label; model extraction does not depend on this value.
func inferPrimaryName(props []Property) string {
	for _, p := range props {
		if p.Name.Name == "PlayerName" || p.Name.Name == "TribeName" {
			if s, ok := p.Value.(string); ok {
				return s
			}
		}
	}
	return "root"
}
