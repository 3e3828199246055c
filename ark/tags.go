package ark

// Property type tags (spec §3/§4.4). These are the literal strings stored
// as a property's Type NameRef.
const (
	TagNone    = "None"
	TagBool    = "BoolProperty"
	TagByte    = "ByteProperty"
	TagInt     = "IntProperty"
	TagInt16   = "Int16Property"
	TagInt64   = "Int64Property"
	TagUInt16  = "UInt16Property"
	TagUInt32  = "UInt32Property"
	TagUInt64  = "UInt64Property"
	TagFloat   = "FloatProperty"
	TagDouble  = "DoubleProperty"
	TagStr     = "StrProperty"
	TagName    = "NameProperty"
	TagText    = "TextProperty"
	TagEnum    = "EnumProperty"
	TagObject  = "ObjectProperty"
	TagStruct  = "StructProperty"
	TagArray   = "ArrayProperty"
	TagSet     = "SetProperty"
	TagMap     = "MapProperty"
	TagSoftObj = "SoftObjectProperty"
)
