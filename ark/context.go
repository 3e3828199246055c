package ark

import "github.com/sirupsen/logrus"

// Format distinguishes the two on-disk generations this package decodes
// (spec §4.5).
type Format int

const (
	FormatASE Format = iota
	FormatASA
)

// Context is threaded through one decode call: the active name table, the
// format (which selects a handful of wire-layout variants — bool
// placeholders, ObjectProperty shape, float widths), the logger, and the
// accumulated recoverable-error list (spec §7).
type Context struct {
	Format      Format
	Names       *NameTable
	Logger      logrus.FieldLogger
	ObjectIndex int
	Errors      []ParseError
	// GameTime is the save's elapsed world seconds (spec §4.9 decay-timer
	// formula). Zero for single-object files, which carry no world clock.
	GameTime float64
}

// NewContext builds a decode Context for the given format and name table.
func NewContext(format Format, names *NameTable, logger logrus.FieldLogger) *Context {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Context{Format: format, Names: names, Logger: logger}
}

func (c *Context) addParseError(propertyName string, offset int64, err error) {
	c.Errors = append(c.Errors, ParseError{
		ObjectIndex:  c.ObjectIndex,
		PropertyName: propertyName,
		Offset:       offset,
		Err:          err,
	})
	c.Logger.WithFields(logrus.Fields{
		"object":   c.ObjectIndex,
		"property": propertyName,
		"offset":   offset,
	}).Debug("recovered property decode error")
}
