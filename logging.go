// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package mlz

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Context is the "associated context" the spec's error channel logs to
// (§6 EXTERNAL INTERFACES, §7 ERROR HANDLING DESIGN): every error condition
// logs one human-readable line at ERROR severity and the operation still
// returns its partial byte/bit count.
type Context struct {
	log logrus.FieldLogger
}

// NewContext wraps logger for use as a codec Context. A nil logger produces
// a Context that discards everything it is asked to log.
func NewContext(logger logrus.FieldLogger) *Context {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Context{log: logger}
}

// errorf logs a single ERROR-severity line tagged with the given fields and
// returns err unchanged, so call sites can write `return n, ctx.errorf(...)`.
func (c *Context) errorf(err error, fields logrus.Fields, format string, args ...any) error {
	if c == nil || c.log == nil {
		return err
	}
	c.log.WithFields(fields).WithError(err).Errorf(format, args...)
	return err
}
