// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package mlz

// Options configures a Decoder or Encoder instance.
// A nil *Options is equivalent to DefaultOptions(): a discard-all logger.
type Options struct {
	// Context carries the per-instance logging channel (§6/§7 of the spec:
	// "remember ctx for error logging"). A nil Context logs nothing.
	Context *Context
}

// DefaultOptions returns Options with a no-op logging Context.
func DefaultOptions() *Options {
	return &Options{Context: NewContext(nil)}
}

// resolve returns opts, or DefaultOptions() if opts is nil, and guarantees
// a non-nil Context either way.
func (o *Options) resolve() *Options {
	if o == nil {
		return DefaultOptions()
	}
	if o.Context == nil {
		return &Options{Context: NewContext(nil)}
	}
	return o
}
