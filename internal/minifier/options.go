package minifier

import (
	ferrors "github.com/krachkiste/doctools/internal/foundation/errors"
)

// Options is the explicitly enumerated option set of the HTML transformation.
type Options struct {
	DoNotMinifyDoctype                         bool
	EnsureSpecCompliantUnquotedAttributeValues bool
	KeepClosingTags                            bool
	KeepHTMLAndHeadOpeningTags                 bool
	KeepSpacesBetweenAttributes                bool
	KeepComments                               bool
	MinifyCSS                                  bool
	MinifyJS                                   bool
	RemoveBangs                                bool
	RemoveProcessingInstructions               bool
}

// DefaultOptions returns the fixed option set used by the minify commands.
func DefaultOptions() Options {
	return Options{
		DoNotMinifyDoctype:                         true,
		EnsureSpecCompliantUnquotedAttributeValues: true,
		KeepClosingTags:                            true,
		KeepHTMLAndHeadOpeningTags:                 true,
		KeepSpacesBetweenAttributes:                true,
		KeepComments:                               false,
		MinifyCSS:                                  true,
		MinifyJS:                                   true,
		RemoveBangs:                                true,
		RemoveProcessingInstructions:               true,
	}
}

// Validate rejects combinations the minification backend cannot honor. The backend always
// quotes attribute values where the HTML standard requires it and always separates attributes
// by a single space, so those two options cannot be switched off.
func (o Options) Validate() error {
	if !o.EnsureSpecCompliantUnquotedAttributeValues {
		return ferrors.ValidationError("non-compliant unquoted attribute values are not supported").Build()
	}
	if !o.KeepSpacesBetweenAttributes {
		return ferrors.ValidationError("removing spaces between attributes is not supported").Build()
	}
	return nil
}
