// Enumerations here are shared between configuration and domain packages, so
// they have to live in a package which both can import without cycles.
package common

// Placement of externally generated API reference content relative to a topic.
// ENUM(none, insertBefore, insertAfter, insertAsChild)
type ApiParentMode int

// IsSet reports whether topic was designated as the API content insertion point.
func (m ApiParentMode) IsSet() bool {
	return m != ApiParentModeNone
}

// Classification of a content file's authoring format derived from its markup.
// ENUM(invalid, none, conceptual, glossary, howTo, orientation, reference, sample, troubleshooting, walkthrough, whitepaper)
type DocumentKind int

// Importable reports whether a file of this kind may become a topic.
func (k DocumentKind) Importable() bool {
	return k != DocumentKindInvalid
}

// Build action assigned to a content file in the help project.
// ENUM(none, content, image, resource)
type BuildAction int
