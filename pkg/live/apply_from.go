package live

import (
	"fmt"

	"github.com/hardik-satasiya/makepad/pkg/registry"
)

// ApplyKind names the reason an apply is happening.
type ApplyKind int

const (
	// KindNew is a bare construction without document information.
	KindNew ApplyKind = iota
	// KindNewFromDoc is a fresh construction from a parsed document.
	KindNewFromDoc
	// KindUpdateFromDoc re-applies an object after its document was edited.
	KindUpdateFromDoc
	// KindAnimate is a synthetic apply driven by an animator.
	KindAnimate
	// KindApplyOver merges an overlay into a live object.
	KindApplyOver
	// KindApplyClear merges an overlay and resets fields it does not mention.
	KindApplyClear
)

func (k ApplyKind) String() string {
	switch k {
	case KindNew:
		return "new"
	case KindNewFromDoc:
		return "new_from_doc"
	case KindUpdateFromDoc:
		return "update_from_doc"
	case KindAnimate:
		return "animate"
	case KindApplyOver:
		return "apply_over"
	case KindApplyClear:
		return "apply_clear"
	default:
		return fmt.Sprintf("ApplyKind(%d)", int(k))
	}
}

// ApplyFrom describes why an apply is happening. The zero value is FromNew.
type ApplyFrom struct {
	kind ApplyKind
	file registry.FileID
}

// Apply sources without document information.
var (
	FromNew        = ApplyFrom{kind: KindNew}
	FromAnimate    = ApplyFrom{kind: KindAnimate}
	FromApplyOver  = ApplyFrom{kind: KindApplyOver}
	FromApplyClear = ApplyFrom{kind: KindApplyClear}
)

// FromNewFromDoc is the source for objects constructed from file.
func FromNewFromDoc(file registry.FileID) ApplyFrom {
	return ApplyFrom{kind: KindNewFromDoc, file: file}
}

// FromUpdateFromDoc is the source for objects re-applied after file changed.
func FromUpdateFromDoc(file registry.FileID) ApplyFrom {
	return ApplyFrom{kind: KindUpdateFromDoc, file: file}
}

// Kind returns the variant.
func (a ApplyFrom) Kind() ApplyKind {
	return a.kind
}

// IsFromDoc reports whether the apply is sourced from a registered document.
func (a ApplyFrom) IsFromDoc() bool {
	return a.kind == KindNewFromDoc || a.kind == KindUpdateFromDoc
}

// FileID returns the source document. It is only defined for document sources.
func (a ApplyFrom) FileID() (registry.FileID, bool) {
	if !a.IsFromDoc() {
		return 0, false
	}
	return a.file, true
}

func (a ApplyFrom) String() string {
	if a.IsFromDoc() {
		return fmt.Sprintf("%s(file%d)", a.kind, a.file)
	}
	return a.kind.String()
}
