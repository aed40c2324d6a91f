package live

import (
	"fmt"
	"log/slog"

	"github.com/hardik-satasiya/makepad/internal/logging"
	"github.com/hardik-satasiya/makepad/pkg/errors"
	"github.com/hardik-satasiya/makepad/pkg/livenode"
	"github.com/hardik-satasiya/makepad/pkg/registry"
)

// DiagnosticKind categorizes a recovered apply problem.
type DiagnosticKind int

const (
	// DiagNoMatchingField is a document field the target type does not have.
	DiagNoMatchingField DiagnosticKind = iota
	// DiagValueMismatch is a value that does not fit the field it targets.
	DiagValueMismatch
	// DiagDanglingPtr is a pointer that resolves to no document node.
	DiagDanglingPtr
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagNoMatchingField:
		return "no_matching_field"
	case DiagValueMismatch:
		return "value_mismatch"
	case DiagDanglingPtr:
		return "dangling_ptr"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is a recovered problem found while applying a document.
type Diagnostic struct {
	Kind DiagnosticKind
	From ApplyFrom
	// Index is the node the problem was found at.
	Index int
	// Field is the identifier of that node.
	Field livenode.LiveID
	// Origin is the type being applied when the problem was found, if known.
	Origin string
	Err    error
}

func (d Diagnostic) String() string {
	origin := d.Origin
	if origin == "" {
		origin = "?"
	}
	return fmt.Sprintf("%s: %s field %q at node %d (%s): %v", d.Kind, origin, d.Field, d.Index, d.From, d.Err)
}

// DrawOp is one entry of the frame recorded by DrawDyn implementations.
type DrawOp struct {
	Component string
	Attrs     map[string]any
}

// Cx is the shared context threaded through every apply call. It gives
// access to the registry and collects diagnostics. A Cx is not safe for
// concurrent use.
type Cx struct {
	registry *registry.Registry
	logger   *slog.Logger
	metrics  *Metrics
	handler  errors.ErrorHandler

	factories map[LiveType]Factory
	names     map[livenode.LiveID]LiveType

	diagnostics []Diagnostic
	origins     []string
	frame       []DrawOp
	// fieldApply is set while a struct field walk hands a node to a nested
	// Applier. A scalar reaching a nested struct there is a value mismatch,
	// not the struct's first field.
	fieldApply int
}

// Option configures a Cx.
type Option func(*Cx)

// WithRegistry sets the document registry. NewCx creates an empty one otherwise.
func WithRegistry(r *registry.Registry) Option {
	return func(cx *Cx) { cx.registry = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(cx *Cx) { cx.logger = l }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(cx *Cx) { cx.metrics = m }
}

// WithErrorHandler routes reported diagnostics to h. By default they are
// logged through the context logger.
func WithErrorHandler(h errors.ErrorHandler) Option {
	return func(cx *Cx) { cx.handler = h }
}

// NewCx returns a context configured by opts.
func NewCx(opts ...Option) *Cx {
	cx := &Cx{
		factories: make(map[LiveType]Factory),
		names:     make(map[livenode.LiveID]LiveType),
	}
	for _, opt := range opts {
		opt(cx)
	}
	if cx.registry == nil {
		cx.registry = registry.New()
	}
	if cx.logger == nil {
		cx.logger = logging.NewNop()
	}
	if cx.handler == nil {
		cx.handler = &errors.LogHandler{Logger: cx.logger}
	}
	return cx
}

// Registry returns the document registry.
func (cx *Cx) Registry() *registry.Registry {
	return cx.registry
}

// Logger returns the context logger.
func (cx *Cx) Logger() *slog.Logger {
	return cx.logger
}

// Diagnostics returns the diagnostics reported so far.
func (cx *Cx) Diagnostics() []Diagnostic {
	return cx.diagnostics
}

// TakeDiagnostics returns the diagnostics reported so far and clears them.
func (cx *Cx) TakeDiagnostics() []Diagnostic {
	out := cx.diagnostics
	cx.diagnostics = nil
	return out
}

// ApplyErrorNoMatchingField reports that nodes[index] names a field the
// object being applied does not have.
func (cx *Cx) ApplyErrorNoMatchingField(from ApplyFrom, index int, nodes livenode.Nodes) {
	cx.report(DiagNoMatchingField, errors.KindApply, from, index, nodes, errors.ErrNoMatchingField)
}

// ApplyErrorValueMismatch reports that nodes[index] could not be stored in
// the field it names.
func (cx *Cx) ApplyErrorValueMismatch(from ApplyFrom, index int, nodes livenode.Nodes, err error) {
	cx.report(DiagValueMismatch, errors.KindValue, from, index, nodes, fmt.Errorf("%w: %v", errors.ErrValueMismatch, err))
}

func (cx *Cx) applyErrorDanglingPtr(from ApplyFrom, ptr registry.Ptr) {
	cx.report(DiagDanglingPtr, errors.KindLookup, from, ptr.Index, nil, fmt.Errorf("%w: %s", errors.ErrUnknownFile, ptr))
}

func (cx *Cx) report(kind DiagnosticKind, errKind errors.ErrorKind, from ApplyFrom, index int, nodes livenode.Nodes, err error) {
	d := Diagnostic{
		Kind:   kind,
		From:   from,
		Index:  index,
		Origin: cx.origin(),
		Err:    err,
	}
	if index >= 0 && index < len(nodes) {
		d.Field = nodes[index].ID
	}
	cx.diagnostics = append(cx.diagnostics, d)
	cx.metrics.observeDiagnostic(kind)
	cx.logger.Debug("live apply diagnostic",
		"kind", kind.String(),
		"field", d.Field.String(),
		"index", index,
		"from", from.String(),
		"origin", d.Origin,
	)
	errors.ReportTo(cx.handler, &errors.LiveError{
		Op:     "live.apply",
		Kind:   errKind,
		Err:    fmt.Errorf("field %q at node %d: %w", d.Field, index, err),
		Origin: d.Origin,
	})
}

func (cx *Cx) pushOrigin(name string) {
	cx.origins = append(cx.origins, name)
}

func (cx *Cx) popOrigin() {
	if n := len(cx.origins); n > 0 {
		cx.origins = cx.origins[:n-1]
	}
}

func (cx *Cx) origin() string {
	if n := len(cx.origins); n > 0 {
		return cx.origins[n-1]
	}
	return ""
}

// PushDraw records a draw operation for the current frame.
func (cx *Cx) PushDraw(op DrawOp) {
	cx.frame = append(cx.frame, op)
}

// TakeFrame returns the draw operations recorded since the last call.
func (cx *Cx) TakeFrame() []DrawOp {
	out := cx.frame
	cx.frame = nil
	return out
}
