// Package live applies node streams to live objects.
//
// Any type becomes live-appliable by implementing [Applier]. Embedding
// [HookBase] supplies the lifecycle defaults, and [ApplyStruct] walks an
// object subtree using `live:"name"` struct tags, so a typical component is:
//
//	type Label struct {
//	    live.HookBase
//	    Text  string  `live:"text"`
//	    Width float64 `live:"width"`
//	}
//
//	func (l *Label) Apply(cx *live.Cx, from live.ApplyFrom, index int, nodes livenode.Nodes) int {
//	    return live.ApplyStruct(cx, l, from, index, nodes)
//	}
//
// # Apply sources
//
// Every apply carries an [ApplyFrom] describing why it happens: fresh
// construction from a document, a live document update, bare construction,
// an animation step, or a one-off overlay ([ApplyOver], [ApplyClear]).
//
// # Construction
//
// [New], [NewApply], [NewApplyMut], [NewFromPtr] and [NewFromModulePathID]
// build and apply in one step. [Optional] materializes a child lazily the
// first time a document mentions it.
//
// # Type erasure
//
// [Object] stores any Applier with a runtime type tag and downcasts with
// [Is], [Cast] and [CastMut], failing closed. [Action] stores any cloneable
// user action and downcasts with [CastAction], failing open to the type's
// default value so dispatch tables can probe every action cheaply.
//
// All calls are synchronous and belong to the thread owning the [Cx].
package live
