// Package livenode defines the node stream consumed by the live apply protocol.
//
// A node stream is a flat, depth-first serialization of a tree. Each [Node]
// carries an identifier and either a scalar [Value] or a structural marker:
// an object or array open, or the close that ends it.
//
//	nodes := livenode.Build().
//	    Object(livenode.ID("button")).
//	        Str(livenode.ID("text"), "OK").
//	        Float(livenode.ID("width"), 120).
//	    End().
//	    Nodes()
//
// Streams are produced by the document collaborator (see package livedoc for
// YAML and JSON sources) and treated as read-only by everything that applies
// them. Every open marker has a matching close later in the stream.
package livenode
