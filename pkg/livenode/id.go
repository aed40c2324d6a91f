package livenode

import (
	"hash/fnv"
	"strconv"
	"sync"
)

// LiveID identifies a field, component or document entry by name.
// IDs are derived deterministically from the name so two processes agree on
// the value without coordination.
type LiveID uint64

// EmptyID is the identifier of unnamed nodes such as array items and closes.
const EmptyID LiveID = 0

var (
	namesMu sync.RWMutex
	names   = make(map[LiveID]string)
)

// ID returns the identifier for name and remembers the name so String can
// resolve it later. The empty name maps to EmptyID.
func ID(name string) LiveID {
	if name == "" {
		return EmptyID
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	id := LiveID(h.Sum64())
	if id == EmptyID {
		id = 1
	}

	namesMu.RLock()
	_, known := names[id]
	namesMu.RUnlock()
	if !known {
		namesMu.Lock()
		names[id] = name
		namesMu.Unlock()
	}
	return id
}

// String returns the interned name, or a hex form for ids whose name was
// never seen by this process.
func (id LiveID) String() string {
	if id == EmptyID {
		return ""
	}
	namesMu.RLock()
	name, ok := names[id]
	namesMu.RUnlock()
	if ok {
		return name
	}
	return "0x" + strconv.FormatUint(uint64(id), 16)
}

// Reserved identifiers with protocol meaning.
var (
	// IDFrom is the bookkeeping field carried by animation overlays.
	IDFrom = ID("from")
)
