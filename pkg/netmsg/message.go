// Package netmsg fixes the one contract spec §1/§2 keeps from the
// network layer: a message router that dispatches request messages by
// resource type. The transport, handshake session state machine, wire
// serialization format (JSON vs. compact binary), and CLI are explicitly
// out of scope — this package only defines the dispatch shape and a
// reference Router wired directly to pkg/store, with no socket involved.
package netmsg

import (
	"github.com/google/uuid"

	"github.com/duskledger/corechain/pkg/store"
)

// ResourceType names which store namespace a message addresses. It is
// the same stable prefix space as store.Namespace (spec §4.10) — the
// router dispatches by resource type, it does not invent a second
// taxonomy.
type ResourceType = store.Namespace

// Operation is the verb a Message requests against a ResourceType.
type Operation int

const (
	OpGet Operation = iota
	OpPut
	OpDel
	OpLookup
	OpList
	OpSample
)

func (op Operation) String() string {
	switch op {
	case OpGet:
		return "get"
	case OpPut:
		return "put"
	case OpDel:
		return "del"
	case OpLookup:
		return "lookup"
	case OpList:
		return "list"
	case OpSample:
		return "sample"
	default:
		return "unknown"
	}
}

// Message is a single request addressed to a resource, identified by a
// request id so a caller can correlate it with its Response across an
// asynchronous transport (which this package does not implement).
type Message struct {
	RequestID uuid.UUID
	Resource  ResourceType
	Op        Operation
	Key       []byte
	Value     store.Value
	Count     int // used by OpSample
}

// Response carries a dispatched Message's result.
type Response struct {
	RequestID uuid.UUID
	Value     store.Value
	Found     bool
	Keys      [][]byte
	Err       error
}
