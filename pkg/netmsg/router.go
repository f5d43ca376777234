package netmsg

import (
	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/log"
	"github.com/duskledger/corechain/pkg/store"
)

var routerLog = log.Module("netmsg")

// Router dispatches a Message to whatever backs its resource type and
// returns the Response. A transport layer (out of scope here) would
// decode bytes off the wire into a Message, call Dispatch, and encode
// the Response back — neither of those steps lives in this package.
type Router interface {
	Dispatch(msg Message) Response
}

// StoreRouter is the reference Router: it dispatches straight to a
// pkg/store.Store, which is the only backing this repo defines. A future
// transport would sit in front of a StoreRouter rather than replace it.
type StoreRouter struct {
	st store.Store
}

// NewStoreRouter builds a Router backed by st.
func NewStoreRouter(st store.Store) *StoreRouter {
	return &StoreRouter{st: st}
}

// Dispatch executes msg against the underlying store and never panics:
// every failure mode becomes a Response.Err.
func (r *StoreRouter) Dispatch(msg Message) Response {
	resp := Response{RequestID: msg.RequestID}

	switch msg.Op {
	case OpGet:
		v, err := r.st.Get(msg.Resource, msg.Key)
		resp.Value, resp.Err = v, err
	case OpPut:
		resp.Err = r.st.Put(msg.Resource, msg.Key, msg.Value)
	case OpDel:
		resp.Err = r.st.Del(msg.Resource, msg.Key)
	case OpLookup:
		resp.Found, resp.Err = r.st.Lookup(msg.Resource, msg.Key)
	case OpList:
		resp.Keys, resp.Err = r.st.List(msg.Resource)
	case OpSample:
		resp.Keys, resp.Err = r.st.Sample(msg.Resource, msg.Count)
	default:
		resp.Err = apperrors.Wrapf(apperrors.ErrUnknown, "netmsg: unknown operation %v", msg.Op)
	}

	if resp.Err != nil {
		routerLog.Debug("dispatch failed", "op", msg.Op, "resource", msg.Resource, "err", resp.Err)
	}
	return resp
}

var _ Router = (*StoreRouter)(nil)
