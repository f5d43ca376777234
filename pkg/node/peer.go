package node

import (
	"github.com/google/uuid"

	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/store"
)

// Peer is a registered counterparty the node has exchanged messages
// with. Identifiers are opaque UUIDs rather than network addresses — the
// handshake/session state machine itself is explicitly out of scope
// (spec §1).
type Peer struct {
	ID      uuid.UUID
	Address string
}

// AddPeer registers a new peer with a freshly generated id.
func (n *Node) AddPeer(address string) (Peer, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	p := Peer{ID: uuid.New(), Address: address}
	idBytes, err := p.ID.MarshalBinary()
	if err != nil {
		return Peer{}, apperrors.Wrapf(apperrors.ErrUnknown, "node: marshal peer id: %v", err)
	}
	if err := n.putJSON(store.NamespacePeer, idBytes, []byte(p.Address)); err != nil {
		return Peer{}, err
	}
	nodeLog.Info("peer added", "peer_id", p.ID)
	return p, nil
}

// RemovePeer unregisters a peer.
func (n *Node) RemovePeer(id uuid.UUID) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrUnknown, "node: marshal peer id: %v", err)
	}
	if err := n.st.Del(store.NamespacePeer, idBytes); err != nil {
		return err
	}
	nodeLog.Info("peer removed", "peer_id", id)
	return nil
}

// ListPeers returns every registered peer's id.
func (n *Node) ListPeers() ([]uuid.UUID, error) {
	keys, err := n.st.List(store.NamespacePeer)
	if err != nil {
		return nil, err
	}
	out := make([]uuid.UUID, 0, len(keys))
	for _, k := range keys {
		id, err := uuid.FromBytes(k)
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.ErrUnknown, "node: decode peer id: %v", err)
		}
		out = append(out, id)
	}
	return out, nil
}
