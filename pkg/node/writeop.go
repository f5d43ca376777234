package node

import (
	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/crypto"
	"github.com/duskledger/corechain/pkg/store"
	"github.com/duskledger/corechain/pkg/types"
)

// AddWriteOp records a write-op and, per spec §4.11 point 5, creates its
// UndeletedData entry iff the write-op exists, is not expired as of now,
// and no data was already present for it.
func (n *Node) AddWriteOp(w types.WriteOp, now uint64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ok, err := n.st.Lookup(store.NamespaceWriteOp, w.ID[:]); err != nil {
		return err
	} else if ok {
		return apperrors.Wrapf(apperrors.ErrAlreadyFound, "node: write-op already recorded")
	}
	if err := n.putJSON(store.NamespaceWriteOp, w.ID[:], w.Bytes()); err != nil {
		return err
	}

	if w.Expired(now) {
		nodeLog.Debug("write-op recorded already expired, no undeleted data created", "id", w.ID.Hex())
		return nil
	}
	if ok, err := n.st.Lookup(store.NamespaceUndeletedData, w.ID[:]); err != nil {
		return err
	} else if ok {
		return nil
	}
	if err := n.putJSON(store.NamespaceUndeletedData, w.ID[:], w.Data); err != nil {
		return err
	}
	nodeLog.Info("write-op data undeleted", "id", w.ID.Hex())
	return nil
}

// ApplyDeleteOp removes a write-op's UndeletedData entry early (spec
// §4.11 point 5), requiring the referenced write-op to exist (point 3).
func (n *Node) ApplyDeleteOp(d types.DeleteOp) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ok, err := n.st.Lookup(store.NamespaceWriteOp, d.WriteOpID[:]); err != nil {
		return err
	} else if !ok {
		return apperrors.Wrapf(apperrors.ErrNotFound, "node: apply_delete_op: referenced write-op not found")
	}

	if ok, err := n.st.Lookup(store.NamespaceUndeletedData, d.WriteOpID[:]); err != nil {
		return err
	} else if !ok {
		return apperrors.Wrapf(apperrors.ErrNotFound, "node: apply_delete_op: no undeleted data for write-op")
	}
	if err := n.st.Del(store.NamespaceUndeletedData, d.WriteOpID[:]); err != nil {
		return err
	}
	if err := n.putJSON(store.NamespaceDeleteOp, d.WriteOpID[:], d.Bytes()); err != nil {
		return err
	}
	nodeLog.Info("write-op data deleted early", "id", d.WriteOpID.Hex())
	return nil
}

// ExpireWriteOps scans every WriteOp and removes the UndeletedData entry
// of any whose expiry has passed as of now. A production node would
// drive this from block-acceptance time rather than a manual sweep, but
// that scheduling loop lives outside this package's scope (spec §1).
func (n *Node) ExpireWriteOps(now uint64) (expired []crypto.Digest64, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ids, err := n.st.List(store.NamespaceWriteOp)
	if err != nil {
		return nil, err
	}
	for _, idBytes := range ids {
		raw, err := n.getPlain(store.NamespaceWriteOp, idBytes)
		if err != nil {
			return nil, err
		}
		w, err := types.WriteOpFromBytes(raw)
		if err != nil {
			return nil, err
		}
		if !w.Expired(now) {
			continue
		}
		if ok, err := n.st.Lookup(store.NamespaceUndeletedData, w.ID[:]); err != nil {
			return nil, err
		} else if !ok {
			continue
		}
		if err := n.st.Del(store.NamespaceUndeletedData, w.ID[:]); err != nil {
			return nil, err
		}
		expired = append(expired, w.ID)
	}
	if len(expired) > 0 {
		nodeLog.Info("expired write-ops swept", "count", len(expired))
	}
	return expired, nil
}

// HasUndeletedData reports whether a write-op's data is currently live.
func (n *Node) HasUndeletedData(id crypto.Digest64) (bool, error) {
	return n.st.Lookup(store.NamespaceUndeletedData, id[:])
}
