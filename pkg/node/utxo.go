package node

import (
	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/store"
	"github.com/duskledger/corechain/pkg/types"
)

// AddUnspentOutput records a newly created output as unspent. It enforces
// spec §4.11 point 3 (the source transaction must already exist) and
// point 1 (the coin must not already be Unspent or Spent).
func (n *Node) AddUnspentOutput(op types.Outpoint, output types.Output, coin types.UTXO) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ok, err := n.HasTransaction(op.TxID); err != nil {
		return err
	} else if !ok {
		return apperrors.Wrapf(apperrors.ErrNotFound, "node: add_unspent_output: source transaction not found")
	}

	key := op.Bytes()
	if present, err := n.coinPresent(key); err != nil {
		return err
	} else if present {
		return apperrors.Wrapf(apperrors.ErrAlreadyFound, "node: add_unspent_output: coin already tracked")
	}

	if err := n.putJSON(store.NamespaceUnspentOutput, key, output.Bytes()); err != nil {
		return err
	}
	if err := n.putJSON(store.NamespaceUnspentCoin, key, coin.Bytes()); err != nil {
		return err
	}
	nodeLog.Debug("output unspent", "outpoint", op)
	return nil
}

// coinPresent reports whether key is tracked in either of the Unspent or
// Spent coin namespaces, the precondition check for invariant 1.
func (n *Node) coinPresent(key []byte) (bool, error) {
	if ok, err := n.st.Lookup(store.NamespaceUnspentCoin, key); err != nil {
		return false, err
	} else if ok {
		return true, nil
	}
	return n.st.Lookup(store.NamespaceSpentCoin, key)
}

// SpendOutput transitions the output at op from Unspent to Spent. The
// del_unspent and add_spent halves happen while the node holds its
// exclusive lock, so no concurrent reader observes a state where the
// coin is in neither namespace or in both (spec §4.11 points 1-2).
func (n *Node) SpendOutput(op types.Outpoint) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	key := op.Bytes()
	outputBytes, err := n.getPlain(store.NamespaceUnspentOutput, key)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrNotFound, "node: spend_output: coin is not unspent: %v", err)
	}
	coinBytes, err := n.getPlain(store.NamespaceUnspentCoin, key)
	if err != nil {
		return err
	}

	if err := n.st.Del(store.NamespaceUnspentOutput, key); err != nil {
		return err
	}
	if err := n.st.Del(store.NamespaceUnspentCoin, key); err != nil {
		return err
	}
	if err := n.putJSON(store.NamespaceSpentOutput, key, outputBytes); err != nil {
		return err
	}
	if err := n.putJSON(store.NamespaceSpentCoin, key, coinBytes); err != nil {
		return err
	}
	n.spends.Mark(1)
	nodeLog.Info("output spent", "outpoint", op)
	return nil
}

// ResolveOutput implements types.OutputResolver against the node's
// unspent set, falling back to the spent set so that re-verifying an
// already-accepted transaction still succeeds.
func (n *Node) ResolveOutput(op types.Outpoint) (types.Output, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	key := op.Bytes()
	if b, err := n.getPlain(store.NamespaceUnspentOutput, key); err == nil {
		if out, err := types.OutputFromBytes(b); err == nil {
			return out, true
		}
	}
	if b, err := n.getPlain(store.NamespaceSpentOutput, key); err == nil {
		if out, err := types.OutputFromBytes(b); err == nil {
			return out, true
		}
	}
	return types.Output{}, false
}

// IsUnspent reports whether op currently names an unspent coin.
func (n *Node) IsUnspent(op types.Outpoint) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.st.Lookup(store.NamespaceUnspentCoin, op.Bytes())
}

// IsSpent reports whether op currently names a spent coin.
func (n *Node) IsSpent(op types.Outpoint) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.st.Lookup(store.NamespaceSpentCoin, op.Bytes())
}
