// Package store implements the prefix-addressed key/value contract of
// spec §4.10: an in-memory backend and a github.com/cockroachdb/pebble
// backed persistent backend, sharing one Store interface and one
// at-rest encryption scheme for values.
package store

// Namespace is a stable prefix byte identifying which resource a key
// belongs to, mirroring the original source's store::mode prefix scheme
// (original_source/src/store/traits.rs) generalized from a single u8
// prefix parameter into a typed enum.
type Namespace byte

// Namespace prefixes, stable across the wire per spec §4.10.
const (
	NamespacePeer Namespace = iota
	NamespaceTransaction
	NamespaceWriteOp
	NamespaceDeleteOp
	NamespaceUnspentCoin
	NamespaceSpentCoin
	NamespaceUnspentOutput
	NamespaceSpentOutput
	NamespaceUndeletedData
)

var namespaceNames = map[Namespace]string{
	NamespacePeer:          "peer",
	NamespaceTransaction:   "transaction",
	NamespaceWriteOp:       "write_op",
	NamespaceDeleteOp:      "delete_op",
	NamespaceUnspentCoin:   "unspent_coin",
	NamespaceSpentCoin:     "spent_coin",
	NamespaceUnspentOutput: "unspent_output",
	NamespaceSpentOutput:   "spent_output",
	NamespaceUndeletedData: "undeleted_data",
}

// String returns the namespace's diagnostic name.
func (n Namespace) String() string {
	if s, ok := namespaceNames[n]; ok {
		return s
	}
	return "unknown"
}
