package blocknode

import (
	"bytes"

	"github.com/kaspanet/checkpointd/util/binaryserializer"
	"github.com/kaspanet/checkpointd/util/daghash"
	"github.com/pkg/errors"
)

// serializedNodeSize is the size of a serialized node: the hash and parent
// hash followed by height, chain transaction count and timestamp.
const serializedNodeSize = 2*daghash.HashSize + 3*8

// SerializeNode serializes the parts of node that are needed to rebuild it
// from the database.
func SerializeNode(node *Node) ([]byte, error) {
	w := bytes.NewBuffer(make([]byte, 0, serializedNodeSize))

	_, err := w.Write(node.Hash[:])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	parentHash := node.ParentHash
	if parentHash == nil {
		parentHash = &daghash.ZeroHash
	}
	_, err = w.Write(parentHash[:])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	err = binaryserializer.PutUint64(w, node.Height)
	if err != nil {
		return nil, err
	}
	err = binaryserializer.PutUint64(w, node.ChainTxCount)
	if err != nil {
		return nil, err
	}
	err = binaryserializer.PutInt64(w, node.Timestamp)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// DeserializeNode parses a node serialized by SerializeNode. The Parent link
// of the returned node is left nil.
func DeserializeNode(serializedNode []byte) (*Node, error) {
	if len(serializedNode) != serializedNodeSize {
		return nil, errors.Errorf("serialized block index entry is %d bytes, want %d",
			len(serializedNode), serializedNodeSize)
	}
	r := bytes.NewReader(serializedNode)

	node := &Node{
		Hash:       &daghash.Hash{},
		ParentHash: &daghash.Hash{},
	}
	_, err := r.Read(node.Hash[:])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	_, err = r.Read(node.ParentHash[:])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	node.Height, err = binaryserializer.Uint64(r)
	if err != nil {
		return nil, err
	}
	node.ChainTxCount, err = binaryserializer.Uint64(r)
	if err != nil {
		return nil, err
	}
	node.Timestamp, err = binaryserializer.Int64(r)
	if err != nil {
		return nil, err
	}

	return node, nil
}
