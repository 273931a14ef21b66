package checkpoints

import (
	"github.com/kaspanet/checkpointd/domain/blocknode"
)

// DefaultCandidateConfirmations is the number of blocks that must be built on
// top of a block before it can be considered a checkpoint candidate.
const DefaultCandidateConfirmations = 2016

// IsCandidate returns whether or not the passed node is a good checkpoint
// candidate with respect to the chain ending at tip.
//
// The factors used to determine a good checkpoint are:
//  - The block must be in the chain ending at tip
//  - The block must be above the last checkpoint in table
//  - The block must have at least confirmations blocks on top of it
//  - The block must have a parent and a child, and its timestamp must be
//    strictly after its parent's and strictly before its child's, so there
//    are no blocks before it with a later timestamp nor after it with an
//    earlier one
func IsCandidate(node, tip *blocknode.Node, table *Table, confirmations uint64) bool {
	if node == nil || tip == nil {
		return false
	}

	// A checkpoint must be in the chain.
	ancestor := tip.Ancestor(node.Height)
	if ancestor == nil || !ancestor.Hash.IsEqual(node.Hash) {
		return false
	}

	return isCandidate(node, tip.Ancestor(node.Height+1), tip, table.Last().Height, confirmations)
}

// isCandidate applies the candidate rules to a node of the chain ending at
// tip. child is the node's successor on that chain.
func isCandidate(node, child, tip *blocknode.Node, lastCheckpointHeight, confirmations uint64) bool {
	if node.Height <= lastCheckpointHeight {
		return false
	}

	if tip.Height-node.Height < confirmations {
		return false
	}

	return hasOrderedTimestamps(node, child)
}

// hasOrderedTimestamps returns whether node has both a parent and a child
// and its timestamp falls strictly between theirs.
func hasOrderedTimestamps(node, child *blocknode.Node) bool {
	parent := node.Parent
	if parent == nil || child == nil {
		return false
	}
	return parent.Timestamp < node.Timestamp && node.Timestamp < child.Timestamp
}

// FindCandidates walks the chain back from tip and returns up to max
// checkpoint candidates, highest first. See IsCandidate for the rules a
// candidate must satisfy.
func FindCandidates(tip *blocknode.Node, table *Table, confirmations uint64, max int) []*blocknode.Node {
	if tip == nil || max <= 0 {
		return nil
	}

	lastHeight := table.Last().Height
	candidates := make([]*blocknode.Node, 0, max)
	var child *blocknode.Node
	for node := tip; node != nil && node.Height > lastHeight; child, node = node, node.Parent {
		if !isCandidate(node, child, tip, lastHeight, confirmations) {
			continue
		}
		candidates = append(candidates, node)
		if len(candidates) == max {
			break
		}
	}
	return candidates
}
