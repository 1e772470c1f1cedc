package search

import "github.com/katalvlaran/sokolve/level"

// bucketTable is a growable hash map from Node to TreeNode, chaining on
// Key() collisions (§4.10): distinct Nodes that happen to hash alike
// both live in the same bucket, disambiguated by Node.Equal.
type bucketTable struct {
	buckets map[uint64][]*TreeNode
}

func newBucketTable() *bucketTable {
	return &bucketTable{buckets: make(map[uint64][]*TreeNode)}
}

func (b *bucketTable) find(n *level.Node) *TreeNode {
	for _, tn := range b.buckets[n.Key()] {
		if tn.State.Equal(n) {
			return tn
		}
	}
	return nil
}

func (b *bucketTable) insert(tn *TreeNode) {
	k := tn.State.Key()
	b.buckets[k] = append(b.buckets[k], tn)
}

func (b *bucketTable) remove(tn *TreeNode) {
	k := tn.State.Key()
	chain := b.buckets[k]
	for i, c := range chain {
		if c == tn {
			chain[i] = chain[len(chain)-1]
			b.buckets[k] = chain[:len(chain)-1]
			return
		}
	}
}
