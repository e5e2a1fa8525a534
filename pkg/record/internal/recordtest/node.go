// Package recordtest holds record fixtures that have to live in a package of
// their own.
package recordtest

import "github.com/leapstack-labs/dbtgooddata/pkg/record"

// Node has the same unqualified name as a record_test fixture.
type Node struct {
	Label string
}

func (n *Node) Fields() []record.Field {
	return []record.Field{
		record.String("label", &n.Label),
	}
}
