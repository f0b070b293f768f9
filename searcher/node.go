package searcher

import (
	"math"

	"shobu/game"
)

const noParent = -1

type node struct {
	state    game.State
	move     game.Move // Move from the parent's state
	parent   int
	visits   int
	rewards  float64
	children []int
	expanded bool // Children have been materialised
}

// Tree is an arena of search nodes. Parents are referenced by index so the
// whole tree is dropped with the slice.
type Tree struct {
	nodes []node
}

func newTree(root game.State) *Tree {
	return &Tree{nodes: []node{{state: root, parent: noParent}}}
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// expand materialises one child per legal move of node i.
func (t *Tree) expand(i int, rules game.Rules) {
	if t.nodes[i].expanded {
		return
	}
	state := t.nodes[i].state
	moves := rules.LegalMoves(state)
	children := make([]int, 0, len(moves))
	for _, m := range moves {
		children = append(children, len(t.nodes))
		t.nodes = append(t.nodes, node{
			state:  rules.Result(state, m),
			move:   m,
			parent: i,
		})
	}
	t.nodes[i].children = children
	t.nodes[i].expanded = true
}

// score is the UCB1 value of node i seen from its parent.
func (t *Tree) score(i int, c2 float64) float64 {
	n := t.nodes[i]
	return ucb1(n.rewards, n.visits, c2*math.Log(float64(t.nodes[n.parent].visits)))
}

// ChildVisits returns the visit count of every root child in legal move order.
func (t *Tree) ChildVisits() []int {
	root := t.nodes[0]
	visits := make([]int, len(root.children))
	for k, c := range root.children {
		visits[k] = t.nodes[c].visits
	}
	return visits
}

// ChildMoves returns the moves leading to the root children, parallel to
// ChildVisits.
func (t *Tree) ChildMoves() []game.Move {
	root := t.nodes[0]
	moves := make([]game.Move, len(root.children))
	for k, c := range root.children {
		moves[k] = t.nodes[c].move
	}
	return moves
}

func (t *Tree) RootVisits() int {
	return t.nodes[0].visits
}
