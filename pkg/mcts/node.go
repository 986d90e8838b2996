package mcts

// Search tree node, the outcomes are stored from the perspective of the
// player who made the move leading to this node
type NodeBase[T MoveLike] struct {
	Move     T
	Children []NodeBase[T]
	Parent   *NodeBase[T]
	visits   int32
	outcomes Result
	terminal bool
	expanded bool
}

func newRootNode[T MoveLike](terminal bool) *NodeBase[T] {
	return &NodeBase[T]{terminal: terminal}
}

func NewBaseNode[T MoveLike](parent *NodeBase[T], move T, terminal bool) *NodeBase[T] {
	return &NodeBase[T]{
		Move:     move,
		Parent:   parent,
		terminal: terminal,
	}
}

func (node *NodeBase[T]) Visits() int32 {
	return node.visits
}

func (node *NodeBase[T]) Outcomes() Result {
	return node.outcomes
}

// Average result, NaN for unvisited nodes
func (node *NodeBase[T]) AvgOutcome() Result {
	return node.outcomes / Result(node.visits)
}

func (node *NodeBase[T]) AddOutcome(result Result) {
	node.visits++
	node.outcomes += result
}

func (node *NodeBase[T]) Terminal() bool {
	return node.terminal
}

// Same as asking if the node has children (terminal nodes never get them)
func (node *NodeBase[T]) Expanded() bool {
	return node.expanded
}

func countTreeNodes[T MoveLike](node *NodeBase[T]) int {
	nodes := 1
	for i := range node.Children {
		nodes += countTreeNodes(&node.Children[i])
	}
	return nodes
}
