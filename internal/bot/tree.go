package bot

import "ctchen222/tictactoe/internal/game"

// RootMove is the placeholder move carried by the root of a decision tree.
const RootMove = 0

// DecisionNode is one reachable board state. Children are owned by their parent
// and never shared, so a tree can be dropped as a whole once a move is chosen.
type DecisionNode struct {
	Board        game.Board
	Move         int
	PlayerToMove game.Cell
	Children     []*DecisionNode
}

// NewRootNode creates the root of a decision tree for the given board.
func NewRootNode(board game.Board, playerToMove game.Cell) *DecisionNode {
	return &DecisionNode{
		Board:        board,
		Move:         RootMove,
		PlayerToMove: playerToMove,
	}
}

// BuildTree creates a root for board and expands it down to every terminal state.
func BuildTree(board game.Board, playerToMove game.Cell) *DecisionNode {
	root := NewRootNode(board, playerToMove)
	GenerateDecisionTree(root, playerToMove)
	return root
}

// GenerateDecisionTree appends one child per valid move of currentPlayer, in
// ascending cell order, and recurses into every child that is not game over.
func GenerateDecisionTree(node *DecisionNode, currentPlayer game.Cell) {
	node.PlayerToMove = currentPlayer
	nextPlayer := currentPlayer.Opponent()

	for i := game.MinIndex; i <= game.MaxIndex; i++ {
		if !game.IsValidMove(node.Board, i) {
			continue
		}

		board := node.Board
		game.ApplyMove(&board, i, currentPlayer)

		child := &DecisionNode{
			Board:        board,
			Move:         i,
			PlayerToMove: nextPlayer,
		}
		node.Children = append(node.Children, child)

		if !game.IsGameOver(board) {
			GenerateDecisionTree(child, nextPlayer)
		}
	}
}

// IsLeaf reports whether the node has no children.
func (n *DecisionNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Walk visits the node and all of its descendants depth-first, in generation order.
// depth is 0 for the node Walk was called on.
func (n *DecisionNode) Walk(fn func(node *DecisionNode, depth int)) {
	n.walk(fn, 0)
}

func (n *DecisionNode) walk(fn func(node *DecisionNode, depth int), depth int) {
	fn(n, depth)
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Size returns the number of nodes in the tree rooted at n, n included.
func (n *DecisionNode) Size() int {
	size := 0
	n.Walk(func(*DecisionNode, int) { size++ })
	return size
}

// Depth returns the length in plies of the longest path below n.
func (n *DecisionNode) Depth() int {
	deepest := 0
	n.Walk(func(_ *DecisionNode, depth int) {
		if depth > deepest {
			deepest = depth
		}
	})
	return deepest
}
