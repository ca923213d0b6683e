package bot

import "ctchen222/tictactoe/internal/game"

// NoMove is returned when a node has no children to choose from.
const NoMove = -1

// Heuristic names the rule that produced a move.
type Heuristic string

const (
	HeuristicWin    Heuristic = "win"
	HeuristicBlock  Heuristic = "block"
	HeuristicSearch Heuristic = "dfs"
	HeuristicNone   Heuristic = "none"
)

// ChooseBestMove picks a move for the node's player to move from its children.
// It wins if it can, blocks if it must, otherwise falls back to DepthFirstSearch.
func ChooseBestMove(node *DecisionNode) int {
	move, _ := chooseBestMove(node)
	return move
}

func chooseBestMove(node *DecisionNode) (int, Heuristic) {
	currentPlayer := node.PlayerToMove
	opponent := currentPlayer.Opponent()

	// 1. Win: a child that completes a line for the player to move
	for _, child := range node.Children {
		if isWinningMove(child.Board, currentPlayer) {
			return child.Move, HeuristicWin
		}
	}

	// 2. Block: a child taking the cell the opponent needs to complete a line
	for _, child := range node.Children {
		if blocksWin(child, opponent) {
			return child.Move, HeuristicBlock
		}
	}

	// 3. Search: first move the traversal bottoms out on
	move := DepthFirstSearch(node, currentPlayer)
	if move == NoMove {
		return NoMove, HeuristicNone
	}
	return move, HeuristicSearch
}

// DepthFirstSearch returns the first move found by recursing into children in
// generation order. Terminal children answer NoMove and are skipped, and a node
// whose children are all terminal answers with its first child's move. The
// result is therefore a cell played deep in the first line of play, which is
// still free on node's board. currentPlayer does not influence the traversal.
func DepthFirstSearch(node *DecisionNode, currentPlayer game.Cell) int {
	for _, child := range node.Children {
		if result := DepthFirstSearch(child, currentPlayer); result != NoMove {
			return result
		}
	}

	if len(node.Children) > 0 {
		return node.Children[0].Move
	}
	return NoMove
}

func isWinningMove(board game.Board, player game.Cell) bool {
	return game.CheckWinner(board) == player
}

// blocksWin reports whether the opponent would have won by playing the child's cell.
func blocksWin(child *DecisionNode, opponent game.Cell) bool {
	board := child.Board
	game.ApplyMove(&board, child.Move, opponent)
	return isWinningMove(board, opponent)
}
