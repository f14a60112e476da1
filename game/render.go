package game

import (
	"fmt"
	"io"
)

// Renderer writes the console messages for each move
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (renderer *Renderer) Spoiler(pos Position) {
	fmt.Fprintf(renderer.out, "Spoiler: Added mine at (%d,%d)\n", pos.X, pos.Y)
}

func (renderer *Renderer) Render(result MoveResult) {
	pos := result.Position

	switch result.Outcome {
	case RejectedNotSetup:
		fmt.Fprintln(renderer.out, "The board has not been set up.")
	case RejectedGameOver:
		fmt.Fprintln(renderer.out, "The game is over.")
	case RejectedOffGrid:
		fmt.Fprintf(renderer.out, "Unable to move off grid! Current position (%d, %d)\n", pos.X, pos.Y)
	case GameWon:
		fmt.Fprintf(renderer.out, "Congratulations you reached the end of the grid in %d moves! You had %d %s left.\n",
			result.Moves, result.Lives, livesWord(result.Lives))
	default:
		fmt.Fprintf(renderer.out, "Pressed %s Current position (%d, %d) - Lives %d - Moves %d\n",
			result.Direction.Arrow(), pos.X, pos.Y, result.Lives, result.Moves)

		const hitMessage = "Oops you hit a mine and lost a life!"
		switch result.Outcome {
		case LostLife:
			fmt.Fprintf(renderer.out, "%s Remaining lives: %d\n", hitMessage, result.Lives)
		case GameLost:
			fmt.Fprintln(renderer.out, hitMessage)
			fmt.Fprintln(renderer.out, "GAME OVER!")
		}
	}
}

func livesWord(lives int) string {
	if lives > 1 {
		return "lives"
	}
	return "life"
}
