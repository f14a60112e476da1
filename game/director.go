package game

type Director interface {
	/**
	 * Initialize the director, once the board has been set up
	 */
	Init(*Engine)

	/**
	 * Block until the next move is chosen. io.EOF means no more moves.
	 */
	Next() (Direction, error)
}
