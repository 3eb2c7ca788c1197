package board

import "errors"

var (
	// ErrMalformedBitboard reports a bitboard that cannot satisfy the caller's
	// precondition: an empty board asked for a square, overlapping piece
	// boards, or a side without its king.
	ErrMalformedBitboard = errors.New("malformed bitboard")

	// ErrInvalidIndex reports a square, file, rank or enum index out of range.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrNotImplemented is returned by collaborators this package does not
	// provide yet (FEN parsing, castling, en passant).
	ErrNotImplemented = errors.New("not implemented")

	// ErrIllegalApply reports a move that does not fit the position it is
	// applied to.
	ErrIllegalApply = errors.New("move does not fit position")
)
