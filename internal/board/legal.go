package board

// IsMoveLegal plays m on a copy and reports whether the mover's king is
// safe afterwards.
func (p *Position) IsMoveLegal(m Move) (bool, error) {
	us := p.SideToMove
	next := p.Copy()
	if _, err := next.DoMove(m); err != nil {
		return false, err
	}

	ksq, err := next.kingSquare(us)
	if err != nil {
		return false, err
	}
	return !next.IsSquareAttacked(ksq, us.Other()), nil
}
