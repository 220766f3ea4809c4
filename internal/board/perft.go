package board

import "golang.org/x/sync/errgroup"

// Perft counts the leaf nodes of the legal move tree to the given
// depth. It is the standard cross-check for move generation.
func Perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		p.MakeMove(moves.Get(i))
		nodes += Perft(p, depth-1)
		p.UnmakeMove()
	}
	return nodes
}

// PerftParallel splits the root moves across goroutines, each on its
// own copy of the position, and sums the subtotals.
func PerftParallel(p *Position, depth int) int64 {
	if depth <= 1 {
		return Perft(p, depth)
	}

	moves := p.GenerateLegalMoves()
	subtotals := make([]int64, moves.Len())

	var g errgroup.Group
	for i := 0; i < moves.Len(); i++ {
		i := i
		child := p.Copy()
		child.MakeMove(moves.Get(i))
		g.Go(func() error {
			subtotals[i] = Perft(child, depth-1)
			return nil
		})
	}
	g.Wait()

	var nodes int64
	for _, n := range subtotals {
		nodes += n
	}
	return nodes
}
