// Package dlx search: Algorithm X over the dancing links network.
package dlx

import (
	"errors"
	"fmt"
)

// searcher encapsulates state during the recursive search.
type searcher struct {
	net   *Network // shared structure, mutated in place
	opts  Options  // search options
	res   *Result  // result collector
	stack []int    // arena indices of the chosen row nodes, one per level
}

// Solve runs Algorithm X over net and returns every exact cover found,
// subject to the options. The search is purely sequential; each solution
// is delivered to the OnSolution hook (if any) at the moment it is found
// and, unless WithCountOnly, collected into Result.Solutions.
//
// Cover and uncover calls are strictly nested and mirrored on every exit
// path — normal exhaustion, solution limit, hook stop, or context
// cancellation — so net is back in its freshly built state when Solve
// returns. A single Solve run owns the network; run concurrent searches
// on independently built networks.
//
// Returns ErrNetworkNil, ErrBadOption, the context error on cancellation,
// or an error propagated from the OnSolution hook. An exhausted search
// with no solutions is a valid outcome, not an error.
func Solve(net *Network, opts ...Option) (*Result, error) {
	// 1. Validate input network.
	if net == nil {
		return nil, ErrNetworkNil
	}

	// 2. Apply options over defaults.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxSolutions < 0 {
		return nil, ErrBadOption
	}
	if o.Choose == nil {
		o.Choose = MinSize
	}

	// 3. Run the recursion from level 0.
	s := &searcher{net: net, opts: o, res: &Result{}}
	err := s.search(0)

	// 4. A hook-requested stop or a reached solution limit is a clean end.
	if errors.Is(err, ErrStopSearch) {
		err = nil
	}

	return s.res, err
}

// search is one level of Algorithm X. Any non-nil return unwinds the
// whole recursion; every frame uncovers what it covered before passing
// the error up, keeping the LIFO discipline intact.
func (s *searcher) search(depth int) error {
	// 1. Cancellation check.
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	if depth > s.res.MaxDepth {
		s.res.MaxDepth = depth
	}

	// 2. Termination: an empty header ring means every primary column is
	// covered exactly once — the stack is a complete solution.
	if s.net.nodes[0].right == 0 {
		return s.emit()
	}

	// 3. Choose a column (heuristic S by default) and cover it.
	h := s.opts.Choose(s.net) + 1
	s.net.cover(h)

	// 4. Try each row in the chosen column, top to bottom.
	var err error
	for i := s.net.nodes[h].down; i != h; i = s.net.nodes[i].down {
		s.stack = append(s.stack, i)
		s.res.Decisions++

		// Cover every other column of the row, left to right.
		for j := s.net.nodes[i].right; j != i; j = s.net.nodes[j].right {
			s.net.coverFrom(j)
		}

		err = s.search(depth + 1)

		// Mirror: uncover right to left, then drop the row choice.
		for j := s.net.nodes[i].left; j != i; j = s.net.nodes[j].left {
			s.net.uncoverFrom(j)
		}
		s.stack = s.stack[:len(s.stack)-1]

		if err != nil {
			break
		}
	}

	// 5. Backtrack: restore the chosen column on every path out.
	s.net.uncover(h)

	return err
}

// emit records the current stack as one solution and applies the hook and
// the solution limit.
func (s *searcher) emit() error {
	s.res.Count++

	var sol Solution
	if !s.opts.CountOnly || s.opts.OnSolution != nil {
		sol = make(Solution, len(s.stack))
		for level, i := range s.stack {
			sol[level] = s.net.row(i)
		}
	}
	if !s.opts.CountOnly {
		s.res.Solutions = append(s.res.Solutions, sol)
	}

	if s.opts.OnSolution != nil {
		if err := s.opts.OnSolution(sol); err != nil {
			if errors.Is(err, ErrStopSearch) {
				return ErrStopSearch
			}

			return fmt.Errorf("dlx: OnSolution hook: %w", err)
		}
	}

	if s.opts.MaxSolutions > 0 && s.res.Count >= s.opts.MaxSolutions {
		return ErrStopSearch
	}

	return nil
}

// coverFrom covers the column owning the entry node at arena index j.
func (n *Network) coverFrom(j int) { n.cover(n.nodes[j].col) }

// uncoverFrom uncovers the column owning the entry node at arena index j.
func (n *Network) uncoverFrom(j int) { n.uncover(n.nodes[j].col) }
