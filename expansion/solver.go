// SPDX-License-Identifier: MIT

package expansion

import (
	"fmt"

	"github.com/katalvlaran/mrfgrid/energy"
	"github.com/katalvlaran/mrfgrid/gridgraph"
)

// Solver runs alpha-expansion on one image. It is not safe for concurrent
// use: every move completes build → solve → apply before the next begins.
type Solver struct {
	im    *gridgraph.Image
	lab   *gridgraph.Labeling
	table *energy.Table
	pool  *LabelPool
	opts  Options
	state State
	pass  int
}

// NewSolver prepares a Solver over the observed image im and the pairwise
// table t. The labeling starts as a copy of im (or of WithInitial).
func NewSolver(im *gridgraph.Image, t *energy.Table, opts ...Option) (*Solver, error) {
	if im == nil || t == nil {
		return nil, ErrNilInput
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	o.Flow.Ctx = o.Ctx

	lab := gridgraph.NewLabeling(im)
	if o.Initial != nil {
		if err := im.Shape.Check(o.Initial.Shape); err != nil {
			return nil, fmt.Errorf("expansion: initial labeling: %w", err)
		}
		lab = o.Initial.Clone()
	}

	return &Solver{
		im:    im,
		lab:   lab,
		table: t,
		pool:  NewLabelPool(o.Rand),
		opts:  o,
		state: StatePassStart,
	}, nil
}

// Labeling returns the live labeling. Callers must not mutate it while
// the Solver is in use.
func (s *Solver) Labeling() *gridgraph.Labeling {
	return s.lab
}

// State reports the scheduler state.
func (s *Solver) State() State {
	return s.state
}

// Energy returns the total energy of the current labeling.
func (s *Solver) Energy() float64 {
	// shapes agree since NewSolver, the only error Total can return is unreachable
	e, _ := energy.Total(s.im, s.lab, s.table)
	return e
}

// Step performs one expansion move for alpha against the current labeling
// and applies the resulting cut.
func (s *Solver) Step(alpha uint8) (StepStats, error) {
	st := StepStats{Pass: s.pass, Alpha: alpha}
	if err := s.opts.Ctx.Err(); err != nil {
		return st, err
	}

	sg, err := BuildSubgraph(s.im, s.lab, alpha, s.table, s.opts.Policy, s.opts.Flow.Epsilon)
	if err != nil {
		return st, fmt.Errorf("expansion: alpha %d: %w", alpha, err)
	}
	st.Truncated = sg.Truncated

	cut, err := s.opts.Oracle(sg.Graph, s.opts.Flow)
	if err != nil {
		return st, fmt.Errorf("expansion: min-cut for alpha %d: %w", alpha, err)
	}
	if cut == nil || len(cut.SourceSide) != s.lab.Len() {
		return st, fmt.Errorf("%w: alpha %d", ErrOracleResult, alpha)
	}
	st.CutValue = cut.Value

	for i, switched := range cut.SourceSide {
		if switched && s.lab.Label(i) != alpha {
			s.lab.Set(i, alpha)
			st.Changed++
		}
	}
	s.state = StateCutApplied

	if err := s.opts.OnStep(st); err != nil {
		return st, err
	}
	return st, nil
}

// Pass refills the label pool and proposes every label once.
func (s *Solver) Pass() (PassStats, error) {
	s.pass++
	ps := PassStats{Index: s.pass, Proposed: make([]uint8, 0, gridgraph.Levels)}
	log := s.opts.Logger

	s.state = StatePassStart
	s.pool.Reset()
	ps.EnergyBefore = s.Energy()
	log.Info().Int("pass", s.pass).Int("of", s.opts.Passes).Float64("energy", ps.EnergyBefore).Msg("pass started")

	for {
		alpha, ok := s.pool.Next()
		if !ok {
			break
		}
		s.state = StateLabelSelected
		ps.Proposed = append(ps.Proposed, alpha)

		st, err := s.Step(alpha)
		if err != nil {
			return ps, err
		}
		ps.Changed += st.Changed
		ps.Truncated += st.Truncated
		log.Debug().
			Int("pass", s.pass).
			Uint8("alpha", alpha).
			Int("left", s.pool.Remaining()).
			Int("changed", st.Changed).
			Int("truncated", st.Truncated).
			Msg("alpha expansion step")
	}

	ps.EnergyAfter = s.Energy()
	log.Info().
		Int("pass", s.pass).
		Int("changed", ps.Changed).
		Int("truncated", ps.Truncated).
		Float64("energy", ps.EnergyAfter).
		Msg("pass finished")
	return ps, nil
}

// Run executes the configured number of passes (fewer with
// WithStopWhenStable) and returns the final labeling.
func (s *Solver) Run() (*Result, error) {
	res := &Result{}
	for i := 0; i < s.opts.Passes; i++ {
		ps, err := s.Pass()
		if err != nil {
			return nil, err
		}
		res.History = append(res.History, ps)
		res.Passes++
		res.Stable = ps.Changed == 0
		if res.Stable && s.opts.StopWhenStable {
			s.opts.Logger.Info().Int("pass", ps.Index).Msg("no label changed, stopping")
			break
		}
	}
	s.state = StatePassesExhausted
	res.Labeling = s.lab
	res.Energy = s.Energy()
	return res, nil
}

// Restore tabulates params, runs a Solver over im and returns the result.
func Restore(im *gridgraph.Image, params energy.Params, opts ...Option) (*Result, error) {
	t, err := energy.NewTable(params)
	if err != nil {
		return nil, err
	}
	s, err := NewSolver(im, t, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run()
}
