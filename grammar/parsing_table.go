package grammar

import "fmt"

type ActionType string

const (
	ActionTypeShift  = ActionType("shift")
	ActionTypeReduce = ActionType("reduce")
	ActionTypeAccept = ActionType("accept")
)

// Action is one ACTION table cell: Shift(NextState), Reduce(Prod), or
// Accept.
type Action struct {
	Type      ActionType
	NextState int
	Prod      *Production
}

func (a *Action) equals(b *Action) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ActionTypeShift:
		return a.NextState == b.NextState
	case ActionTypeReduce:
		return a.Prod.equals(b.Prod)
	}
	return true
}

func (a *Action) String() string {
	switch a.Type {
	case ActionTypeShift:
		return fmt.Sprintf("shift %v", a.NextState)
	case ActionTypeReduce:
		return fmt.Sprintf("reduce %v", a.Prod)
	}
	return "accept"
}

// Conflict is a table conflict captured during construction. Conflicts are
// recorded, never fatal; the first-written cell entry is retained so the
// table stays inspectable.
type Conflict interface {
	conflict()
	Description() string
}

type ShiftReduceConflict struct {
	State  int
	Symbol Symbol
}

func (c *ShiftReduceConflict) conflict() {
}

func (c *ShiftReduceConflict) Description() string {
	return fmt.Sprintf("Shift/Reduce in state %v on %v", c.State, c.Symbol)
}

type ReduceReduceConflict struct {
	State  int
	Symbol Symbol
}

func (c *ReduceReduceConflict) conflict() {
}

func (c *ReduceReduceConflict) Description() string {
	return fmt.Sprintf("Reduce/Reduce in state %v on %v", c.State, c.Symbol)
}

var (
	_ Conflict = &ShiftReduceConflict{}
	_ Conflict = &ReduceReduceConflict{}
)

type tableKey struct {
	state int
	sym   Symbol
}

// ParsingTable is a finalized LALR(1) ACTION/GOTO table. Cells are sparse
// mappings keyed by (state, symbol); an absent ACTION cell is a syntax
// error, an absent GOTO cell a reject. The table is read-only after
// construction and safe to share across concurrent parses.
type ParsingTable struct {
	InitialState int

	action     map[tableKey]*Action
	goTo       map[tableKey]int
	stateCount int
	conflicts  []Conflict
}

// Action looks up the ACTION cell for a state and a terminal.
func (t *ParsingTable) Action(state int, sym Symbol) (*Action, bool) {
	act, ok := t.action[tableKey{state: state, sym: sym}]
	return act, ok
}

// GoTo looks up the GOTO cell for a state and a non-terminal.
func (t *ParsingTable) GoTo(state int, sym Symbol) (int, bool) {
	next, ok := t.goTo[tableKey{state: state, sym: sym}]
	return next, ok
}

func (t *ParsingTable) StateCount() int {
	return t.stateCount
}

// Conflicts returns the conflicts recorded while the table was filled.
// Callers wanting a strict grammar should reject when it is non-empty.
func (t *ParsingTable) Conflicts() []Conflict {
	return t.conflicts
}

type lrTableBuilder struct {
	automaton *lalr1Automaton
	ptab      *ParsingTable
}

func (b *lrTableBuilder) build() *ParsingTable {
	b.ptab = &ParsingTable{
		action:     map[tableKey]*Action{},
		goTo:       map[tableKey]int{},
		stateCount: len(b.automaton.states),
	}

	for _, state := range b.automaton.states {
		for _, sym := range sortedTransitionSymbols(b.automaton.transitions[state.num]) {
			next := b.automaton.transitions[state.num][sym]
			if sym.IsTerminal() {
				b.writeAction(state.num, sym, &Action{
					Type:      ActionTypeShift,
					NextState: next,
				})
			} else {
				b.ptab.goTo[tableKey{state: state.num, sym: sym}] = next
			}
		}

		for _, item := range state.items.sortedItems() {
			if !item.reducible() {
				continue
			}
			if item.prod.equals(b.automaton.augProd) {
				// The accept item is [S' → S ・, $].
				if _, ok := item.lookaheads[SymbolEOF]; ok {
					b.writeAction(state.num, SymbolEOF, &Action{
						Type: ActionTypeAccept,
					})
				}
				continue
			}
			for _, sym := range item.sortedLookaheads() {
				b.writeAction(state.num, sym, &Action{
					Type: ActionTypeReduce,
					Prod: item.prod,
				})
			}
		}
	}

	if len(b.ptab.conflicts) > 0 {
		tracer().Infof("parsing table has %d conflicts", len(b.ptab.conflicts))
	}

	return b.ptab
}

// writeAction installs an ACTION cell. When the cell is already occupied by a
// different action, the existing entry wins and a conflict is recorded.
func (b *lrTableBuilder) writeAction(state int, sym Symbol, act *Action) {
	key := tableKey{state: state, sym: sym}
	existing, ok := b.ptab.action[key]
	if !ok {
		b.ptab.action[key] = act
		return
	}
	if existing.equals(act) {
		return
	}
	if existing.Type == ActionTypeReduce && act.Type == ActionTypeReduce {
		b.ptab.conflicts = append(b.ptab.conflicts, &ReduceReduceConflict{
			State:  state,
			Symbol: sym,
		})
		return
	}
	b.ptab.conflicts = append(b.ptab.conflicts, &ShiftReduceConflict{
		State:  state,
		Symbol: sym,
	})
}

func sortedTransitionSymbols(edges map[Symbol]int) []Symbol {
	syms := make([]Symbol, 0, len(edges))
	for sym := range edges {
		syms = append(syms, sym)
	}
	sortSymbols(syms)
	return syms
}

// GenParsingTable compiles a grammar into its LALR(1) parsing table:
// FIRST-set analysis, the canonical LR(1) collection, the core merge, and
// the ACTION/GOTO fill. Conflicts never fail the build; consult
// ParsingTable.Conflicts before trusting the table.
func GenParsingTable(g *Grammar) (*ParsingTable, error) {
	fst, err := genFirstSet(g)
	if err != nil {
		return nil, err
	}
	lr1, err := genLR1Automaton(g, fst)
	if err != nil {
		return nil, err
	}
	lalr := genLALR1Automaton(lr1)
	b := &lrTableBuilder{
		automaton: lalr,
	}
	ptab := b.build()
	ptab.InitialState = 0
	return ptab, nil
}
