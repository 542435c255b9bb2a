// Package laws cross-checks the unsigned engine against native integer
// arithmetic and algebraic laws using a Datalog program.
//
// Engine results for every operand pair in 0..MaxValue are computed
// concurrently, asserted as facts, and the rules in laws.mg derive a
// violation(Law, A, B) fact for every disagreement.
package laws

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Aleod-m/typers/internal/logging"
	"github.com/Aleod-m/typers/internal/mangle"
	"github.com/Aleod-m/typers/pkg/unsigned"
)

//go:embed laws.mg
var program string

// ErrUnknownLaw is returned when a law filter names no rule.
var ErrUnknownLaw = errors.New("unknown law")

var knownLaws = []string{
	"add_associative",
	"add_commutative",
	"add_identity",
	"add_native",
	"dec_defined",
	"dec_inc_roundtrip",
	"dec_native",
	"dec_zero_poison",
	"inc_dec_roundtrip",
	"inc_native",
	"mul_associative",
	"mul_commutative",
	"mul_identity",
	"mul_native",
	"mul_zero",
	"shl_native",
	"shr_native",
	"sub_native",
	"sub_self",
}

// Laws returns the names of all checked laws, sorted.
func Laws() []string {
	return append([]string(nil), knownLaws...)
}

// Program returns the Datalog source of the law rules.
func Program() string {
	return program
}

// Options configures a check run.
type Options struct {
	MaxValue int
	Workers  int
	Laws     []string // empty = all
	Timeout  time.Duration
}

// Violation is a derived violation fact.
type Violation struct {
	Law string `json:"law"`
	A   int64  `json:"a"`
	B   int64  `json:"b"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s(%d, %d)", v.Law, v.A, v.B)
}

// Report is the outcome of one check run.
type Report struct {
	ID         string         `json:"id"`
	MaxValue   int            `json:"max_value"`
	Facts      int            `json:"facts"`
	Laws       []string       `json:"laws"`
	Violations []Violation    `json:"violations"`
	Counts     map[string]int `json:"counts"`
	Duration   time.Duration  `json:"duration"`
}

// OK reports whether the run found no violations.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Checker runs law checks.
type Checker struct {
	opts Options
	laws map[string]bool
}

// NewChecker validates opts and returns a Checker.
func NewChecker(opts Options) (*Checker, error) {
	if opts.MaxValue < 1 {
		return nil, fmt.Errorf("max value must be >= 1, got %d", opts.MaxValue)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	selected := make(map[string]bool, len(knownLaws))
	if len(opts.Laws) == 0 {
		for _, l := range knownLaws {
			selected[l] = true
		}
	}
	for _, l := range opts.Laws {
		l = strings.TrimPrefix(l, "/")
		idx := sort.SearchStrings(knownLaws, l)
		if idx == len(knownLaws) || knownLaws[idx] != l {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLaw, l)
		}
		selected[l] = true
	}
	return &Checker{opts: opts, laws: selected}, nil
}

// Run computes the engine facts, evaluates the rules, and collects
// violations of the selected laws.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	id := uuid.NewString()
	log := logging.WithRequestID(logging.CategoryCheck, id).With("max", c.opts.MaxValue)
	start := time.Now()

	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	rows, err := c.generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate facts: %w", err)
	}

	engine := mangle.NewEngine(mangle.Config{})
	if err := engine.LoadSchemaString(program); err != nil {
		return nil, err
	}
	facts := 0
	for _, row := range rows {
		if err := engine.AddFacts(row); err != nil {
			return nil, err
		}
		facts += len(row)
	}
	log.Debug("asserted %d facts", facts)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	elapsed, err := engine.Evaluate()
	if err != nil {
		return nil, err
	}
	log.Debug("rules evaluated in %v", elapsed)

	derived, err := engine.GetFacts("violation")
	if err != nil {
		return nil, err
	}

	report := &Report{
		ID:         id,
		MaxValue:   c.opts.MaxValue,
		Facts:      facts,
		Violations: []Violation{},
		Counts:     engine.Stats().PredicateCounts,
	}
	for _, l := range knownLaws {
		if c.laws[l] {
			report.Laws = append(report.Laws, l)
		}
	}
	for _, f := range derived {
		v, err := toViolation(f)
		if err != nil {
			return nil, err
		}
		if c.laws[v.Law] {
			report.Violations = append(report.Violations, v)
		}
	}
	report.Duration = time.Since(start)

	if report.OK() {
		log.Info("all %d laws hold up to %d", len(report.Laws), c.opts.MaxValue)
	} else {
		log.Warn("%d violations", len(report.Violations))
	}
	return report, nil
}

// generate computes one row of facts per left operand over a bounded
// worker group.
func (c *Checker) generate(ctx context.Context) ([][]mangle.Fact, error) {
	n := c.opts.MaxValue
	rows := make([][]mangle.Fact, n+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)
	for a := 0; a <= n; a++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := operandFacts(a, n)
			if err != nil {
				return fmt.Errorf("operand %d: %w", a, err)
			}
			rows[a] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func operandFacts(a, n int) ([]mangle.Fact, error) {
	ua := unsigned.FromUint64(uint64(a))
	facts := make([]mangle.Fact, 0, 3*(n+1)+8)
	add := func(pred string, args ...any) {
		facts = append(facts, mangle.Fact{Predicate: pred, Args: args})
	}
	var firstErr error
	// Results stay uint64; the engine rejects anything past MaxInt64.
	value := func(u unsigned.Unsigned) uint64 {
		v, err := unsigned.Uint64(u)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return v
	}

	add("num", a)
	succ := unsigned.Inc(ua)
	add("succ", a, value(succ))
	add("shl", a, value(unsigned.Bsl(ua)))
	add("shr", a, value(unsigned.Bsr(ua)))

	back, err := unsigned.Dec(succ)
	if err != nil {
		return nil, fmt.Errorf("dec after inc: %w", err)
	}
	add("incdec", a, value(unsigned.Canonicalize(back)))

	if pred, err := unsigned.Dec(ua); err != nil {
		if !errors.Is(err, unsigned.ErrPoison) {
			return nil, err
		}
		add("poisoned", "/dec", a)
	} else {
		add("pred", a, value(pred))
		add("decinc", a, value(unsigned.Canonicalize(unsigned.Inc(pred))))
	}

	for b := 0; b <= n; b++ {
		ub := unsigned.FromUint64(uint64(b))
		add("sum", a, b, value(unsigned.Add(ua, ub)))
		add("product", a, b, value(unsigned.Mul(ua, ub)))
		if a >= b {
			add("diff", a, b, value(unsigned.Sub(ua, ub)))
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return facts, nil
}

func toViolation(f mangle.Fact) (Violation, error) {
	if len(f.Args) != 3 {
		return Violation{}, fmt.Errorf("malformed violation fact %s", f)
	}
	law, ok1 := f.Args[0].(string)
	a, ok2 := f.Args[1].(int64)
	b, ok3 := f.Args[2].(int64)
	if !ok1 || !ok2 || !ok3 {
		return Violation{}, fmt.Errorf("malformed violation fact %s", f)
	}
	return Violation{Law: strings.TrimPrefix(law, "/"), A: a, B: b}, nil
}
