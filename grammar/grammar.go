// Package grammar loads parser grammars from YAML and compiles them into
// combinator trees from the match package.
//
// A grammar file names a set of rules and the rule to start from:
//
//	start: greeting
//	rules:
//	  greeting:
//	    seq:
//	      - lit: hello
//	      - ref: name
//	  name:
//	    pat: '^\w+'
//
// Each rule body is a node holding exactly one combinator key: lit, pat,
// seq, any, first, last, replace, memo, or ref. Rules may refer to each
// other, including mutually, through ref.
package grammar

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/zostay/parsnip/match"
	"github.com/zostay/parsnip/parse"
)

// Grammar is a set of named rules loaded from YAML, plus the name of the
// rule a whole-grammar parse starts from.
type Grammar struct {
	Rules map[string]*node `yaml:"rules"`
	Start string           `yaml:"start"`

	built map[string]parse.Parser
}

// node is one combinator expression in a rule body. Exactly one field may be
// set.
type node struct {
	Lit     *string      `yaml:"lit"`
	Pat     *string      `yaml:"pat"`
	Seq     []*node      `yaml:"seq"`
	Any     []*node      `yaml:"any"`
	First   []*node      `yaml:"first"`
	Last    []*node      `yaml:"last"`
	Replace *replaceNode `yaml:"replace"`
	Memo    *node        `yaml:"memo"`
	Ref     *string      `yaml:"ref"`
}

// replaceNode is the body of a replace expression.
type replaceNode struct {
	Of   *node  `yaml:"of"`
	With string `yaml:"with"`
}

// Load reads and decodes a grammar from the given reader. Unknown keys are
// an error so a misspelled combinator name fails here rather than silently
// matching nothing.
func Load(r io.Reader) (*Grammar, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	g := &Grammar{}
	if err := dec.Decode(g); err != nil {
		return nil, fmt.Errorf("decode grammar: %w", err)
	}

	if len(g.Rules) == 0 {
		return nil, errors.New("grammar defines no rules")
	}

	return g, nil
}

// Parse decodes a grammar from bytes.
func Parse(data []byte) (*Grammar, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile reads and decodes a grammar from the named file.
func LoadFile(name string) (*Grammar, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return g, nil
}

// Build compiles the grammar and returns the parser for its start rule.
func (g *Grammar) Build() (parse.Parser, error) {
	if g.Start == "" {
		return nil, errors.New("grammar names no start rule")
	}
	return g.Rule(g.Start)
}

// Rule compiles the grammar, if it has not been already, and returns the
// parser for the named rule. Every rule is compiled once and memoized;
// repeated calls return the same parser values, sharing their caches.
func (g *Grammar) Rule(name string) (parse.Parser, error) {
	if err := g.compileAll(); err != nil {
		return nil, err
	}

	p, ok := g.built[name]
	if !ok {
		return nil, fmt.Errorf("grammar has no rule %q", name)
	}
	return p, nil
}

func (g *Grammar) compileAll() error {
	if g.built != nil {
		return nil
	}

	g.built = make(map[string]parse.Parser, len(g.Rules))
	for name, n := range g.Rules {
		p, err := g.compile(n)
		if err != nil {
			return fmt.Errorf("rule %q: %w", name, err)
		}
		g.built[name] = match.Memo(p)
	}

	return nil
}

// compile turns one node into a parser. References resolve lazily, at parse
// time, so rules may refer to rules compiled after them and to themselves.
func (g *Grammar) compile(n *node) (parse.Parser, error) {
	if n == nil {
		return nil, errors.New("empty expression")
	}
	if err := n.checkOne(); err != nil {
		return nil, err
	}

	switch {
	case n.Lit != nil:
		return match.Literal(*n.Lit), nil

	case n.Pat != nil:
		re, err := regexp.Compile(*n.Pat)
		if err != nil {
			return nil, fmt.Errorf("pat: %w", err)
		}
		return match.Pattern(re), nil

	case n.Seq != nil:
		ps, err := g.compileList("seq", n.Seq)
		if err != nil {
			return nil, err
		}
		return match.Seq(ps...), nil

	case n.Any != nil:
		ps, err := g.compileList("any", n.Any)
		if err != nil {
			return nil, err
		}
		return match.Any(ps...), nil

	case n.First != nil:
		ps, err := g.compileList("first", n.First)
		if err != nil {
			return nil, err
		}
		return match.KeepFirst(ps...), nil

	case n.Last != nil:
		ps, err := g.compileList("last", n.Last)
		if err != nil {
			return nil, err
		}
		return match.KeepLast(ps...), nil

	case n.Replace != nil:
		p, err := g.compile(n.Replace.Of)
		if err != nil {
			return nil, fmt.Errorf("replace: %w", err)
		}
		return match.Replace(p, n.Replace.With), nil

	case n.Memo != nil:
		p, err := g.compile(n.Memo)
		if err != nil {
			return nil, fmt.Errorf("memo: %w", err)
		}
		return match.Memo(p), nil

	case n.Ref != nil:
		name := *n.Ref
		if _, ok := g.Rules[name]; !ok {
			return nil, fmt.Errorf("reference to unknown rule %q", name)
		}
		// g.built is fully populated before any parser runs, so the
		// lookup may be deferred until parse time. This is what allows
		// rules to be mutually recursive.
		return parse.ParserFunc(func(in string) parse.Result {
			return g.built[name].Parse(in)
		}), nil
	}

	return nil, errors.New("expression has no combinator")
}

func (g *Grammar) compileList(kind string, ns []*node) ([]parse.Parser, error) {
	if len(ns) == 0 {
		return nil, fmt.Errorf("%s: needs at least one expression", kind)
	}

	ps := make([]parse.Parser, len(ns))
	for i, n := range ns {
		p, err := g.compile(n)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", kind, i, err)
		}
		ps[i] = p
	}

	return ps, nil
}

// checkOne verifies that exactly one combinator key is set on the node.
func (n *node) checkOne() error {
	count := 0
	for _, set := range []bool{
		n.Lit != nil,
		n.Pat != nil,
		n.Seq != nil,
		n.Any != nil,
		n.First != nil,
		n.Last != nil,
		n.Replace != nil,
		n.Memo != nil,
		n.Ref != nil,
	} {
		if set {
			count++
		}
	}

	switch count {
	case 0:
		return errors.New("expression has no combinator")
	case 1:
		return nil
	default:
		return errors.New("expression has more than one combinator")
	}
}
