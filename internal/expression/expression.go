// Package expression parses SPDX license expressions. The grammar
// covers atomic identifiers, the "+" (or-later) suffix, the
// case-sensitive operators AND, OR and WITH, and parenthesization.
package expression

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reuselint/reuselint/internal/catalog"
)

// Result is the outcome of validating one expression. A malformed
// expression yields Parsed=false and a reason in Err; Validate never
// returns an error or panics.
type Result struct {
	Expression string
	Parsed     bool
	IsCompound bool
	Atoms      []string // sorted unique identifiers, exception ids included
	Unknown    []string // atoms not in the catalog and not LicenseRef-
	Deprecated []string // atoms the catalog flags as deprecated
	Err        string
}

// Validator checks expressions against an identifier catalog. The
// catalog decides which atoms are known and which are deprecated;
// LicenseRef- identifiers are accepted unconditionally.
type Validator struct {
	cat *catalog.Catalog
}

// NewValidator builds a Validator over cat.
func NewValidator(cat *catalog.Catalog) *Validator {
	return &Validator{cat: cat}
}

// Catalog returns the catalog the validator classifies against.
func (v *Validator) Catalog() *catalog.Catalog {
	return v.cat
}

// Validate parses expr and classifies its atoms. Identifier matching is
// exact: "GPL-3.0" never aliases to "GPL-3.0-only".
func (v *Validator) Validate(expr string) Result {
	res := Result{Expression: strings.TrimSpace(expr)}
	if res.Expression == "" {
		res.Err = "empty expression"
		return res
	}
	toks, err := tokenize(res.Expression)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	p := &parser{toks: toks, atoms: make(map[string]struct{})}
	if err := p.parseExpression(); err != nil {
		res.Err = err.Error()
		return res
	}
	if p.pos != len(p.toks) {
		res.Err = fmt.Sprintf("unexpected %q after expression", p.toks[p.pos].text)
		return res
	}

	res.Parsed = true
	res.IsCompound = p.operators > 0
	for atom := range p.atoms {
		res.Atoms = append(res.Atoms, atom)
		switch {
		case catalog.IsLicenseRef(atom):
			// Accepted without a catalog entry.
		case v.known(atom):
			if v.deprecated(atom) {
				res.Deprecated = append(res.Deprecated, atom)
			}
		default:
			res.Unknown = append(res.Unknown, atom)
		}
	}
	sort.Strings(res.Atoms)
	sort.Strings(res.Unknown)
	sort.Strings(res.Deprecated)
	return res
}

func (v *Validator) known(atom string) bool {
	if _, ok := v.cat.License(atom); ok {
		return true
	}
	_, ok := v.cat.Exception(atom)
	return ok
}

func (v *Validator) deprecated(atom string) bool {
	if e, ok := v.cat.License(atom); ok && e.Deprecated {
		return true
	}
	e, ok := v.cat.Exception(atom)
	return ok && e.Deprecated
}

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokAnd
	tokOr
	tokWith
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

func isIdentRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '.':
		return true
	}
	return false
}

func tokenize(expr string) ([]token, error) {
	var toks []token
	runes := []rune(expr)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t':
			i++
		case r == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case r == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case isIdentRune(r):
			start := i
			for i < len(runes) && isIdentRune(runes[i]) {
				i++
			}
			// "+" binds to the identifier it follows.
			if i < len(runes) && runes[i] == '+' {
				i++
			}
			text := string(runes[start:i])
			switch text {
			case "AND":
				toks = append(toks, token{tokAnd, text})
			case "OR":
				toks = append(toks, token{tokOr, text})
			case "WITH":
				toks = append(toks, token{tokWith, text})
			default:
				toks = append(toks, token{tokIdent, text})
			}
		default:
			return nil, fmt.Errorf("unexpected character %q", r)
		}
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty expression")
	}
	return toks, nil
}

// parser implements the grammar
//
//	expression := and-expr ( "OR" and-expr )*
//	and-expr   := operand ( "AND" operand )*
//	operand    := "(" expression ")" | ident ( "WITH" ident )?
//
// where WITH may only follow a plain identifier, per the SPDX rule that
// its left side is a simple expression.
type parser struct {
	toks      []token
	pos       int
	operators int
	atoms     map[string]struct{}
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *parser) parseExpression() error {
	if err := p.parseAnd(); err != nil {
		return err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOr {
			return nil
		}
		p.pos++
		p.operators++
		if err := p.parseAnd(); err != nil {
			return err
		}
	}
}

func (p *parser) parseAnd() error {
	if err := p.parseOperand(); err != nil {
		return err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokAnd {
			return nil
		}
		p.pos++
		p.operators++
		if err := p.parseOperand(); err != nil {
			return err
		}
	}
}

func (p *parser) parseOperand() error {
	t, ok := p.next()
	if !ok {
		return fmt.Errorf("unexpected end of expression")
	}
	switch t.kind {
	case tokLParen:
		if err := p.parseExpression(); err != nil {
			return err
		}
		closing, ok := p.next()
		if !ok {
			return fmt.Errorf("missing closing parenthesis")
		}
		if closing.kind != tokRParen {
			return fmt.Errorf("unexpected %q, expected closing parenthesis", closing.text)
		}
		if after, ok := p.peek(); ok && after.kind == tokWith {
			return fmt.Errorf("WITH must follow a license identifier, not a group")
		}
		return nil
	case tokIdent:
		p.atoms[t.text] = struct{}{}
		if after, ok := p.peek(); ok && after.kind == tokWith {
			p.pos++
			p.operators++
			exc, ok := p.next()
			if !ok {
				return fmt.Errorf("missing exception identifier after WITH")
			}
			if exc.kind != tokIdent {
				return fmt.Errorf("unexpected %q after WITH, expected an exception identifier", exc.text)
			}
			p.atoms[exc.text] = struct{}{}
		}
		return nil
	default:
		return fmt.Errorf("unexpected %q, expected a license identifier", t.text)
	}
}
