// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package doctype

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrSyntax is wrapped by every error returned from [Parse].
var ErrSyntax = errors.New("invalid documentation type")

// SyntaxError describes where a documentation type expression could not be parsed.
type SyntaxError struct {
	Expr   string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d in %q", e.Msg, e.Offset, e.Expr)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Parse classifies a documentation type expression, like the type part of a "@param" tag.
//
// Parse only distinguishes the shapes of this package; nested type arguments and array shapes are
// checked for balance, but not interpreted. Class names are resolved with the given [NameResolver],
// which may be nil for expressions using only fully qualified names.
func Parse(expr string, names NameResolver) (Type, error) {
	p := parser{expr: expr, tokens: lex(expr), names: names}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if p.pos < len(p.tokens) {
		return nil, p.errorf("unexpected %q", p.tokens[p.pos].text)
	}

	return t, nil
}

type parser struct {
	expr   string
	tokens []token
	pos    int
	names  NameResolver
}

// parseType parses a union or intersection of atoms.
func (p *parser) parseType() (Type, error) {
	start := p.offset()

	t, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	compound := false

	for p.peek(unionToken) || p.peek(intersectionToken) {
		p.pos++
		compound = true

		if _, err := p.parseAtom(); err != nil {
			return nil, err
		}
	}

	if compound {
		return Unrepresentable{Expr: p.text(start)}, nil
	}

	return t, nil
}

func (p *parser) parseAtom() (Type, error) {
	if p.pos >= len(p.tokens) {
		return nil, p.errorf("missing type")
	}

	start := p.offset()
	tok := p.tokens[p.pos]
	p.pos++

	var t Type

	switch tok.code {
	case nullableToken:
		if _, err := p.parseAtom(); err != nil {
			return nil, err
		}

		return Unrepresentable{Expr: p.text(start)}, nil

	case openParenToken:
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}

		if err := p.expect(closeParenToken); err != nil {
			return nil, err
		}

		t = inner

	case singleQuotedToken, doubleQuotedToken, numberToken:
		t = Unrepresentable{Expr: tok.text}

	case identifierToken:
		var err error
		if t, err = p.parseNamed(tok); err != nil {
			return nil, err
		}

	default:
		p.pos--

		return nil, p.errorf("unexpected %q", tok.text)
	}

	return p.parseSuffixes(start, t)
}

// parseNamed handles a name with optional type arguments, array shape or callable signature.
func (p *parser) parseNamed(tok token) (Type, error) {
	name := tok.text

	base, ok := classify(name, p.names)
	if !ok {
		return nil, &SyntaxError{Expr: p.expr, Offset: tok.start, Msg: fmt.Sprintf("invalid class name %q", name)}
	}

	switch {
	case p.peek(openAngleToken):
		if err := p.skipBalanced(openAngleToken, closeAngleToken); err != nil {
			return nil, err
		}

		switch base.(type) {
		case Array:
			return Array{Expr: p.text(tok.start)}, nil

		case Iterable:
			return Iterable{Expr: p.text(tok.start)}, nil

		default:
			return Unrepresentable{Expr: p.text(tok.start)}, nil
		}

	case p.peek(openBraceToken):
		if err := p.skipBalanced(openBraceToken, closeBraceToken); err != nil {
			return nil, err
		}

		if _, ok := base.(Array); ok {
			return Array{Expr: p.text(tok.start)}, nil
		}

		return Unrepresentable{Expr: p.text(tok.start)}, nil

	case p.peek(openParenToken):
		if err := p.skipBalanced(openParenToken, closeParenToken); err != nil {
			return nil, err
		}

		if p.peek(colonToken) {
			p.pos++

			if _, err := p.parseAtom(); err != nil {
				return nil, err
			}
		}

		return Unrepresentable{Expr: p.text(tok.start)}, nil
	}

	return base, nil
}

// parseSuffixes handles "T[]" array suffixes and rejects offset access types.
func (p *parser) parseSuffixes(start int, t Type) (Type, error) {
	for p.peek(openBracketToken) {
		p.pos++

		if !p.peek(closeBracketToken) {
			if err := p.skipUntilClose(closeBracketToken); err != nil {
				return nil, err
			}

			t = Unrepresentable{Expr: p.text(start)}

			continue
		}

		p.pos++

		t = Array{Expr: p.text(start)}
	}

	return t, nil
}

// skipBalanced consumes an opening token and everything up to its matching closing token.
func (p *parser) skipBalanced(open, closing int) error {
	if err := p.expect(open); err != nil {
		return err
	}

	return p.skipUntilClose(closing)
}

// skipUntilClose consumes tokens up to and including the closing token balancing the one already consumed.
func (p *parser) skipUntilClose(closing int) error {
	var stack []int

	for ; p.pos < len(p.tokens); p.pos++ {
		code := p.tokens[p.pos].code

		if n := len(stack); n > 0 && code == stack[n-1] {
			stack = stack[:n-1]

			continue
		}

		if len(stack) == 0 && code == closing {
			p.pos++

			return nil
		}

		switch code {
		case openAngleToken:
			stack = append(stack, closeAngleToken)
		case openBraceToken:
			stack = append(stack, closeBraceToken)
		case openParenToken:
			stack = append(stack, closeParenToken)
		case openBracketToken:
			stack = append(stack, closeBracketToken)
		case closeAngleToken, closeBraceToken, closeParenToken, closeBracketToken:
			return p.errorf("unbalanced %q", p.tokens[p.pos].text)
		}
	}

	return p.errorf("unterminated type arguments")
}

func (p *parser) peek(code int) bool {
	return p.pos < len(p.tokens) && p.tokens[p.pos].code == code
}

func (p *parser) expect(code int) error {
	if !p.peek(code) {
		if p.pos < len(p.tokens) {
			return p.errorf("unexpected %q", p.tokens[p.pos].text)
		}

		return p.errorf("unexpected end of type")
	}

	p.pos++

	return nil
}

// offset returns the input offset of the next token.
func (p *parser) offset() int {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos].start
	}

	return len(p.expr)
}

// text returns the input consumed since start.
func (p *parser) text(start int) string {
	end := len(p.expr)
	if p.pos > 0 && p.pos <= len(p.tokens) {
		end = p.tokens[p.pos-1].end
	}

	return strings.TrimSpace(p.expr[start:end])
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Expr: p.expr, Offset: p.offset(), Msg: fmt.Sprintf(format, args...)}
}

// pseudoTypes are documentation keywords without a declared type equivalent.
var pseudoTypes = map[string]struct{}{
	"mixed":    {},
	"null":     {},
	"self":     {},
	"static":   {},
	"parent":   {},
	"$this":    {},
	"object":   {},
	"callable": {},
	"resource": {},
	"never":    {},
	"noreturn": {},
	"true":     {},
	"false":    {},
	"scalar":   {},
	"numeric":  {},
	"number":   {},
	"empty":    {},
}

// classify returns the documentation type of a bare name, or false for a malformed class name.
func classify(name string, names NameResolver) (Type, bool) {
	lower := strings.ToLower(name)

	if kind, ok := scalarKeywords[lower]; ok {
		return Scalar{Kind: kind}, true
	}

	switch lower {
	case "array", "list", "non-empty-array", "non-empty-list":
		return Array{Expr: name}, true

	case "iterable":
		return Iterable{Expr: name}, true

	case "void":
		return Void{}, true
	}

	if _, ok := pseudoTypes[lower]; ok || strings.ContainsAny(name, "-$") {
		return Unrepresentable{Expr: name}, true
	}

	fqn, ok := strings.CutPrefix(name, `\`)
	if !validClassName(fqn) {
		return nil, false
	}

	if ok || names == nil {
		return Class{Name: fqn}, true
	}

	fqn, imported := names.ResolveClassName(name)
	if !validClassName(fqn) {
		// a malformed namespace or import
		return Unrepresentable{Expr: name}, true
	}

	if imported {
		return ShortenedClass{ShortName: name, FullyQualifiedName: fqn}, true
	}

	return Class{Name: fqn}, true
}

// validClassName reports whether name is a sequence of identifiers separated by single backslashes.
func validClassName(name string) bool {
	if name == "" {
		return false
	}

	for segment := range strings.SplitSeq(name, `\`) {
		if !isIdentifier(segment) {
			return false
		}
	}

	return true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}
