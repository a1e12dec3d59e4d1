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
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	identifierToken
	singleQuotedToken
	doubleQuotedToken
	numberToken
	unionToken
	intersectionToken
	nullableToken
	openAngleToken
	closeAngleToken
	openBraceToken
	closeBraceToken
	openParenToken
	closeParenToken
	openBracketToken
	closeBracketToken
	colonToken
	anyToken
)

var (
	whitespaceMatcher   = parsly.NewToken(whitespaceToken, "Whitespace", matcher.NewWhiteSpace())
	identifierMatcher   = parsly.NewToken(identifierToken, "Identifier", &identifierMatch{})
	singleQuotedMatcher = parsly.NewToken(singleQuotedToken, "SingleQuote", matcher.NewBlock('\'', '\'', '\\'))
	doubleQuotedMatcher = parsly.NewToken(doubleQuotedToken, "DoubleQuote", matcher.NewBlock('"', '"', '\\'))
	numberMatcher       = parsly.NewToken(numberToken, "Number", matcher.NewNumber())
	unionMatcher        = parsly.NewToken(unionToken, "|", matcher.NewByte('|'))
	intersectionMatcher = parsly.NewToken(intersectionToken, "&", matcher.NewByte('&'))
	nullableMatcher     = parsly.NewToken(nullableToken, "?", matcher.NewByte('?'))
	openAngleMatcher    = parsly.NewToken(openAngleToken, "<", matcher.NewByte('<'))
	closeAngleMatcher   = parsly.NewToken(closeAngleToken, ">", matcher.NewByte('>'))
	openBraceMatcher    = parsly.NewToken(openBraceToken, "{", matcher.NewByte('{'))
	closeBraceMatcher   = parsly.NewToken(closeBraceToken, "}", matcher.NewByte('}'))
	openParenMatcher    = parsly.NewToken(openParenToken, "(", matcher.NewByte('('))
	closeParenMatcher   = parsly.NewToken(closeParenToken, ")", matcher.NewByte(')'))
	openBracketMatcher  = parsly.NewToken(openBracketToken, "[", matcher.NewByte('['))
	closeBracketMatcher = parsly.NewToken(closeBracketToken, "]", matcher.NewByte(']'))
	colonMatcher        = parsly.NewToken(colonToken, ":", matcher.NewByte(':'))
	anyMatcher          = parsly.NewToken(anyToken, "Any", &anyMatch{})
)

// candidates is the match order for lexing; identifiers precede numbers since they can't start with a digit.
var candidates = []*parsly.Token{
	identifierMatcher,
	numberMatcher,
	singleQuotedMatcher,
	doubleQuotedMatcher,
	unionMatcher,
	intersectionMatcher,
	nullableMatcher,
	openAngleMatcher,
	closeAngleMatcher,
	openBraceMatcher,
	closeBraceMatcher,
	openParenMatcher,
	closeParenMatcher,
	openBracketMatcher,
	closeBracketMatcher,
	colonMatcher,
	anyMatcher,
}

// token is a lexed token with its byte range in the input.
type token struct {
	code       int
	text       string
	start, end int
}

// lex splits a documentation type expression into tokens, dropping whitespace.
func lex(expr string) []token {
	cursor := parsly.NewCursor("", []byte(expr), 0)

	var tokens []token

	for {
		matched := cursor.MatchAfterOptional(whitespaceMatcher, candidates...)
		switch matched.Code {
		case parsly.EOF, parsly.Invalid:
			return tokens
		}

		// the cursor is positioned after the matched token
		text := matched.Text(cursor)
		tokens = append(tokens, token{
			code:  matched.Code,
			text:  text,
			start: cursor.Pos - len(text),
			end:   cursor.Pos,
		})
	}
}

type identifierMatch struct{}

// Match accepts class names (with namespace separators), keywords with dashes like "non-empty-array" and "$this".
func (i *identifierMatch) Match(cursor *parsly.Cursor) int {
	if cursor.Pos >= cursor.InputSize {
		return 0
	}

	if !isIdentifierStart(cursor.Input[cursor.Pos]) {
		return 0
	}

	pos := cursor.Pos + 1
	for pos < cursor.InputSize && isIdentifierPart(cursor.Input[pos]) {
		pos++
	}

	return pos - cursor.Pos
}

func isIdentifierStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b == '\\' || b == '$' || b >= 0x80
}

func isIdentifierPart(b byte) bool {
	return isIdentifierStart(b) && b != '$' || (b >= '0' && b <= '9') || b == '-'
}

type anyMatch struct{}

func (a *anyMatch) Match(cursor *parsly.Cursor) int {
	if cursor.Pos < cursor.InputSize {
		return 1
	}

	return 0
}
