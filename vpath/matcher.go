// Copyright 2026 The memvfs Authors.
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

package vpath

import (
	"regexp"
	"strings"

	"github.com/memvfs-go/memvfs/ferrors"
)

// Matcher matches a rendered path string against a compiled glob or regex
// pattern.
type Matcher struct {
	re *regexp.Regexp
}

// Matches reports whether p's rendered string form matches.
func (m *Matcher) Matches(p Path) bool {
	return m.re.MatchString(p.String())
}

// CreatePathMatcher compiles a "glob:PATTERN" or "regex:PATTERN" syntax
// string into a Matcher. Both compile down to the same regex engine; the
// glob grammar supports *, **, ?, [...], {a,b}, using the Type's separator
// as a non-matching component boundary for single '*' and '?'.
func (s *Service) CreatePathMatcher(syntaxAndPattern string) (*Matcher, error) {
	idx := strings.Index(syntaxAndPattern, ":")
	if idx < 0 {
		return nil, ferrors.New(ferrors.IllegalArgument, "createPathMatcher", "", "missing syntax prefix, expected 'glob:' or 'regex:'")
	}
	syntax, pattern := syntaxAndPattern[:idx], syntaxAndPattern[idx+1:]

	var reSrc string
	switch syntax {
	case "glob":
		reSrc = globToRegex(pattern, s.pType.separator)
	case "regex":
		reSrc = pattern
	default:
		return nil, ferrors.New(ferrors.UnsupportedOperation, "createPathMatcher", "", "unsupported syntax: "+syntax)
	}

	re, err := regexp.Compile(reSrc)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.IllegalArgument, "createPathMatcher", "", err)
	}
	return &Matcher{re: re}, nil
}

// globToRegex translates glob syntax into an anchored regex. "**" matches
// across separator boundaries; a lone "*" or "?" does not cross a
// separator; "[...]" passes through as a regex character class; "{a,b}"
// becomes a non-capturing alternation.
func globToRegex(glob string, sep byte) string {
	var b strings.Builder
	b.WriteString("^")

	sepClass := regexp.QuoteMeta(string(sep))
	runes := []rune(glob)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch c {
		case '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				b.WriteString(".*")
				i++
			} else {
				b.WriteString("[^" + sepClass + "]*")
			}
		case '?':
			b.WriteString("[^" + sepClass + "]")
		case '[':
			j := i + 1
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j < len(runes) {
				b.WriteString("[" + string(runes[i+1:j]) + "]")
				i = j
			} else {
				b.WriteString(regexp.QuoteMeta(string(c)))
			}
		case '{':
			j := i + 1
			for j < len(runes) && runes[j] != '}' {
				j++
			}
			if j < len(runes) {
				alts := strings.Split(string(runes[i+1:j]), ",")
				for k, a := range alts {
					alts[k] = regexp.QuoteMeta(a)
				}
				b.WriteString("(?:" + strings.Join(alts, "|") + ")")
				i = j
			} else {
				b.WriteString(regexp.QuoteMeta(string(c)))
			}
		case '.', '+', '(', ')', '|', '^', '$', '\\':
			b.WriteString(regexp.QuoteMeta(string(c)))
		case '/':
			b.WriteString(sepClass)
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString("$")
	return b.String()
}
