package evmtypes

import (
	"strconv"
	"strings"
)

// ParseSignature parses a Solidity-style function signature into an ordered
// list of type descriptors. The input is either "name(type,type,...)" or a
// bare "(type,...)" tuple body.
//
// Parsing is best-effort: unrecognized tokens are dropped silently, and a
// nil slice with a nil error means nothing was recognized. Numeric width
// suffixes fall back to the native defaults (256 bits, 32 bytes) when
// absent or unparseable; a fixed-array size that fails to parse drops that
// parameter entirely. The only error returned is a DepthError when nesting
// exceeds the configured ceiling.
func ParseSignature(signature string, opts ...Option) ([]Param, error) {
	cfg := apply(opts)
	return parseParams(signature, 0, cfg)
}

// MustParseSignature is like ParseSignature but panics on error.
// Use only with trusted, bounded signatures.
func MustParseSignature(signature string, opts ...Option) []Param {
	params, err := ParseSignature(signature, opts...)
	if err != nil {
		panic(err)
	}
	return params
}

func parseParams(signature string, depth int, cfg *config) ([]Param, error) {
	if depth > cfg.maxDepth {
		return nil, boundsAt(depth, cfg)
	}

	// Take the parameter-list body: everything after the first "(" with one
	// trailing ")" removed. Without a "(" the whole string is the body, so
	// the function can recurse on a bare tuple token.
	body := signature
	if _, after, ok := strings.Cut(signature, "("); ok {
		body = after
	}
	body = trimLast(body, ")")

	tokens := mergeTupleFragments(strings.Split(body, ","))

	var params []Param
	for _, tok := range tokens {
		for _, rule := range paramRules {
			if !rule.match(tok) {
				continue
			}
			p, ok, err := rule.build(tok, depth, cfg)
			if err != nil {
				return nil, err
			}
			if ok {
				params = append(params, p)
			}
			break
		}
		// no rule matched: token dropped
	}

	if len(params) == 0 {
		return nil, nil
	}
	return params, nil
}

// paramRule classifies one top-level token. match decides whether the rule
// applies; build produces the descriptor, reporting ok=false to drop the
// token without error.
type paramRule struct {
	match func(tok string) bool
	build func(tok string, depth int, cfg *config) (Param, bool, error)
}

// paramRules is evaluated in order, first match wins. The exact-name rules
// must run before the prefix rules so that "bytes" stays dynamic and only
// "bytesN" becomes fixed. Populated in init: the composite builders recurse
// into parseParams, which reads the table back.
var paramRules []paramRule

func init() {
	paramRules = []paramRule{
		{matchExact("address"), buildScalar(Address)},
		{matchExact("bytes"), buildScalar(Bytes)},
		{matchExact("bool"), buildScalar(Bool)},
		{matchExact("string"), buildScalar(String)},
		{matchTuple, buildTuple},
		{matchArray, buildArray},
		{matchFixedArray, buildFixedArray},
		{matchPrefix("int"), buildWidth("int", 256, Int)},
		{matchPrefix("uint"), buildWidth("uint", 256, Uint)},
		{matchPrefix("bytes"), buildWidth("bytes", 32, FixedBytes)},
	}
}

func matchExact(name string) func(string) bool {
	return func(tok string) bool { return tok == name }
}

func matchPrefix(prefix string) func(string) bool {
	return func(tok string) bool { return strings.HasPrefix(tok, prefix) }
}

func matchTuple(tok string) bool {
	return strings.HasPrefix(tok, "(") && !strings.HasSuffix(tok, "]")
}

func matchArray(tok string) bool {
	return strings.HasSuffix(tok, "[]")
}

func matchFixedArray(tok string) bool {
	return strings.HasSuffix(tok, "]")
}

func buildScalar(p Param) func(string, int, *config) (Param, bool, error) {
	return func(string, int, *config) (Param, bool, error) {
		return p, true, nil
	}
}

func buildTuple(tok string, depth int, cfg *config) (Param, bool, error) {
	fields, err := parseParams(tok, depth+1, cfg)
	if err != nil {
		return Param{}, false, err
	}
	if fields == nil {
		return Param{}, false, nil
	}
	return Tuple(fields...), true, nil
}

func buildArray(tok string, depth int, cfg *config) (Param, bool, error) {
	elems, err := parseParams(strings.TrimSuffix(tok, "[]"), depth+1, cfg)
	if err != nil {
		return Param{}, false, err
	}
	if elems == nil {
		return Param{}, false, nil
	}
	return Array(collapse(elems)), true, nil
}

func buildFixedArray(tok string, depth int, cfg *config) (Param, bool, error) {
	open := strings.LastIndex(tok, "[")
	if open < 0 {
		return Param{}, false, nil
	}
	size, err := strconv.Atoi(tok[open+1 : len(tok)-1])
	if err != nil || size < 0 {
		// unparseable size drops the whole parameter, no fallback
		return Param{}, false, nil
	}
	elems, perr := parseParams(tok[:open], depth+1, cfg)
	if perr != nil {
		return Param{}, false, perr
	}
	if elems == nil {
		return Param{}, false, nil
	}
	return FixedArray(collapse(elems), size), true, nil
}

// buildWidth parses the digits after prefix as a width, falling back to def
// when absent or unparseable.
func buildWidth(prefix string, def int, ctor func(int) Param) func(string, int, *config) (Param, bool, error) {
	return func(tok string, _ int, _ *config) (Param, bool, error) {
		n, err := strconv.Atoi(strings.TrimPrefix(tok, prefix))
		if err != nil || n < 0 {
			n = def
		}
		return ctor(n), true, nil
	}
}

// collapse reduces a recursive parse of an array element to a single type:
// multiple elements mean the element was an unparenthesized tuple body.
func collapse(elems []Param) Param {
	if len(elems) == 1 {
		return elems[0]
	}
	return Tuple(elems...)
}

// mergeTupleFragments repairs the naive comma split: tokens inside a tuple
// are accumulated while a parenthesis-depth counter is positive and
// rejoined into one token when it returns to zero.
func mergeTupleFragments(raw []string) []string {
	merged := make([]string, 0, len(raw))
	depth := 0
	var pending []string

	for _, tok := range raw {
		if strings.Contains(tok, "(") {
			depth++
		}
		if depth > 0 {
			pending = append(pending, tok)
		} else {
			merged = append(merged, tok)
		}
		if strings.Contains(tok, ")") {
			depth--
			if depth == 0 {
				merged = append(merged, strings.Join(pending, ","))
				pending = pending[:0]
			}
		}
	}
	return merged
}

// trimLast removes the last occurrence of sub from s.
func trimLast(s, sub string) string {
	if i := strings.LastIndex(s, sub); i >= 0 {
		return s[:i] + s[i+len(sub):]
	}
	return s
}
