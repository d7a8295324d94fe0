package changekind

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind labels the type of change a commit summary describes.
type Kind string

const (
	KindFix      Kind = "fix"
	KindFeature  Kind = "feature"
	KindRefactor Kind = "refactor"
	KindDocs     Kind = "docs"
	KindTest     Kind = "test"
	// KindOther is returned when no rule matches.
	KindOther Kind = "change"
)

// Rule maps a set of regex patterns to a kind.
type Rule struct {
	Kind     Kind     `json:"kind" yaml:"kind"`
	Patterns []string `json:"patterns" yaml:"patterns"`
}

// DefaultRules returns the built-in rules. Earlier rules win.
func DefaultRules() []Rule {
	return []Rule{
		{Kind: KindFix, Patterns: []string{`\bfix(ed|es)?\b`, `\bbug\b`, `\bhotfix\b`, `\bpatch\b`, `\brevert\b`}},
		{Kind: KindDocs, Patterns: []string{`^docs?(\(.*\))?:`, `\breadme\b`, `\bdocument(ation|ed)?\b`, `\bcomments?\b`}},
		{Kind: KindTest, Patterns: []string{`^tests?(\(.*\))?:`, `\btests?\b`}},
		{Kind: KindRefactor, Patterns: []string{`\brefactor(ed|ing)?\b`, `\bclean ?up\b`, `\brename[ds]?\b`, `\bsimplif(y|ied)\b`, `\btidy\b`}},
		{Kind: KindFeature, Patterns: []string{`^feat(\(.*\))?:`, `\badd(s|ed)?\b`, `\bimplement(s|ed)?\b`, `\bintroduce[ds]?\b`, `\bsupport\b`, `\binit(ial)?\b`}},
	}
}

type compiledRule struct {
	kind     Kind
	patterns []*regexp.Regexp
}

// Classifier assigns a Kind to commit summaries.
type Classifier struct {
	rules []compiledRule
}

// NewClassifier compiles rules. Patterns are compiled as case-insensitive.
// Returns an error if any pattern fails to compile.
func NewClassifier(rules []Rule) (*Classifier, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		cr := compiledRule{kind: r.Kind}
		for _, p := range r.Patterns {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			// Add case-insensitive flag if not already present
			if !strings.HasPrefix(p, "(?i)") {
				p = "(?i)" + p
			}
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("rule %q: %w", r.Kind, err)
			}
			cr.patterns = append(cr.patterns, re)
		}
		if len(cr.patterns) > 0 {
			compiled = append(compiled, cr)
		}
	}
	return &Classifier{rules: compiled}, nil
}

// Classify returns the kind of the first rule matching summary, or KindOther.
func (c *Classifier) Classify(summary string) Kind {
	for _, r := range c.rules {
		for _, re := range r.patterns {
			if re.MatchString(summary) {
				return r.kind
			}
		}
	}
	return KindOther
}

// ClassifyAll classifies every summary keyed by commit id.
func (c *Classifier) ClassifyAll(summaries map[string]string) map[string]Kind {
	kinds := make(map[string]Kind, len(summaries))
	for id, s := range summaries {
		kinds[id] = c.Classify(s)
	}
	return kinds
}
