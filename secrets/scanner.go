package secrets

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zricethezav/gitleaks/v8/detect"
)

type Config struct {
	// Gitleaks adds a second pass with the gitleaks default rule pack.
	Gitleaks bool `koanf:"gitleaks" yaml:"gitleaks"`
	// AllowList holds regexes; a match that satisfies any of them is ignored.
	AllowList []string `koanf:"allow_list" yaml:"allow_list"`
	// Rules replaces DefaultRules when non-empty.
	Rules []Rule `koanf:"rules" yaml:"rules,omitempty"`
}

// Finding describes a detected secret without the secret value.
type Finding struct {
	RuleID      string `json:"rule_id"`
	Description string `json:"description"`
	Line        int    `json:"line"`
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// Scanner reports credential-shaped strings in document content.
type Scanner struct {
	rules []compiledRule
	allow []*regexp.Regexp
	deep  *detect.Detector
}

func New(cfg Config) (*Scanner, error) {
	rules := cfg.Rules
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	s := &Scanner{}
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern for rule %s: %w", r.ID, err)
		}
		s.rules = append(s.rules, compiledRule{Rule: r, re: re})
	}

	for _, p := range cfg.AllowList {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid allow list pattern %q: %w", p, err)
		}
		s.allow = append(s.allow, re)
	}

	if cfg.Gitleaks {
		d, err := detect.NewDetectorDefaultConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create gitleaks detector: %w", err)
		}
		s.deep = d
	}

	return s, nil
}

// MustNew is New for configurations known to be valid.
func MustNew(cfg Config) *Scanner {
	s, err := New(cfg)
	if err != nil {
		panic(err)
	}

	return s
}

// Scan returns every finding in content, regex rules first.
func (s *Scanner) Scan(content string) []Finding {
	var findings []Finding
	for _, r := range s.rules {
		for _, m := range r.re.FindAllStringIndex(content, -1) {
			if s.allowed(content[m[0]:m[1]]) {
				continue
			}

			findings = append(findings, Finding{
				RuleID:      r.ID,
				Description: r.Description,
				Line:        strings.Count(content[:m[0]], "\n") + 1,
			})
		}
	}

	if s.deep != nil {
		for _, f := range s.deep.DetectString(content) {
			if s.allowed(f.Secret) {
				continue
			}

			findings = append(findings, Finding{
				RuleID:      f.RuleID,
				Description: f.Description,
				Line:        f.StartLine,
			})
		}
	}

	return findings
}

// RuleIDs returns the distinct rule ids of findings in first-seen order.
func RuleIDs(findings []Finding) []string {
	seen := make(map[string]struct{}, len(findings))
	ids := make([]string, 0, len(findings))
	for _, f := range findings {
		if _, ok := seen[f.RuleID]; ok {
			continue
		}
		seen[f.RuleID] = struct{}{}
		ids = append(ids, f.RuleID)
	}

	return ids
}

func (s *Scanner) allowed(match string) bool {
	for _, re := range s.allow {
		if re.MatchString(match) {
			return true
		}
	}

	return false
}
