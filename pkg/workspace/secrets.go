package workspace

import (
	"fmt"
	"regexp"
)

type secretPattern struct {
	name string
	re   *regexp.Regexp
}

var secretPatterns = []secretPattern{
	{"openai api key", regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{20,}\b`)},
	{"aws access key id", regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`)},
	{"github token", regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{36,}\b`)},
	{"private key block", regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----`)},
	{"credential assignment", regexp.MustCompile(`(?i)\b(?:api[_-]?key|secret|token|password)\b\s*[:=]\s*['"][^'"\s]{8,}['"]`)},
}

// ScanForSecrets reports what kinds of credentials appear in content that
// is about to leave the machine. Findings name the pattern and a count,
// never the matched value, so the report itself is safe to print and log.
func ScanForSecrets(content string) []string {
	var findings []string
	for _, p := range secretPatterns {
		if n := len(p.re.FindAllStringIndex(content, -1)); n > 0 {
			findings = append(findings, fmt.Sprintf("%s (%d match(es))", p.name, n))
		}
	}
	return findings
}
