package dsl

import (
	"regexp"
	"strings"
)

// verbPhrases is the closed outcome-verb set from spec §6, longest phrases
// first so a multi-word verb is never shadowed by a shorter one.
var verbPhrases = []string{
	"benefits from", "qualifies for", "succeeds in", "excels at", "arrives at", "comes to",
	"gets", "passes", "is", "has", "receives", "meets", "satisfies", "achieves", "attains",
	"earns", "gains", "obtains", "secures", "acquires", "deserves", "merits", "warrants",
	"requires", "needs", "completes", "fulfills", "demonstrates", "shows", "proves",
	"establishes", "maintains", "holds", "possesses", "displays", "exhibits", "presents",
	"provides", "supplies", "delivers", "submits", "confirms", "validates", "verifies",
	"supports", "justifies", "ensures", "guarantees", "undergoes", "experiences",
	"encounters", "faces", "enjoys", "suffers", "lacks", "misses", "fails", "reaches",
}

var ruleBoundary = regexp.MustCompile(`\.(\s+|$)`)
var labelOnly = regexp.MustCompile(`^[§$][A-Za-z_][A-Za-z0-9_]*$`)
var articleStart = regexp.MustCompile(`(?i)^(a|an)\b`)
var ifBoundary = regexp.MustCompile(`\sif\s`)
var selectorPattern = regexp.MustCompile(`^\*\*([A-Za-z_][A-Za-z0-9_.]*)\*\*`)

// rawRule is one rule's text, already split from its siblings and with its
// optional label sentence separated out.
type rawRule struct {
	label     string // empty if none
	selector  string
	verb      string
	outcome   string
	condition string // text between "if" and the terminating period
}

// splitRules segments a DSL source blob into individual rule sentences. A
// rule boundary is a period followed by whitespace or end of input; a
// period immediately followed by a digit (a decimal point) never matches.
// A bare label sentence (just §Name.) is merged into the segment that
// follows it, since it is the same rule's own label, not a separate one.
func splitRules(source string) ([]string, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return nil, nil
	}

	bounds := ruleBoundary.FindAllStringIndex(trimmed, -1)
	if len(bounds) == 0 {
		return nil, errUnterminatedRule(snippet(trimmed))
	}

	var segments []string
	prev := 0
	for _, b := range bounds {
		segments = append(segments, strings.TrimSpace(trimmed[prev:b[0]+1]))
		prev = b[1]
	}
	if rest := strings.TrimSpace(trimmed[prev:]); rest != "" {
		segments = append(segments, rest)
	}

	var rules []string
	var pendingLabel string
	for _, seg := range segments {
		if labelOnly.MatchString(strings.TrimSuffix(seg, ".")) {
			if pendingLabel != "" {
				return nil, errDanglingLabel(pendingLabel)
			}
			pendingLabel = seg
			continue
		}
		if pendingLabel != "" {
			seg = pendingLabel + " " + seg
			pendingLabel = ""
		}
		rules = append(rules, seg)
	}
	if pendingLabel != "" {
		return nil, errDanglingLabel(pendingLabel)
	}
	return rules, nil
}

// parseRawRule splits one rule's text into label, selector, verb, outcome,
// and condition text, using plain scanning rather than the participle
// grammar: the outcome production is a greedy run up to the first period or
// first whitespace-delimited "if" (spec §4.A), which is a textual/lexer-
// level concern, not a recursive one — a dedicated scanner expresses it far
// more directly than trying to coax PEG backtracking into matching it.
func parseRawRule(text string) (*rawRule, error) {
	rest := strings.TrimSpace(text)

	var label string
	if strings.HasPrefix(rest, "§") || strings.HasPrefix(rest, "$") {
		idx := strings.Index(rest, ".")
		if idx == -1 {
			return nil, errDanglingLabel(rest)
		}
		// § is multi-byte in UTF-8; TrimPrefix (not a byte-offset slice)
		// strips whichever marker is present without splitting it.
		raw := strings.TrimSpace(rest[:idx])
		label = strings.TrimPrefix(strings.TrimPrefix(raw, "§"), "$")
		rest = strings.TrimSpace(rest[idx+1:])
	}

	if !strings.HasSuffix(rest, ".") {
		return nil, errUnterminatedRule(snippet(rest))
	}
	rest = strings.TrimSuffix(rest, ".")

	loc := articleStart.FindStringIndex(rest)
	if loc == nil {
		return nil, errMalformedSelector(snippet(rest))
	}
	rest = strings.TrimSpace(rest[loc[1]:])

	sel := selectorPattern.FindStringSubmatch(rest)
	if sel == nil {
		return nil, errMalformedSelector(snippet(rest))
	}
	selector := sel[1]
	rest = strings.TrimSpace(rest[len(sel[0]):])

	ifLoc := ifBoundary.FindStringIndex(rest)
	if ifLoc == nil {
		return nil, errMissingIf(snippet(rest))
	}
	outcomeRaw := strings.TrimSpace(rest[:ifLoc[0]])
	condition := strings.TrimSpace(rest[ifLoc[1]:])

	verb, outcome := splitVerbOutcome(outcomeRaw)
	if outcome == "" {
		return nil, errEmptyOutcome()
	}

	return &rawRule{
		label:     label,
		selector:  selector,
		verb:      verb,
		outcome:   outcome,
		condition: condition,
	}, nil
}

// splitVerbOutcome strips a recognized verb phrase prefix, if present;
// accepts a bare identifier (no verb) otherwise, per spec §4.B.
func splitVerbOutcome(raw string) (verb, outcome string) {
	lower := strings.ToLower(raw)
	for _, v := range verbPhrases {
		if lower == v {
			continue
		}
		prefix := v + " "
		if strings.HasPrefix(lower, prefix) {
			return v, strings.TrimSpace(raw[len(prefix):])
		}
	}
	return "", strings.TrimSpace(raw)
}

func snippet(s string) string {
	const max = 40
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
