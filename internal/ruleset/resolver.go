package ruleset

import "github.com/rulelang/rulelang/internal/rule"

// Build assembles a RuleSet from a batch of unresolved rules produced by
// internal/dsl.Parse. It fails fast with the first error encountered:
// duplicate definitions, then unresolved references, then golden-rule
// and acyclicity problems.
func Build(rules []*rule.Rule) (*RuleSet, error) {
	rs := &RuleSet{
		Rules:         rules,
		ByOutcome:     make(map[string]*rule.Rule, len(rules)),
		ByLabel:       make(map[string]*rule.Rule, len(rules)),
		SelectorIndex: make(map[string][]*rule.Rule, len(rules)),
	}

	for _, r := range rules {
		if _, exists := rs.ByOutcome[r.Outcome]; exists {
			return nil, DuplicateDefinition("outcome", r.Outcome)
		}
		rs.ByOutcome[r.Outcome] = r

		if r.Label != "" {
			if _, exists := rs.ByLabel[r.Label]; exists {
				return nil, DuplicateDefinition("label", r.Label)
			}
			rs.ByLabel[r.Label] = r
		}

		rs.SelectorIndex[string(r.Selector)] = append(rs.SelectorIndex[string(r.Selector)], r)
	}

	if err := resolveReferences(rs); err != nil {
		return nil, err
	}

	out, in := buildReferenceGraph(rs)

	golden, err := findGolden(rs, in)
	if err != nil {
		return nil, err
	}
	rs.Golden = golden

	if err := verifyAcyclicAndReachable(rs, out, golden); err != nil {
		return nil, err
	}

	return rs, nil
}

// resolveReferences walks every rule's condition tree, filling in the
// Resolved pointer on each LabelReference/RuleReference node.
func resolveReferences(rs *RuleSet) error {
	for _, r := range rs.Rules {
		if err := resolveCondition(rs, r.Root); err != nil {
			return err
		}
	}
	return nil
}

func resolveCondition(rs *RuleSet, c rule.Condition) error {
	switch n := c.(type) {
	case *rule.BinaryCondition:
		if err := resolveCondition(rs, n.Left); err != nil {
			return err
		}
		return resolveCondition(rs, n.Right)
	case *rule.LabelReference:
		target, ok := rs.ByLabel[n.Name]
		if !ok {
			return UnknownReference(n.Name)
		}
		n.Resolved = target
		return nil
	case *rule.RuleReference:
		target, ok := rs.ByOutcome[n.Outcome]
		if !ok {
			return UnknownReference(n.Outcome)
		}
		n.Resolved = target
		return nil
	default:
		// PropertyCondition, AggregateCondition: no sub-references.
		return nil
	}
}

// buildReferenceGraph mirrors the teacher's out/in adjacency maps
// (internal/graph's ProbabilisticAdjacencyListGraph), keyed by outcome
// instead of node ID: an edge rule A -> rule B means A references B.
func buildReferenceGraph(rs *RuleSet) (out, in map[string]map[string]bool) {
	out = make(map[string]map[string]bool, len(rs.Rules))
	in = make(map[string]map[string]bool, len(rs.Rules))
	for _, r := range rs.Rules {
		out[r.Outcome] = make(map[string]bool)
		in[r.Outcome] = make(map[string]bool)
	}

	var addEdge func(from, to string)
	addEdge = func(from, to string) {
		out[from][to] = true
		in[to][from] = true
	}

	var walk func(from string, c rule.Condition)
	walk = func(from string, c rule.Condition) {
		switch n := c.(type) {
		case *rule.BinaryCondition:
			walk(from, n.Left)
			walk(from, n.Right)
		case *rule.LabelReference:
			addEdge(from, n.Resolved.Outcome)
		case *rule.RuleReference:
			addEdge(from, n.Resolved.Outcome)
		}
	}

	for _, r := range rs.Rules {
		walk(r.Outcome, r.Root)
	}
	return out, in
}

// findGolden locates the unique rule with in-degree zero: the rule nothing
// else references, i.e. the terminal / overruling policy.
func findGolden(rs *RuleSet, in map[string]map[string]bool) (*rule.Rule, error) {
	var candidates []*rule.Rule
	for _, r := range rs.Rules {
		if len(in[r.Outcome]) == 0 {
			candidates = append(candidates, r)
		}
	}
	switch len(candidates) {
	case 0:
		return nil, NoGoldenRule()
	case 1:
		return candidates[0], nil
	default:
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = c.Outcome
		}
		return nil, GoldenRuleAmbiguous(names)
	}
}

// verifyAcyclicAndReachable runs a DFS from the golden rule (adapting the
// teacher's graph traversal idiom) to confirm the reference graph rooted at
// it is acyclic and covers every rule in the set.
func verifyAcyclicAndReachable(rs *RuleSet, out map[string]map[string]bool, golden *rule.Rule) error {
	const (
		white = iota
		gray
		black
	)
	color := make(map[string]int, len(rs.Rules))
	for _, r := range rs.Rules {
		color[r.Outcome] = white
	}

	var path []string
	var visit func(name string) error
	visit = func(name string) error {
		color[name] = gray
		path = append(path, name)
		for next := range out[name] {
			switch color[next] {
			case gray:
				return CyclicReference(append(append([]string{}, path...), next))
			case white:
				if err := visit(next); err != nil {
					return err
				}
			}
		}
		path = path[:len(path)-1]
		color[name] = black
		return nil
	}

	if err := visit(golden.Outcome); err != nil {
		return err
	}

	for _, r := range rs.Rules {
		if color[r.Outcome] == white {
			return UnreachableRule(r.Outcome)
		}
	}
	return nil
}
