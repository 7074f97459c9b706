package dsl

import (
	"strconv"
	"strings"
	"time"

	"github.com/rulelang/rulelang/internal/rule"
	"github.com/rulelang/rulelang/internal/value"
)

// convertSequence folds a flat and/or-joined list of conditions into a
// left-deep binary tree: C1 op1 C2 op2 C3 becomes ((C1 op1 C2) op2 C3).
func convertSequence(ast *ConditionSequenceAST) (rule.Condition, error) {
	left, err := convertCondition(ast.First)
	if err != nil {
		return nil, err
	}
	for _, join := range ast.Rest {
		right, err := convertCondition(join.Cond)
		if err != nil {
			return nil, err
		}
		op := rule.And
		if join.Op == "or" {
			op = rule.Or
		}
		left = &rule.BinaryCondition{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func convertCondition(ast *ConditionAST) (rule.Condition, error) {
	switch {
	case ast.Aggregate != nil:
		return convertAggregate(ast.Aggregate)
	case ast.Property != nil:
		return convertProperty(ast.Property)
	case ast.RuleRef != nil:
		return convertRuleRef(ast.RuleRef)
	case ast.LabelRef != nil:
		return convertLabelRef(ast.LabelRef)
	default:
		return nil, rule.EmptyConditionTree()
	}
}

func convertProperty(ast *PropertyLeafAST) (rule.Condition, error) {
	path, err := convertChain(ast.Chain)
	if err != nil {
		return nil, err
	}
	predicate, operands, err := convertPredicate(ast.Predicate)
	if err != nil {
		return nil, err
	}
	return &rule.PropertyCondition{Path: path, Predicate: predicate, Operands: operands}, nil
}

func convertAggregate(ast *AggregateLeafAST) (rule.Condition, error) {
	path, err := convertChain(ast.Chain)
	if err != nil {
		return nil, err
	}
	predicate, operands, err := convertPredicate(ast.Predicate)
	if err != nil {
		return nil, err
	}
	kind := rule.LengthOf
	if ast.Kind == "number" {
		kind = rule.NumberOf
	}
	return &rule.AggregateCondition{Kind: kind, Path: path, Predicate: predicate, Operands: operands}, nil
}

func convertRuleRef(ast *RuleRefLeafAST) (rule.Condition, error) {
	name := strings.Trim(ast.Selector, "*")
	if name == "" {
		return nil, rule.InvalidSelector(ast.Selector)
	}
	return &rule.RuleReference{Selector: rule.Selector(name), Outcome: ast.Outcome}, nil
}

func convertLabelRef(ast *LabelRefLeafAST) (rule.Condition, error) {
	// § is multi-byte in UTF-8; TrimPrefix (not a byte-offset slice) strips
	// whichever marker is present without splitting it.
	name := strings.TrimPrefix(strings.TrimPrefix(ast.Ref, "§"), "$")
	return &rule.LabelReference{Name: name}, nil
}

// convertChain flattens a chain AST into segments, outermost (final value)
// first, expanding dotted object selectors (**Customer.Address**) into
// successive selector segments per spec §4.D.
func convertChain(ast *ChainAST) ([]rule.Segment, error) {
	var segments []rule.Segment
	first, err := expandSegment(ast.First)
	if err != nil {
		return nil, err
	}
	segments = append(segments, first...)
	for _, link := range ast.Rest {
		seg, err := expandSegment(link.Segment)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg...)
	}
	return segments, nil
}

func expandSegment(ast *SegmentAST) ([]rule.Segment, error) {
	if ast.Property != "" {
		name := strings.Trim(ast.Property, "_")
		if name == "" {
			return nil, rule.InvalidProperty(ast.Property)
		}
		return []rule.Segment{{Kind: rule.PropertySegment, Name: name}}, nil
	}

	raw := strings.Trim(ast.Selector, "*")
	if raw == "" {
		return nil, rule.InvalidSelector(ast.Selector)
	}
	// Reverse written order: "Customer.Address" names the container before
	// its nested selector, but resolution walks innermost-to-outermost
	// (resolvePath consumes a chain from its last segment backward), so the
	// outer container must land last in the expanded slice.
	parts := strings.Split(raw, ".")
	segs := make([]rule.Segment, len(parts))
	for i, p := range parts {
		segs[len(parts)-1-i] = rule.Segment{Kind: rule.SelectorSegment, Name: p}
	}
	return segs, nil
}

func convertPredicate(ast *PredicateAST) (rule.Predicate, []rule.Literal, error) {
	one := func(p rule.Predicate, operand *OperandAST) (rule.Predicate, []rule.Literal, error) {
		v, err := convertLiteral(operand)
		if err != nil {
			return 0, nil, err
		}
		return p, []rule.Literal{v}, nil
	}
	list := func(p rule.Predicate, l *ListLiteralAST) (rule.Predicate, []rule.Literal, error) {
		v, err := convertListLiteral(l)
		if err != nil {
			return 0, nil, err
		}
		return p, []rule.Literal{v}, nil
	}

	switch {
	case ast.GreaterOrEqual != nil:
		return one(rule.IsGreaterThanOrEqualTo, ast.GreaterOrEqual)
	case ast.AtLeast != nil:
		return one(rule.IsGreaterThanOrEqualTo, ast.AtLeast)
	case ast.LessOrEqual != nil:
		return one(rule.IsLessThanOrEqualTo, ast.LessOrEqual)
	case ast.NoMoreThan != nil:
		return one(rule.IsLessThanOrEqualTo, ast.NoMoreThan)
	case ast.GreaterThan != nil:
		return one(rule.IsGreaterThan, ast.GreaterThan)
	case ast.LessThan != nil:
		return one(rule.IsLessThan, ast.LessThan)
	case ast.ExactlyEqual != nil:
		return one(rule.IsExactlyEqualTo, ast.ExactlyEqual)
	case ast.NotEqual != nil:
		return one(rule.IsNotEqualTo, ast.NotEqual)
	case ast.Equal != nil:
		return one(rule.IsEqualTo, ast.Equal)
	case ast.NotSame != nil:
		return one(rule.IsNotTheSameAs, ast.NotSame)
	case ast.Same != nil:
		return one(rule.IsTheSameAs, ast.Same)
	case ast.Later != nil:
		return one(rule.IsLaterThan, ast.Later)
	case ast.Earlier != nil:
		return one(rule.IsEarlierThan, ast.Earlier)
	case ast.Older != nil:
		return one(rule.IsOlderThan, ast.Older)
	case ast.Younger != nil:
		return one(rule.IsYoungerThan, ast.Younger)
	case ast.Within != nil:
		return one(rule.IsWithin, ast.Within)
	case ast.Contains != nil:
		return one(rule.Contains, ast.Contains)
	case ast.NotIn != nil:
		return list(rule.IsNotIn, ast.NotIn)
	case ast.In != nil:
		return list(rule.IsIn, ast.In)
	case ast.NotEmpty:
		return rule.IsNotEmpty, nil, nil
	case ast.Empty:
		return rule.IsEmpty, nil, nil
	default:
		return 0, nil, rule.UnknownPredicate("<empty>")
	}
}

func convertLiteral(ast *LiteralAST) (value.Value, error) {
	switch {
	case ast.Duration != nil:
		unit, ok := value.ParseTimeUnit(ast.Duration.Unit)
		if !ok {
			return value.Missing, errUnknownUnit(ast.Duration.Unit)
		}
		return value.Value{
			Kind:     value.DurationVal,
			Duration: value.Duration{Amount: int64(ast.Duration.Amount), Unit: unit},
		}, nil
	case ast.DateWrapped != nil:
		return parseDate(*ast.DateWrapped)
	case ast.DateBare != nil:
		return parseDate(*ast.DateBare)
	case ast.Str != nil:
		return value.String(unquote(*ast.Str)), nil
	case ast.Num != nil:
		return value.Number(*ast.Num), nil
	case ast.True:
		return value.Bool(true), nil
	case ast.False:
		return value.Bool(false), nil
	case ast.BareStr != nil:
		return value.String(*ast.BareStr), nil
	default:
		return value.Missing, errParse("<empty literal>", nil)
	}
}

func convertListLiteral(ast *ListLiteralAST) (value.Value, error) {
	items := make([]value.Value, len(ast.Items))
	for i, it := range ast.Items {
		v, err := convertLiteral(it)
		if err != nil {
			return value.Missing, err
		}
		items[i] = v
	}
	return value.List(items), nil
}

func parseDate(s string) (value.Value, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return value.Missing, errParse(s, err)
	}
	return value.Date(t), nil
}

func unquote(s string) string {
	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return strings.Trim(s, `"`)
	}
	return unquoted
}
