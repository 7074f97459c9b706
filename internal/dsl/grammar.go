package dsl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// conditionLexer tokenizes the condition-tree portion of a rule (everything
// after "if" and before the rule's terminating period). DateLiteral must be
// tried before Number so a bare date like 2024-01-15 isn't truncated to its
// leading digit group.
var conditionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LabelRef", Pattern: `[§$][A-Za-z_][A-Za-z0-9_]*`},
	{Name: "ObjectSelector", Pattern: `\*\*[A-Za-z_][A-Za-z0-9_.]*\*\*`},
	{Name: "Property", Pattern: `__[A-Za-z_][A-Za-z0-9_]*__`},
	{Name: "DateLiteral", Pattern: `\d{4}-\d{2}-\d{2}`},
	{Name: "Number", Pattern: `\d+(\.\d+)?`},
	{Name: "String", Pattern: `"([^"\\]|\\.)*"`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[(),\[\]]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// ConditionSequenceAST is a flat and/or-joined list of conditions; convert.go
// folds it left-deep since the DSL has no operator precedence (spec's
// evaluation order follows syntactic order, left to right).
type ConditionSequenceAST struct {
	First *ConditionAST       `parser:"@@"`
	Rest  []*ConditionJoinAST `parser:"@@*"`
}

// ConditionJoinAST is one "and"/"or" continuation of a condition sequence.
type ConditionJoinAST struct {
	Op   string        `parser:"@( \"and\" | \"or\" )"`
	Cond *ConditionAST `parser:"@@"`
}

// ConditionAST dispatches on the four leaf shapes. AggregateLeaf is tried
// first (it starts with a reserved keyword, so it's unambiguous).
// PropertyLeaf is tried before RuleRefLeaf: both start with "the"
// ObjectSelector, but only PropertyLeaf's continuation can match one of the
// literal predicate phrases; when it can't, participle backtracks under
// MaxLookahead and RuleRefLeaf's bare trailing identifier matches instead.
type ConditionAST struct {
	Aggregate *AggregateLeafAST `parser:"  @@"`
	Property  *PropertyLeafAST  `parser:"| @@"`
	RuleRef   *RuleRefLeafAST   `parser:"| @@"`
	LabelRef  *LabelRefLeafAST  `parser:"| @@"`
}

// SegmentAST is one step of a property access chain.
type SegmentAST struct {
	Selector string `parser:"  @ObjectSelector"`
	Property string `parser:"| @Property"`
}

// ChainLinkAST continues a chain: "of the" or "in the" plus another segment.
type ChainLinkAST struct {
	Joiner  string      `parser:"@( \"of\" | \"in\" )"`
	Segment *SegmentAST `parser:"\"the\" @@"`
}

// ChainAST is a non-empty chain of segments, outermost segment first.
type ChainAST struct {
	First *SegmentAST     `parser:"@@"`
	Rest  []*ChainLinkAST `parser:"@@*"`
}

// PropertyLeafAST: "the" <chain> <predicate>.
type PropertyLeafAST struct {
	Chain     *ChainAST     `parser:"\"the\" @@"`
	Predicate *PredicateAST `parser:"@@"`
}

// AggregateLeafAST: "length of" / "number of" <chain> <predicate>.
type AggregateLeafAST struct {
	Kind      string        `parser:"@( \"length\" | \"number\" ) \"of\""`
	Chain     *ChainAST     `parser:"@@"`
	Predicate *PredicateAST `parser:"@@"`
}

// RuleRefLeafAST: "the" <selector> <bare outcome identifier>.
type RuleRefLeafAST struct {
	Selector string `parser:"\"the\" @ObjectSelector"`
	Outcome  string `parser:"@Ident"`
}

// LabelRefLeafAST: a §Name/$Name token, optionally followed by an approval
// phrase asserting the referenced rule succeeded.
type LabelRefLeafAST struct {
	Ref      string `parser:"@LabelRef"`
	Approval string `parser:"@( \"succeeds\" | ( \"is\" \"approved\" ) | ( \"is\" \"satisfied\" ) | \"holds\" | \"passes\" )?"`
}

// PredicateAST: the closed set of predicate phrases, ordered longest and
// most-specific first so the grammar's ordered choice never lets a shorter
// alternative win prematurely (mirrors holomush's Condition struct).
type PredicateAST struct {
	GreaterOrEqual *OperandAST     `parser:"  ( \"is\" \"greater\" \"than\" \"or\" \"equal\" \"to\" @@ )"`
	AtLeast        *OperandAST     `parser:"| ( \"is\" \"at\" \"least\" @@ )"`
	LessOrEqual    *OperandAST     `parser:"| ( \"is\" \"less\" \"than\" \"or\" \"equal\" \"to\" @@ )"`
	NoMoreThan     *OperandAST     `parser:"| ( \"is\" \"no\" \"more\" \"than\" @@ )"`
	GreaterThan    *OperandAST     `parser:"| ( \"is\" \"greater\" \"than\" @@ )"`
	LessThan       *OperandAST     `parser:"| ( \"is\" \"less\" \"than\" @@ )"`
	ExactlyEqual   *OperandAST     `parser:"| ( \"is\" \"exactly\" \"equal\" \"to\" @@ )"`
	NotEqual       *OperandAST     `parser:"| ( \"is\" \"not\" \"equal\" \"to\" @@ )"`
	Equal          *OperandAST     `parser:"| ( \"is\" \"equal\" \"to\" @@ )"`
	NotSame        *OperandAST     `parser:"| ( \"is\" \"not\" \"the\" \"same\" \"as\" @@ )"`
	Same           *OperandAST     `parser:"| ( \"is\" \"the\" \"same\" \"as\" @@ )"`
	Later          *OperandAST     `parser:"| ( \"is\" \"later\" \"than\" @@ )"`
	Earlier        *OperandAST     `parser:"| ( \"is\" \"earlier\" \"than\" @@ )"`
	Older          *OperandAST     `parser:"| ( \"is\" \"older\" \"than\" @@ )"`
	Younger        *OperandAST     `parser:"| ( \"is\" \"younger\" \"than\" @@ )"`
	Within         *OperandAST     `parser:"| ( \"is\" \"within\" @@ )"`
	Contains       *OperandAST     `parser:"| ( \"contains\" @@ )"`
	NotIn          *ListLiteralAST `parser:"| ( \"is\" \"not\" \"in\" @@ )"`
	In             *ListLiteralAST `parser:"| ( \"is\" \"in\" @@ )"`
	NotEmpty       bool            `parser:"| @( \"is\" \"not\" \"empty\" )"`
	Empty          bool            `parser:"| @( \"is\" \"empty\" )"`
}

// OperandAST is a single scalar predicate operand.
type OperandAST = LiteralAST

// LiteralAST is a scalar literal: duration, date, string, number, or bool.
// Duration is tried before a bare Number so "30 days" isn't truncated to
// "30"; its unit alternation only matches recognized unit words, so a bare
// number followed by an unrelated identifier (e.g. a connective) falls
// through correctly.
type LiteralAST struct {
	Duration    *DurationAST `parser:"  @@"`
	DateWrapped *string      `parser:"| ( \"date\" \"(\" @DateLiteral \")\" )"`
	DateBare    *string      `parser:"| @DateLiteral"`
	Str         *string      `parser:"| @String"`
	Num         *float64     `parser:"| @Number"`
	True        bool         `parser:"| @\"true\""`
	False       bool         `parser:"| @\"false\""`
	BareStr     *string      `parser:"| @Ident"`
}

// DurationAST: an amount plus a closed-set unit word.
type DurationAST struct {
	Amount float64 `parser:"@Number"`
	Unit   string  `parser:"@( \"second\" | \"seconds\" | \"minute\" | \"minutes\" | \"hour\" | \"hours\" | \"day\" | \"days\" | \"week\" | \"weeks\" | \"month\" | \"months\" | \"year\" | \"years\" | \"decade\" | \"decades\" | \"century\" | \"centuries\" )"`
}

// ListLiteralAST: a bracketed, comma-separated list of scalar literals.
type ListLiteralAST struct {
	Items []*LiteralAST `parser:"\"[\" ( @@ ( \",\" @@ )* )? \"]\""`
}

var conditionParser = participle.MustBuild[ConditionSequenceAST](
	participle.Lexer(conditionLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(participle.MaxLookahead),
)
