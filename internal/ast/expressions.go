package ast

// Literal keeps the surface text of a value. IsString marks values that the
// generator must single-quote; numbers pass through unquoted.
type Literal struct {
	Value    string
	IsString bool
}

// Condition is a node in a WHERE clause's binary tree. Leaves are
// predicates, internal nodes are And/Or combinators. The tree is built
// strictly left-to-right by the parser and never rebalanced.
type Condition interface {
	conditionNode()
}

type Comparison struct {
	Column string
	Op     string
	Value  Literal
}

type Between struct {
	Column string
	Low    Literal
	High   Literal
}

type InList struct {
	Column string
	Values []Literal
}

type Like struct {
	Column  string
	Pattern string
}

type And struct {
	Left  Condition
	Right Condition
}

type Or struct {
	Left  Condition
	Right Condition
}

func (c *Comparison) conditionNode() {}
func (b *Between) conditionNode()    {}
func (i *InList) conditionNode()     {}
func (l *Like) conditionNode()       {}
func (a *And) conditionNode()        {}
func (o *Or) conditionNode()         {}
