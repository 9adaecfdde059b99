package ast

// Statement is the closed set of things the parser can produce. The marker
// method keeps the set sealed so the generator's dispatch stays exhaustive.
type Statement interface {
	statementNode()
}

type AggKind string

const (
	AggCount AggKind = "COUNT"
	AggSum   AggKind = "SUM"
	AggAvg   AggKind = "AVG"
	AggMin   AggKind = "MIN"
	AggMax   AggKind = "MAX"
)

type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Projection is what a select statement puts between SELECT and FROM.
type Projection interface {
	projectionNode()
}

type Wildcard struct{}

type Columns struct {
	Names []string
}

// Aggregate's Target is "*" for whole-row aggregates, otherwise a column.
type Aggregate struct {
	Kind   AggKind
	Target string
}

func (w *Wildcard) projectionNode()  {}
func (c *Columns) projectionNode()   {}
func (a *Aggregate) projectionNode() {}

type OrderBy struct {
	Column    string
	Direction Direction
}

type SelectStatement struct {
	Distinct   bool
	Projection Projection
	TableName  string
	Where      Condition
	GroupBy    string
	OrderBy    *OrderBy
}

type InsertStatement struct {
	TableName string
	Values    []Literal
}

type Assignment struct {
	Column string
	Value  Literal
}

type UpdateStatement struct {
	TableName   string
	Assignments []Assignment
	Where       Condition
}

type DeleteStatement struct {
	TableName string
	Where     Condition
}

type AlterDropColumnStatement struct {
	TableName string
	Column    string
}

func (s *SelectStatement) statementNode()          {}
func (s *InsertStatement) statementNode()          {}
func (s *UpdateStatement) statementNode()          {}
func (s *DeleteStatement) statementNode()          {}
func (s *AlterDropColumnStatement) statementNode() {}
