package common

import (
	"sort"
	"strings"
)

type TokenType string

// Token is a classified lexical unit. Pos is the byte offset of the first
// character of the token in the original input.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

const (
	EOF = "EOF"

	// Identifiers + literals
	IDENT  = "IDENT"  // users, salary, ...
	NUMBER = "NUMBER" // 42, -3.5
	STRING = "STRING" // 'foo bar'

	// Delimiters
	COMMA  = ","
	LPAREN = "("
	RPAREN = ")"

	// Comparison Operators
	EQ                 = "="
	NOT_EQ             = "!="
	LESS_THAN          = "<"
	LESS_THAN_OR_EQ    = "<="
	GREATER_THAN       = ">"
	GREATER_THAN_OR_EQ = ">="

	// Keywords
	SELECT   = "SELECT"
	WILDCARD = "WILDCARD"
	FROM     = "FROM"
	WHERE    = "WHERE"
	AND      = "AND"
	OR       = "OR"
	DISTINCT = "DISTINCT"
	BETWEEN  = "BETWEEN"
	IN       = "IN"
	LIKE     = "LIKE"
	ORDER_BY = "ORDER_BY"
	GROUP_BY = "GROUP_BY"
	ASC      = "ASC"
	DESC     = "DESC"

	// Aggregates
	COUNT_AGG = "COUNT_AGG"
	SUM_AGG   = "SUM_AGG"
	AVG_AGG   = "AVG_AGG"
	MIN_AGG   = "MIN_AGG"
	MAX_AGG   = "MAX_AGG"

	// Statement keywords
	INSERT_INTO       = "INSERT_INTO"
	VALUES            = "VALUES"
	UPDATE            = "UPDATE"
	SET               = "SET"
	DELETE_FROM       = "DELETE_FROM"
	ALTER_TABLE       = "ALTER_TABLE"
	ALTER_DROP_COLUMN = "ALTER_DROP_COLUMN"
)

var LogicalOperators = map[TokenType]bool{
	AND: true,
	OR:  true,
}

var ComparisonOperators = map[TokenType]bool{
	EQ:                 true,
	NOT_EQ:             true,
	LESS_THAN:          true,
	LESS_THAN_OR_EQ:    true,
	GREATER_THAN:       true,
	GREATER_THAN_OR_EQ: true,
}

var Aggregates = map[TokenType]bool{
	COUNT_AGG: true,
	SUM_AGG:   true,
	AVG_AGG:   true,
	MIN_AGG:   true,
	MAX_AGG:   true,
}

// keywords maps single lowercase words to their token type. Words not in
// this table lex as IDENT; the parser, not the lexer, rejects bad input.
var keywords = map[string]TokenType{
	"select":     SELECT,
	"show":       SELECT,
	"find":       SELECT,
	"get":        SELECT,
	"display":    SELECT,
	"all":        WILDCARD,
	"everything": WILDCARD,
	"count":      COUNT_AGG,
	"sum":        SUM_AGG,
	"total":      SUM_AGG,
	"average":    AVG_AGG,
	"avg":        AVG_AGG,
	"minimum":    MIN_AGG,
	"min":        MIN_AGG,
	"maximum":    MAX_AGG,
	"max":        MAX_AGG,
	"from":       FROM,
	"where":      WHERE,
	"and":        AND,
	"or":         OR,
	"distinct":   DISTINCT,
	"unique":     DISTINCT,
	"between":    BETWEEN,
	"in":         IN,
	"like":       LIKE,
	"contains":   LIKE,
	"values":     VALUES,
	"update":     UPDATE,
	"set":        SET,
	"asc":        ASC,
	"ascending":  ASC,
	"desc":       DESC,
	"descending": DESC,
	"is":         EQ,
	"equal":      EQ,
	"equals":     EQ,
}

// Phrase is a multi-word surface form matched ahead of single words.
type Phrase struct {
	Text string
	Type TokenType
}

// phrases holds every multi-word surface form, sorted longest first at init
// so that greedy matching never splits a phrase into identifiers. The table
// is built once and read-only afterwards.
var phrases = []Phrase{
	{"order by", ORDER_BY},
	{"sorted by", ORDER_BY},
	{"group by", GROUP_BY},
	{"grouped by", GROUP_BY},
	{"how many", COUNT_AGG},
	{"insert into", INSERT_INTO},
	{"delete from", DELETE_FROM},
	{"remove from", DELETE_FROM},
	{"drop column", ALTER_DROP_COLUMN},
	{"delete column", ALTER_DROP_COLUMN},
	{"remove column", ALTER_DROP_COLUMN},
	{"alter table", ALTER_TABLE},
	{"greater than or equal to", GREATER_THAN_OR_EQ},
	{"greater than or equal", GREATER_THAN_OR_EQ},
	{"less than or equal to", LESS_THAN_OR_EQ},
	{"less than or equal", LESS_THAN_OR_EQ},
	{"greater than", GREATER_THAN},
	{"more than", GREATER_THAN},
	{"less than", LESS_THAN},
	{"not equal to", NOT_EQ},
	{"not equal", NOT_EQ},
	{"different from", NOT_EQ},
	{"equal to", EQ},
}

func init() {
	sort.SliceStable(phrases, func(i, j int) bool {
		return len(phrases[i].Text) > len(phrases[j].Text)
	})
}

// Phrases returns the phrase table, longest phrase first.
func Phrases() []Phrase {
	return phrases
}

func LookupWord(word string) TokenType {
	if tok, ok := keywords[strings.ToLower(word)]; ok {
		return tok
	}
	return IDENT
}
