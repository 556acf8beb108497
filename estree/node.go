// Package estree defines the output syntax tree. Every node kind is its own
// struct implementing Node; the JSON form follows ESTree.
package estree

type Node interface {
	Type() string
	node()
}

type Expression interface {
	Node
	expr()
}

type Statement interface {
	Node
	stmt()
}

// Pattern is anything allowed in a parameter list. Literals are patterns
// only in the intermediate tree produced for pattern clauses, before
// clause merging rewrites them away.
type Pattern interface {
	Node
	pattern()
}

type Comment struct {
	Kind  string `json:"-"` // "Line" or "Block"
	Value string `json:"value"`
}

type Program struct {
	Body       []Statement `json:"body"`
	SourceType string      `json:"sourceType"`
	Comments   []*Comment  `json:"comments,omitempty"`
}

type Identifier struct {
	Name string `json:"name"`
}

type RegExp struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

// Semantic type tags carried by literals.
const (
	TypeNumber  = "Number"
	TypeString  = "String"
	TypeBoolean = "Boolean"
	TypeNull    = "Null"
	TypeRegExp  = "RegExp"
)

type Literal struct {
	Value any     `json:"value"`
	Raw   string  `json:"raw"`
	Regex *RegExp `json:"regex,omitempty"`
	SType string  `json:"sType,omitempty"`
}

type BinaryExpression struct {
	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

type LogicalExpression struct {
	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

type UnaryExpression struct {
	Operator string     `json:"operator"`
	Prefix   bool       `json:"prefix"`
	Argument Expression `json:"argument"`
}

type ConditionalExpression struct {
	Test       Expression `json:"test"`
	Consequent Expression `json:"consequent"`
	Alternate  Expression `json:"alternate"`
}

type CallExpression struct {
	Callee    Expression   `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

type MemberExpression struct {
	Object   Expression `json:"object"`
	Property Expression `json:"property"`
	Computed bool       `json:"computed"`
}

type ArrayExpression struct {
	Elements []Expression `json:"elements"`
}

type ObjectExpression struct {
	Properties []*Property `json:"properties"`
}

type Property struct {
	Key      Expression `json:"key"`
	Value    Expression `json:"value"`
	Kind     string     `json:"kind"`
	Computed bool       `json:"computed"`
}

// ArrowFunctionExpression has either an Expression body (Expression true)
// or a *BlockStatement body.
type ArrowFunctionExpression struct {
	Params     []Pattern `json:"params"`
	Body       Node      `json:"body"`
	Expression bool      `json:"expression"`
}

type ArrayPattern struct {
	Elements []Pattern `json:"elements"`
}

type VariableDeclaration struct {
	Declarations    []*VariableDeclarator `json:"declarations"`
	Kind            string                `json:"kind"`
	LeadingComments []*Comment            `json:"leadingComments,omitempty"`
}

type VariableDeclarator struct {
	ID   Pattern    `json:"id"`
	Init Expression `json:"init"`
}

type BlockStatement struct {
	Body []Statement `json:"body"`
}

type ReturnStatement struct {
	Argument Expression `json:"argument"`
}

type ExpressionStatement struct {
	Expression      Expression `json:"expression"`
	LeadingComments []*Comment `json:"leadingComments,omitempty"`
}

type IfStatement struct {
	Test       Expression `json:"test"`
	Consequent Statement  `json:"consequent"`
	Alternate  Statement  `json:"alternate"`
}

type SwitchStatement struct {
	Discriminant Expression    `json:"discriminant"`
	Cases        []*SwitchCase `json:"cases"`
}

// SwitchCase with a nil Test is the default case.
type SwitchCase struct {
	Test       Expression  `json:"test"`
	Consequent []Statement `json:"consequent"`
}

func (*Comment) Type() string                 { return "Comment" }
func (*Program) Type() string                 { return "Program" }
func (*Identifier) Type() string              { return "Identifier" }
func (*Literal) Type() string                 { return "Literal" }
func (*BinaryExpression) Type() string        { return "BinaryExpression" }
func (*LogicalExpression) Type() string       { return "LogicalExpression" }
func (*UnaryExpression) Type() string         { return "UnaryExpression" }
func (*ConditionalExpression) Type() string   { return "ConditionalExpression" }
func (*CallExpression) Type() string          { return "CallExpression" }
func (*MemberExpression) Type() string        { return "MemberExpression" }
func (*ArrayExpression) Type() string         { return "ArrayExpression" }
func (*ObjectExpression) Type() string        { return "ObjectExpression" }
func (*Property) Type() string                { return "Property" }
func (*ArrowFunctionExpression) Type() string { return "ArrowFunctionExpression" }
func (*ArrayPattern) Type() string            { return "ArrayPattern" }
func (*VariableDeclaration) Type() string     { return "VariableDeclaration" }
func (*VariableDeclarator) Type() string      { return "VariableDeclarator" }
func (*BlockStatement) Type() string          { return "BlockStatement" }
func (*ReturnStatement) Type() string         { return "ReturnStatement" }
func (*ExpressionStatement) Type() string     { return "ExpressionStatement" }
func (*IfStatement) Type() string             { return "IfStatement" }
func (*SwitchStatement) Type() string         { return "SwitchStatement" }
func (*SwitchCase) Type() string              { return "SwitchCase" }

func (*Comment) node()                 {}
func (*Program) node()                 {}
func (*Identifier) node()              {}
func (*Literal) node()                 {}
func (*BinaryExpression) node()        {}
func (*LogicalExpression) node()       {}
func (*UnaryExpression) node()         {}
func (*ConditionalExpression) node()   {}
func (*CallExpression) node()          {}
func (*MemberExpression) node()        {}
func (*ArrayExpression) node()         {}
func (*ObjectExpression) node()        {}
func (*Property) node()                {}
func (*ArrowFunctionExpression) node() {}
func (*ArrayPattern) node()            {}
func (*VariableDeclaration) node()     {}
func (*VariableDeclarator) node()      {}
func (*BlockStatement) node()          {}
func (*ReturnStatement) node()         {}
func (*ExpressionStatement) node()     {}
func (*IfStatement) node()             {}
func (*SwitchStatement) node()         {}
func (*SwitchCase) node()              {}

func (*Identifier) expr()              {}
func (*Literal) expr()                 {}
func (*BinaryExpression) expr()        {}
func (*LogicalExpression) expr()       {}
func (*UnaryExpression) expr()         {}
func (*ConditionalExpression) expr()   {}
func (*CallExpression) expr()          {}
func (*MemberExpression) expr()        {}
func (*ArrayExpression) expr()         {}
func (*ObjectExpression) expr()        {}
func (*ArrowFunctionExpression) expr() {}

func (*VariableDeclaration) stmt() {}
func (*BlockStatement) stmt()      {}
func (*ReturnStatement) stmt()     {}
func (*ExpressionStatement) stmt() {}
func (*IfStatement) stmt()         {}
func (*SwitchStatement) stmt()     {}

func (*Identifier) pattern()   {}
func (*Literal) pattern()      {}
func (*ArrayPattern) pattern() {}
