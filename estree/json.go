package estree

import "encoding/json"

// Each node marshals with its ESTree "type" tag first. The local alias
// types drop the methods so json.Marshal does not recurse.

func (n *Program) MarshalJSON() ([]byte, error) {
	type alias Program
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *Identifier) MarshalJSON() ([]byte, error) {
	type alias Identifier
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *Literal) MarshalJSON() ([]byte, error) {
	type alias Literal
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *BinaryExpression) MarshalJSON() ([]byte, error) {
	type alias BinaryExpression
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *LogicalExpression) MarshalJSON() ([]byte, error) {
	type alias LogicalExpression
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *UnaryExpression) MarshalJSON() ([]byte, error) {
	type alias UnaryExpression
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *ConditionalExpression) MarshalJSON() ([]byte, error) {
	type alias ConditionalExpression
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *CallExpression) MarshalJSON() ([]byte, error) {
	type alias CallExpression
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *MemberExpression) MarshalJSON() ([]byte, error) {
	type alias MemberExpression
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *ArrayExpression) MarshalJSON() ([]byte, error) {
	type alias ArrayExpression
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *ObjectExpression) MarshalJSON() ([]byte, error) {
	type alias ObjectExpression
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *Property) MarshalJSON() ([]byte, error) {
	type alias Property
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *ArrowFunctionExpression) MarshalJSON() ([]byte, error) {
	type alias ArrowFunctionExpression
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *ArrayPattern) MarshalJSON() ([]byte, error) {
	type alias ArrayPattern
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *VariableDeclaration) MarshalJSON() ([]byte, error) {
	type alias VariableDeclaration
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *VariableDeclarator) MarshalJSON() ([]byte, error) {
	type alias VariableDeclarator
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *BlockStatement) MarshalJSON() ([]byte, error) {
	type alias BlockStatement
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *ReturnStatement) MarshalJSON() ([]byte, error) {
	type alias ReturnStatement
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *ExpressionStatement) MarshalJSON() ([]byte, error) {
	type alias ExpressionStatement
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *IfStatement) MarshalJSON() ([]byte, error) {
	type alias IfStatement
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *SwitchStatement) MarshalJSON() ([]byte, error) {
	type alias SwitchStatement
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *SwitchCase) MarshalJSON() ([]byte, error) {
	type alias SwitchCase
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{n.Type(), (*alias)(n)})
}

func (n *Comment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{n.Kind, n.Value})
}
