// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package jsast

import "iter"

// Children returns the node's non-nil children in source order.
func Children(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		eachChild(n, yield)
	}
}

// Inspect traverses the tree rooted at n in depth-first pre-order,
// calling f for each node. If f returns false, the children of the
// current node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	for c := range Children(n) {
		Inspect(c, f)
	}
}

// Link sets the parent pointer of every node below root. The root's own
// parent is left untouched. Producers call Link once on the finished
// tree before handing it to an analysis.
func Link(root Node) {
	if root == nil {
		return
	}

	for c := range Children(root) {
		c.setParent(root)
		Link(c)
	}
}

// eachChild yields the non-nil children of n in source order, one case
// per node kind.
func eachChild(n Node, yield func(Node) bool) bool {
	switch n := n.(type) {
	case *TemplateLiteral:
		for i, q := range n.Quasis {
			if !yield(q) {
				return false
			}

			if i < len(n.Expressions) && !yieldExpr(n.Expressions[i], yield) {
				return false
			}
		}

	case *ArrayExpression:
		return yieldExprs(n.Elements, yield)

	case *ObjectExpression:
		return yieldNodes(n.Properties, yield)

	case *Property:
		return yieldExpr(n.Key, yield) && yieldNode(n.Value, yield)

	case *MemberExpression:
		return yieldExpr(n.Object, yield) && yieldExpr(n.Property, yield)

	case *CallExpression:
		return yieldExpr(n.Callee, yield) && yieldExprs(n.Arguments, yield)

	case *NewExpression:
		return yieldExpr(n.Callee, yield) && yieldExprs(n.Arguments, yield)

	case *AssignmentExpression:
		return yieldNode(n.Left, yield) && yieldExpr(n.Right, yield)

	case *ConditionalExpression:
		return yieldExpr(n.Test, yield) && yieldExpr(n.Consequent, yield) && yieldExpr(n.Alternate, yield)

	case *LogicalExpression:
		return yieldExpr(n.Left, yield) && yieldExpr(n.Right, yield)

	case *BinaryExpression:
		return yieldExpr(n.Left, yield) && yieldExpr(n.Right, yield)

	case *UnaryExpression:
		return yieldExpr(n.Argument, yield)

	case *UpdateExpression:
		return yieldExpr(n.Argument, yield)

	case *SequenceExpression:
		return yieldExprs(n.Expressions, yield)

	case *ChainExpression:
		return yieldExpr(n.Expression, yield)

	case *AwaitExpression:
		return yieldExpr(n.Argument, yield)

	case *SpreadElement:
		return yieldExpr(n.Argument, yield)

	case *FunctionExpression:
		if n.ID != nil && !yield(n.ID) {
			return false
		}

		if !yieldPatterns(n.Params, yield) {
			return false
		}

		if n.Body != nil {
			return yield(n.Body)
		}

	case *ArrowFunctionExpression:
		return yieldPatterns(n.Params, yield) && yieldNode(n.Body, yield)

	case *ClassExpression:
		if n.ID != nil && !yield(n.ID) {
			return false
		}

		return yieldExpr(n.SuperClass, yield) && yieldNodes(n.Body, yield)

	case *MethodDefinition:
		if !yieldExpr(n.Key, yield) {
			return false
		}

		if n.Value != nil {
			return yield(n.Value)
		}

	case *PropertyDefinition:
		return yieldExpr(n.Key, yield) && yieldExpr(n.Value, yield)

	case *Program:
		return yieldStmts(n.Body, yield)

	case *ExpressionStatement:
		return yieldExpr(n.Expression, yield)

	case *BlockStatement:
		return yieldStmts(n.Body, yield)

	case *VariableDeclaration:
		for _, d := range n.Declarations {
			if !yield(d) {
				return false
			}
		}

	case *VariableDeclarator:
		return yieldPattern(n.ID, yield) && yieldExpr(n.Init, yield)

	case *FunctionDeclaration:
		if n.ID != nil && !yield(n.ID) {
			return false
		}

		if !yieldPatterns(n.Params, yield) {
			return false
		}

		if n.Body != nil {
			return yield(n.Body)
		}

	case *ClassDeclaration:
		if n.ID != nil && !yield(n.ID) {
			return false
		}

		return yieldExpr(n.SuperClass, yield) && yieldNodes(n.Body, yield)

	case *ReturnStatement:
		return yieldExpr(n.Argument, yield)

	case *IfStatement:
		return yieldExpr(n.Test, yield) && yieldStmt(n.Consequent, yield) && yieldStmt(n.Alternate, yield)

	case *ForStatement:
		return yieldNode(n.Init, yield) && yieldExpr(n.Test, yield) &&
			yieldExpr(n.Update, yield) && yieldStmt(n.Body, yield)

	case *WhileStatement:
		return yieldExpr(n.Test, yield) && yieldStmt(n.Body, yield)

	case *ThrowStatement:
		return yieldExpr(n.Argument, yield)

	case *ImportDeclaration:
		if !yieldNodes(n.Specifiers, yield) {
			return false
		}

		if n.Source != nil {
			return yield(n.Source)
		}

	case *ImportSpecifier:
		if !yieldExpr(n.Imported, yield) {
			return false
		}

		if n.Local != nil {
			return yield(n.Local)
		}

	case *ImportDefaultSpecifier:
		if n.Local != nil {
			return yield(n.Local)
		}

	case *ImportNamespaceSpecifier:
		if n.Local != nil {
			return yield(n.Local)
		}

	case *ExportNamedDeclaration:
		if !yieldStmt(n.Declaration, yield) || !yieldNodes(n.Specifiers, yield) {
			return false
		}

		if n.Source != nil {
			return yield(n.Source)
		}

	case *ExportSpecifier:
		return yieldExpr(n.Local, yield) && yieldExpr(n.Exported, yield)

	case *ExportDefaultDeclaration:
		return yieldNode(n.Declaration, yield)

	case *ExportAllDeclaration:
		if !yieldExpr(n.Exported, yield) {
			return false
		}

		if n.Source != nil {
			return yield(n.Source)
		}

	case *ObjectPattern:
		return yieldNodes(n.Properties, yield)

	case *ArrayPattern:
		return yieldPatterns(n.Elements, yield)

	case *AssignmentPattern:
		return yieldPattern(n.Left, yield) && yieldExpr(n.Right, yield)

	case *RestElement:
		return yieldPattern(n.Argument, yield)

	default:
		// Leaf nodes: identifiers, literals, this, empty statements.
	}

	return true
}

func yieldNode(n Node, yield func(Node) bool) bool {
	return n == nil || yield(n)
}

func yieldExpr(e Expr, yield func(Node) bool) bool {
	return e == nil || yield(e)
}

func yieldStmt(s Stmt, yield func(Node) bool) bool {
	return s == nil || yield(s)
}

func yieldPattern(p Pattern, yield func(Node) bool) bool {
	return p == nil || yield(p)
}

func yieldNodes(ns []Node, yield func(Node) bool) bool {
	for _, n := range ns {
		if !yieldNode(n, yield) {
			return false
		}
	}

	return true
}

func yieldExprs(es []Expr, yield func(Node) bool) bool {
	for _, e := range es {
		if !yieldExpr(e, yield) {
			return false
		}
	}

	return true
}

func yieldStmts(ss []Stmt, yield func(Node) bool) bool {
	for _, s := range ss {
		if !yieldStmt(s, yield) {
			return false
		}
	}

	return true
}

func yieldPatterns(ps []Pattern, yield func(Node) bool) bool {
	for _, p := range ps {
		if !yieldPattern(p, yield) {
			return false
		}
	}

	return true
}
