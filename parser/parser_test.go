/*
File   : monkey/parser/parser_test.go
Package: parser
*/
package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophermonkey/monkey/ast"
	"github.com/gophermonkey/monkey/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New(input)
	p := New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())
	return program
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
	}{
		{"let x = 5;", "x"},
		{"let y = true;", "y"},
		{"let foobar = y;", "foobar"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Len(t, program.Statements, 1)

		stmt, ok := program.Statements[0].(*ast.LetStatement)
		require.True(t, ok, "statement is not *ast.LetStatement")
		assert.Equal(t, "let", stmt.TokenLiteral())
		assert.Equal(t, tt.wantName, stmt.Name.Value)
	}
}

func TestReturnStatements(t *testing.T) {
	program := parseProgram(t, "return 5; return x;")
	require.Len(t, program.Statements, 2)

	for _, s := range program.Statements {
		stmt, ok := s.(*ast.ReturnStatement)
		require.True(t, ok, "statement is not *ast.ReturnStatement")
		assert.Equal(t, "return", stmt.TokenLiteral())
	}
}

func TestIdentifierExpression(t *testing.T) {
	program := parseProgram(t, "foobar;")
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ident, ok := stmt.Expression.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "foobar", ident.Value)
}

func TestIntegerLiteralExpression(t *testing.T) {
	program := parseProgram(t, "5;")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	lit, ok := stmt.Expression.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(5), lit.Value)
}

func TestStringLiteralExpression(t *testing.T) {
	program := parseProgram(t, `"hello world";`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	lit, ok := stmt.Expression.(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hello world", lit.Value)
}

func TestBooleanLiteralExpression(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true;", true},
		{"false;", false},
	}
	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		lit, ok := stmt.Expression.(*ast.BooleanLiteral)
		require.True(t, ok)
		assert.Equal(t, tt.want, lit.Value)
	}
}

func TestParsingPrefixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator string
	}{
		{"!5;", "!"},
		{"-15;", "-"},
		{"!true;", "!"},
		{"!false;", "!"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		expr, ok := stmt.Expression.(*ast.PrefixExpression)
		require.True(t, ok)
		assert.Equal(t, tt.operator, expr.Operator)
	}
}

func TestParsingInfixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator string
	}{
		{"5 + 5;", "+"},
		{"5 - 5;", "-"},
		{"5 * 5;", "*"},
		{"5 / 5;", "/"},
		{"5 > 5;", ">"},
		{"5 < 5;", "<"},
		{"5 == 5;", "=="},
		{"5 != 5;", "!="},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		expr, ok := stmt.Expression.(*ast.InfixExpression)
		require.True(t, ok)
		assert.Equal(t, tt.operator, expr.Operator)
	}
}

// TestOperatorPrecedenceParsing exercises the §8 property that the printed
// form of a parsed program makes precedence and associativity explicit via
// parenthesization.
func TestOperatorPrecedenceParsing(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		assert.Equal(t, tt.want, program.String(), "input: %s", tt.input)
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)
	require.Len(t, expr.Consequence.Statements, 1)
	assert.Nil(t, expr.Alternative)
}

func TestIfElseExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x } else { y }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)
	require.NotNil(t, expr.Alternative)
	require.Len(t, expr.Alternative.Statements, 1)
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "fn(x, y) { x + y; }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Value)
	assert.Equal(t, "y", fn.Parameters[1].Value)
	require.Len(t, fn.Body.Statements, 1)
}

func TestFunctionParameterParsing(t *testing.T) {
	tests := []struct {
		input  string
		params []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		fn := stmt.Expression.(*ast.FunctionLiteral)
		require.Len(t, fn.Parameters, len(tt.params))
		for i, want := range tt.params {
			assert.Equal(t, want, fn.Parameters[i].Value)
		}
	}
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)

	ident, ok := expr.Function.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "add", ident.Value)
	require.Len(t, expr.Arguments, 3)
}

func TestCallExpressionOnFunctionLiteral(t *testing.T) {
	program := parseProgram(t, "fn(x) { x; }(5);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)
	_, ok = expr.Function.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, expr.Arguments, 1)
}

// TestCallExpressionOnArbitraryExpressionIsAnError enforces the grammar
// restriction noted on ast.CallExpression.Function: only an Identifier or a
// FunctionLiteral can sit in callee position.
func TestCallExpressionOnArbitraryExpressionIsAnError(t *testing.T) {
	l := lexer.New("(1 + 2)(3);")
	p := New(l)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0], "Expected identifier or function literal for function call")
}

func TestParseErrorOnMissingSemicolonAfterLet(t *testing.T) {
	l := lexer.New("let x = 5")
	p := New(l)
	p.ParseProgram()
	require.Equal(t, []string{"Expected next token to be ;, got EOF"}, p.Errors())
}

func TestParseErrorsOnMissingAssign(t *testing.T) {
	l := lexer.New("let x 5;")
	p := New(l)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0], "Expected next token to be")
}

func TestParseErrorOnUnknownPrefixToken(t *testing.T) {
	l := lexer.New(")")
	p := New(l)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0], fmt.Sprintf("No prefix parse function"))
}
