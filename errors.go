package fin

import "fmt"

// LexError is raised by the parser for an unterminated string literal, one
// of the tokenizer-level failures the reference lexer marks with
// fin_lex_type_error. Other bytes the tokenizer cannot scan come out as
// tokError tokens and are not reported as a LexError.
type LexError struct {
	Line    int
	Message string
}

func (e LexError) Error() string {
	return fmt.Sprintf("lex error at line %d: %s", e.Line, e.Message)
}

// ParseError is raised when the parser encounters a token it has no
// production for, matching the reference parser's assert(0) sites.
type ParseError struct {
	Line    int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}

// ResolveError covers signature/field/local resolution failures discovered
// during compilation: unresolved identifiers, mismatched conditional
// branches, duplicate local declarations.
type ResolveError struct {
	Message string
}

func (e ResolveError) Error() string {
	return "resolve error: " + e.Message
}

// BindError is raised when a module's bind table contains an entry that no
// registered module can satisfy, matching fin_mod_register's fatal
// "Unresolved function" path.
type BindError struct {
	Signature string
}

func (e BindError) Error() string {
	return fmt.Sprintf("unresolved function %s", e.Signature)
}
