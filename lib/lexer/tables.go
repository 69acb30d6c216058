package lexer

import "strings"

var operators = makeSet(
	"+", "-", "*", "/", "%", // arithmetic
	"++", "--", // increment and decrement
	"=", "+=", "-=", "*=", "/=", "%=", // assignment
	"==", "!=", ">", "<", ">=", "<=", // comparison
	"&&", "||", "!", // logical
	"&", "|", "^", "~", "<<", ">>", // bitwise
	"?:",            // ternary conditional
	"::", ".", "->", // access
)

var separators = makeSet(
	";", ",", ":",
	"(", ")", "[", "]", "{", "}",
	".", "->", "::", // access spellings that also act as separators
	"#",
)

var keywords = makeSet(
	"if", "else", "while", "do", "for", "switch", "case", "default",
	"int", "char", "double", "float", "long", "short", "bool", "void",
	"class", "struct", "union", "enum", "typedef", "template",
	"public", "private", "protected", "friend",
	"const", "static", "volatile", "extern",
	"return", "break", "continue", "goto",
	"try", "catch", "throw", "finally",
	"new", "delete", "this", "operator", "sizeof", "typeof", "constexpr",
	"auto", "register", "using", "namespace", "include",
)

func makeSet(entries ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		set[e] = struct{}{}
	}
	return set
}

// IsOperator reports whether s is exactly one of the operator spellings.
func IsOperator(s string) bool {
	_, ok := operators[s]
	return ok
}

// IsSeparator reports whether s is exactly one of the separator spellings.
func IsSeparator(s string) bool {
	_, ok := separators[s]
	return ok
}

// IsKeyword reports whether s is a reserved word.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// IsInteger reports whether s is an optionally signed run of decimal digits.
func IsInteger(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	return allDigits(s)
}

// IsFloatingPoint reports whether s is an integer part, a single interior
// dot, and an all-digit fraction.
func IsFloatingPoint(s string) bool {
	dot := strings.IndexByte(s, '.')
	if dot <= 0 || dot == len(s)-1 {
		return false
	}
	return IsInteger(s[:dot]) && allDigits(s[dot+1:])
}

// IsCharacter reports whether s is a single character in single quotes.
func IsCharacter(s string) bool {
	return len(s) == 3 && s[0] == '\'' && s[2] == '\''
}

// IsString reports whether s is enclosed in double quotes.
func IsString(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// IsBool reports whether s spells a boolean literal.
func IsBool(s string) bool {
	return s == "true" || s == "false"
}

// IsLiteral reports whether s has any recognized literal shape. The scanner
// builds literals incrementally by character class and never calls this;
// it is exposed for post-hoc classification.
func IsLiteral(s string) bool {
	return IsInteger(s) || IsFloatingPoint(s) || IsCharacter(s) || IsString(s) || IsBool(s)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
