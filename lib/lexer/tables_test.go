package lexer

import "testing"

func TestIsOperator(t *testing.T) {
	for _, s := range []string{"+", "++", "<<", ">=", "?:", "::", ".", "->"} {
		if !IsOperator(s) {
			t.Errorf("IsOperator(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "===", "+++", "a", "#", ";"} {
		if IsOperator(s) {
			t.Errorf("IsOperator(%q) = true, want false", s)
		}
	}
}

func TestIsSeparator(t *testing.T) {
	for _, s := range []string{";", ",", ":", "(", ")", "[", "]", "{", "}", ".", "->", "::", "#"} {
		if !IsSeparator(s) {
			t.Errorf("IsSeparator(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", ";;", "+", "a"} {
		if IsSeparator(s) {
			t.Errorf("IsSeparator(%q) = true, want false", s)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	for _, s := range []string{"if", "int", "class", "public", "const", "return", "try", "new", "namespace"} {
		if !IsKeyword(s) {
			t.Errorf("IsKeyword(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "If", "integer", "main", "std"} {
		if IsKeyword(s) {
			t.Errorf("IsKeyword(%q) = true, want false", s)
		}
	}
}

func TestLiteralPredicates(t *testing.T) {
	cases := []struct {
		name string
		fn   func(string) bool
		yes  []string
		no   []string
	}{
		{
			name: "IsInteger",
			fn:   IsInteger,
			yes:  []string{"0", "42", "+7", "-13"},
			no:   []string{"", "+", "-", "4a", "3.14", " 1"},
		},
		{
			name: "IsFloatingPoint",
			fn:   IsFloatingPoint,
			yes:  []string{"3.14", "0.5", "-2.0", "+10.25"},
			no:   []string{"", "3", "3.", ".5", "1.2.3", "a.b"},
		},
		{
			name: "IsCharacter",
			fn:   IsCharacter,
			yes:  []string{"'a'", "'0'", "' '"},
			no:   []string{"", "''", "'ab'", `"a"`, "a"},
		},
		{
			name: "IsString",
			fn:   IsString,
			yes:  []string{`""`, `"a"`, `"a;b"`},
			no:   []string{"", `"`, `"a`, `a"`, "'a'"},
		},
		{
			name: "IsBool",
			fn:   IsBool,
			yes:  []string{"true", "false"},
			no:   []string{"", "True", "FALSE", "1"},
		},
		{
			name: "IsLiteral",
			fn:   IsLiteral,
			yes:  []string{"42", "3.14", "'a'", `"s"`, "true"},
			no:   []string{"", "foo", "3.", "'ab'"},
		},
	}

	for _, tc := range cases {
		for _, s := range tc.yes {
			if !tc.fn(s) {
				t.Errorf("%s(%q) = false, want true", tc.name, s)
			}
		}
		for _, s := range tc.no {
			if tc.fn(s) {
				t.Errorf("%s(%q) = true, want false", tc.name, s)
			}
		}
	}
}
