package layout

import "testing"

func TestFitsFlat(t *testing.T) {
	tokens := []Token{
		OpenGroup(Consistent),
		Text("ab"),
		SameBreak(1, Elective(false)),
		Text("cd"),
		CloseGroup(),
	}

	if !fitsFlat(tokens, 1, 5) {
		t.Error("width 5 must fit 'ab cd'")
	}
	if fitsFlat(tokens, 1, 4) {
		t.Error("width 4 must not fit 'ab cd'")
	}
}

func TestFitsFlatStopsOnHardContent(t *testing.T) {
	cases := map[string]Token{
		"hard break":          SameBreak(0, Hard(1)),
		"end-of-line comment": Comment("// c", true),
		"multi-line verbatim": Verbatim("a\nb"),
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			tokens := []Token{OpenGroup(Consistent), Text("x"), tok, CloseGroup()}
			if fitsFlat(tokens, 1, 100) {
				t.Error("content that forces a newline can never render flat")
			}
		})
	}
}

func TestFitsFlatMeasuresNestedGroupsTransparently(t *testing.T) {
	tokens := []Token{
		OpenGroup(Consistent),
		Text("ab"),
		OpenGroup(Inconsistent),
		Text("cd"),
		CloseGroup(),
		CloseGroup(),
	}
	if !fitsFlat(tokens, 1, 4) {
		t.Error("nested group content counts toward the outer width")
	}
	if fitsFlat(tokens, 1, 3) {
		t.Error("nested group content must not be skipped")
	}
}

func TestFitsUntilNextBreakStopsAtBreak(t *testing.T) {
	tokens := []Token{
		Text("abc"),
		SameBreak(1, Elective(false)),
		Text("this part is not measured"),
	}
	if !fitsUntilNextBreak(tokens, 0, 3) {
		t.Error("measurement must stop at the next break")
	}
	if fitsUntilNextBreak(tokens, 0, 2) {
		t.Error("content before the break still counts")
	}
}
