package emitter

import "testing"

func TestCamelAndPascalCase(t *testing.T) {
	if got := CamelCase("GetValue"); got != "getValue" {
		t.Errorf("CamelCase = %q, want getValue", got)
	}
	if got := PascalCase("getValue"); got != "GetValue" {
		t.Errorf("PascalCase = %q, want GetValue", got)
	}
}

func TestUpperSnake(t *testing.T) {
	if got := UpperSnake("maxRetryCount"); got != "MAX_RETRY_COUNT" {
		t.Errorf("UpperSnake(maxRetryCount) = %q, want MAX_RETRY_COUNT", got)
	}
}

func TestAvoidKeyword(t *testing.T) {
	kw := map[string]bool{"class": true, "new": true}
	if got := AvoidKeyword("class", kw); got != "class_" {
		t.Errorf("AvoidKeyword(class) = %q, want class_", got)
	}
	if got := AvoidKeyword("value", kw); got != "value" {
		t.Errorf("AvoidKeyword(value) = %q, want value (unchanged)", got)
	}
}

func TestQualifiers(t *testing.T) {
	if got := QualifyStatic("Foo", "BAR"); got != "Foo.BAR" {
		t.Errorf("QualifyStatic = %q, want Foo.BAR", got)
	}
	if got := QualifyInstanceMethod("Foo", "baz"); got != "Foo.prototype.baz" {
		t.Errorf("QualifyInstanceMethod = %q, want Foo.prototype.baz", got)
	}
	if got := QualifyThis("count"); got != "this.count" {
		t.Errorf("QualifyThis = %q, want this.count", got)
	}
}
