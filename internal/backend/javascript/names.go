package javascript

import "github.com/cwbudde/citogo/pkg/emitter"

// reservedWords are the JavaScript keywords (and a handful of contextual
// reserved words worth avoiding) that memberName appends "_" to
// on collision.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "export": true,
	"extends": true, "finally": true, "for": true, "function": true,
	"if": true, "import": true, "in": true, "instanceof": true,
	"new": true, "return": true, "super": true, "switch": true,
	"this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true,
	"yield": true, "let": true, "static": true, "await": true,
	"async": true, "of": true, "null": true, "true": true, "false": true,
}

// memberName mangles a global, field, local, or method name: camelCase
// with keyword-avoidance.
func memberName(name string) string {
	return emitter.AvoidKeyword(emitter.CamelCase(name), reservedWords)
}

// typeName passes a type/enum/class/enum-constant name through verbatim:
// these already read as idiomatic JS identifiers and collide with no
// reserved word.
func typeName(name string) string {
	return name
}

// localConstName renders an in-method constant as
// METHOD_NAME_CONSTANT_NAME, since JS has no block-scoped constant that
// stays private to one method the way the source language's does.
func localConstName(methodName, constName string) string {
	return emitter.UpperSnake(methodName) + "_" + emitter.UpperSnake(constName)
}

// classConstName renders a class-scoped constant reference as
// ClassName.CONSTANT_NAME.
func classConstName(className, constName string) string {
	return emitter.QualifyStatic(className, emitter.UpperSnake(constName))
}

// staticMethodRef renders a static method reference as ClassName.method.
func staticMethodRef(className, methodName string) string {
	return emitter.QualifyStatic(className, memberName(methodName))
}

// instanceMethodRef renders an instance method reference as
// ClassName.prototype.method.
func instanceMethodRef(className, methodName string) string {
	return emitter.QualifyInstanceMethod(className, memberName(methodName))
}
