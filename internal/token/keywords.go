package token

var keywords = map[string]Kind{
	"new":        KwNew,
	"stackalloc": KwStackalloc,
	"typeof":     KwTypeof,
	"sizeof":     KwSizeof,
	"nameof":     KwNameof,
	"default":    KwDefault,
	"checked":    KwChecked,
	"unchecked":  KwUnchecked,
	"if":         KwIf,
	"while":      KwWhile,
	"for":        KwFor,
	"foreach":    KwForeach,
	"switch":     KwSwitch,
	"catch":      KwCatch,
	"using":      KwUsing,
	"lock":       KwLock,
	"fixed":      KwFixed,
	"when":       KwWhen,
	"return":     KwReturn,
	"this":       KwThis,
	"base":       KwBase,
	"in":         KwIn,
	"out":        KwOut,
	"ref":        KwRef,
	"is":         KwIs,
	"as":         KwAs,
	"null":       KwNull,
	"true":       KwTrue,
	"false":      KwFalse,
	"await":      KwAwait,
	"throw":      KwThrow,
	"yield":      KwYield,
	"case":       KwCase,
	"else":       KwElse,
	"do":         KwDo,

	"bool":    KwPredefType,
	"byte":    KwPredefType,
	"sbyte":   KwPredefType,
	"char":    KwPredefType,
	"decimal": KwPredefType,
	"double":  KwPredefType,
	"float":   KwPredefType,
	"int":     KwPredefType,
	"uint":    KwPredefType,
	"long":    KwPredefType,
	"ulong":   KwPredefType,
	"short":   KwPredefType,
	"ushort":  KwPredefType,
	"object":  KwPredefType,
	"string":  KwPredefType,
	"void":    KwPredefType,

	"abstract":  KwOther,
	"break":     KwOther,
	"class":     KwOther,
	"const":     KwOther,
	"continue":  KwOther,
	"delegate":  KwOther,
	"enum":      KwOther,
	"event":     KwOther,
	"explicit":  KwOther,
	"extern":    KwOther,
	"finally":   KwOther,
	"goto":      KwOther,
	"implicit":  KwOther,
	"interface": KwOther,
	"internal":  KwOther,
	"namespace": KwOther,
	"operator":  KwOther,
	"override":  KwOther,
	"params":    KwOther,
	"private":   KwOther,
	"protected": KwOther,
	"public":    KwOther,
	"readonly":  KwOther,
	"sealed":    KwOther,
	"static":    KwOther,
	"struct":    KwOther,
	"try":       KwOther,
	"unsafe":    KwOther,
	"virtual":   KwOther,
	"volatile":  KwOther,
}

// LookupKeyword returns the keyword kind for s. Identifiers escaped with '@'
// never reach here.
func LookupKeyword(s string) (Kind, bool) {
	k, ok := keywords[s]
	return k, ok
}
