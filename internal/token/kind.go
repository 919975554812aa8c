package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Ident represents an identifier token.
	Ident

	// Keywords that influence classification.
	KwNew        // new
	KwStackalloc // stackalloc
	KwTypeof     // typeof
	KwSizeof     // sizeof
	KwNameof     // nameof (contextual)
	KwDefault    // default
	KwChecked    // checked
	KwUnchecked  // unchecked
	KwIf         // if
	KwWhile      // while
	KwFor        // for
	KwForeach    // foreach
	KwSwitch     // switch
	KwCatch      // catch
	KwUsing      // using
	KwLock       // lock
	KwFixed      // fixed
	KwWhen       // when (contextual)
	KwReturn     // return
	KwThis       // this
	KwBase       // base
	KwIn         // in
	KwOut        // out
	KwRef        // ref
	KwIs         // is
	KwAs         // as
	KwNull       // null
	KwTrue       // true
	KwFalse      // false
	KwAwait      // await (contextual)
	KwThrow      // throw
	KwYield      // yield (contextual)
	KwCase       // case
	KwElse       // else
	KwDo         // do
	KwPredefType // int, string, bool, object, ...
	// KwOther covers the remaining reserved words (public, class, void, ...).
	KwOther

	// Literals.
	IntLit
	RealLit
	StringLit
	CharLit

	// Brackets.
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }
	Lt       // < (generic open or comparison)
	Gt       // > (generic close, comparison or half of a shift)

	// Separators.
	Comma     // ,
	Semicolon // ;

	// Operators.
	Plus                   // +
	Minus                  // -
	Star                   // *
	Slash                  // /
	Percent                // %
	Amp                    // &
	Pipe                   // |
	Caret                  // ^
	Bang                   // !
	Tilde                  // ~
	Assign                 // =
	Question               // ?
	Colon                  // :
	Dot                    // .
	PlusPlus               // ++
	MinusMinus             // --
	AndAnd                 // &&
	OrOr                   // ||
	EqEq                   // ==
	BangEq                 // !=
	LtEq                   // <=
	GtEq                   // >=
	Shl                    // <<
	PlusAssign             // +=
	MinusAssign            // -=
	StarAssign             // *=
	SlashAssign            // /=
	PercentAssign          // %=
	AmpAssign              // &=
	PipeAssign             // |=
	CaretAssign            // ^=
	ShlAssign              // <<=
	QuestionQuestion       // ??
	QuestionQuestionAssign // ??=
	QuestionDot            // ?.
	Arrow                  // ->
	FatArrow               // =>
	ColonColon             // ::
	DotDot                 // ..

	kindCount
)

var kindNames = [...]string{
	Invalid:                "Invalid",
	EOF:                    "EOF",
	Ident:                  "Ident",
	KwNew:                  "KwNew",
	KwStackalloc:           "KwStackalloc",
	KwTypeof:               "KwTypeof",
	KwSizeof:               "KwSizeof",
	KwNameof:               "KwNameof",
	KwDefault:              "KwDefault",
	KwChecked:              "KwChecked",
	KwUnchecked:            "KwUnchecked",
	KwIf:                   "KwIf",
	KwWhile:                "KwWhile",
	KwFor:                  "KwFor",
	KwForeach:              "KwForeach",
	KwSwitch:               "KwSwitch",
	KwCatch:                "KwCatch",
	KwUsing:                "KwUsing",
	KwLock:                 "KwLock",
	KwFixed:                "KwFixed",
	KwWhen:                 "KwWhen",
	KwReturn:               "KwReturn",
	KwThis:                 "KwThis",
	KwBase:                 "KwBase",
	KwIn:                   "KwIn",
	KwOut:                  "KwOut",
	KwRef:                  "KwRef",
	KwIs:                   "KwIs",
	KwAs:                   "KwAs",
	KwNull:                 "KwNull",
	KwTrue:                 "KwTrue",
	KwFalse:                "KwFalse",
	KwAwait:                "KwAwait",
	KwThrow:                "KwThrow",
	KwYield:                "KwYield",
	KwCase:                 "KwCase",
	KwElse:                 "KwElse",
	KwDo:                   "KwDo",
	KwPredefType:           "KwPredefType",
	KwOther:                "KwOther",
	IntLit:                 "IntLit",
	RealLit:                "RealLit",
	StringLit:              "StringLit",
	CharLit:                "CharLit",
	LParen:                 "LParen",
	RParen:                 "RParen",
	LBracket:               "LBracket",
	RBracket:               "RBracket",
	LBrace:                 "LBrace",
	RBrace:                 "RBrace",
	Lt:                     "Lt",
	Gt:                     "Gt",
	Comma:                  "Comma",
	Semicolon:              "Semicolon",
	Plus:                   "Plus",
	Minus:                  "Minus",
	Star:                   "Star",
	Slash:                  "Slash",
	Percent:                "Percent",
	Amp:                    "Amp",
	Pipe:                   "Pipe",
	Caret:                  "Caret",
	Bang:                   "Bang",
	Tilde:                  "Tilde",
	Assign:                 "Assign",
	Question:               "Question",
	Colon:                  "Colon",
	Dot:                    "Dot",
	PlusPlus:               "PlusPlus",
	MinusMinus:             "MinusMinus",
	AndAnd:                 "AndAnd",
	OrOr:                   "OrOr",
	EqEq:                   "EqEq",
	BangEq:                 "BangEq",
	LtEq:                   "LtEq",
	GtEq:                   "GtEq",
	Shl:                    "Shl",
	PlusAssign:             "PlusAssign",
	MinusAssign:            "MinusAssign",
	StarAssign:             "StarAssign",
	SlashAssign:            "SlashAssign",
	PercentAssign:          "PercentAssign",
	AmpAssign:              "AmpAssign",
	PipeAssign:             "PipeAssign",
	CaretAssign:            "CaretAssign",
	ShlAssign:              "ShlAssign",
	QuestionQuestion:       "QuestionQuestion",
	QuestionQuestionAssign: "QuestionQuestionAssign",
	QuestionDot:            "QuestionDot",
	Arrow:                  "Arrow",
	FatArrow:               "FatArrow",
	ColonColon:             "ColonColon",
	DotDot:                 "DotDot",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether k marks the end of input.
func (k Kind) IsEOF() bool { return k == EOF }

// IsKeyword reports whether k is any reserved or contextual keyword.
func (k Kind) IsKeyword() bool { return k >= KwNew && k <= KwOther }

// IsLiteral reports whether k is a numeric, string or char literal.
// true/false/null lex as keywords.
func (k Kind) IsLiteral() bool { return k >= IntLit && k <= CharLit }

// IsOpenBracket reports whether k opens a paren, bracket or brace.
func (k Kind) IsOpenBracket() bool { return k == LParen || k == LBracket || k == LBrace }

// IsCloseBracket reports whether k closes a paren, bracket or brace.
func (k Kind) IsCloseBracket() bool { return k == RParen || k == RBracket || k == RBrace }

// IsAngle reports whether k is an angle-bracket candidate.
func (k Kind) IsAngle() bool { return k == Lt || k == Gt }

// IsOperator reports whether k is an operator symbol. Angle candidates count
// as operators here; the classifier decides which of them are brackets.
func (k Kind) IsOperator() bool { return k == Lt || k == Gt || (k >= Plus && k <= DotDot) }

// IsAssignment reports whether k is '=' or a compound assignment.
func (k Kind) IsAssignment() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign,
		AmpAssign, PipeAssign, CaretAssign, ShlAssign, QuestionQuestionAssign:
		return true
	default:
		return false
	}
}
