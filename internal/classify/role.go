package classify

// Role is the disambiguated syntactic role of a token.
type Role uint8

const (
	RoleNone Role = iota

	KeywordOpenParen
	CallOpenParen
	TupleOpenParen
	CastOpenParen
	GroupingOpenParen
	KeywordCloseParen
	CallCloseParen
	TupleCloseParen
	CastCloseParen
	GroupingCloseParen

	ArrayRankOpenBracket
	StackAllocOpenBracket
	ImplicitArrayOpenBracket
	AttributeOpenBracket
	IndexOpenBracket
	// IndexInitializerOpenBracket opens an index initializer: new Foo { [0] = x }.
	IndexInitializerOpenBracket
	CollectionOpenBracket
	ArrayRankCloseBracket
	StackAllocCloseBracket
	ImplicitArrayCloseBracket
	AttributeCloseBracket
	IndexCloseBracket
	IndexInitializerCloseBracket
	CollectionCloseBracket

	ArrayInitializerOpenBrace
	ObjectInitializerOpenBrace
	NestedInitializerOpenBrace
	BlockOpenBrace
	ArrayInitializerCloseBrace
	ObjectInitializerCloseBrace
	NestedInitializerCloseBrace
	BlockCloseBrace

	GenericOpenAngle
	GenericCloseAngle
	ComparisonOperator
	// ShiftFirst and ShiftSecond are the halves of ">>" or ">>=".
	ShiftFirst
	ShiftSecond

	SeparatorComma
	RankComma

	StatementSemicolon

	BinaryOperator
	UnaryPrefixOperator
	UnaryPostfixOperator
	MemberAccess
	PointerDeclarator
	NullableMarker
	ConditionalOperator
	RangeOperator

	roleCount
)

var roleNames = [...]string{
	RoleNone:                     "None",
	KeywordOpenParen:             "KeywordOpenParen",
	CallOpenParen:                "CallOpenParen",
	TupleOpenParen:               "TupleOpenParen",
	CastOpenParen:                "CastOpenParen",
	GroupingOpenParen:            "GroupingOpenParen",
	KeywordCloseParen:            "KeywordCloseParen",
	CallCloseParen:               "CallCloseParen",
	TupleCloseParen:              "TupleCloseParen",
	CastCloseParen:               "CastCloseParen",
	GroupingCloseParen:           "GroupingCloseParen",
	ArrayRankOpenBracket:         "ArrayRankOpenBracket",
	StackAllocOpenBracket:        "StackAllocOpenBracket",
	ImplicitArrayOpenBracket:     "ImplicitArrayOpenBracket",
	AttributeOpenBracket:         "AttributeOpenBracket",
	IndexOpenBracket:             "IndexOpenBracket",
	IndexInitializerOpenBracket:  "IndexInitializerOpenBracket",
	CollectionOpenBracket:        "CollectionOpenBracket",
	ArrayRankCloseBracket:        "ArrayRankCloseBracket",
	StackAllocCloseBracket:       "StackAllocCloseBracket",
	ImplicitArrayCloseBracket:    "ImplicitArrayCloseBracket",
	AttributeCloseBracket:        "AttributeCloseBracket",
	IndexCloseBracket:            "IndexCloseBracket",
	IndexInitializerCloseBracket: "IndexInitializerCloseBracket",
	CollectionCloseBracket:       "CollectionCloseBracket",
	ArrayInitializerOpenBrace:    "ArrayInitializerOpenBrace",
	ObjectInitializerOpenBrace:   "ObjectInitializerOpenBrace",
	NestedInitializerOpenBrace:   "NestedInitializerOpenBrace",
	BlockOpenBrace:               "BlockOpenBrace",
	ArrayInitializerCloseBrace:   "ArrayInitializerCloseBrace",
	ObjectInitializerCloseBrace:  "ObjectInitializerCloseBrace",
	NestedInitializerCloseBrace:  "NestedInitializerCloseBrace",
	BlockCloseBrace:              "BlockCloseBrace",
	GenericOpenAngle:             "GenericOpenAngle",
	GenericCloseAngle:            "GenericCloseAngle",
	ComparisonOperator:           "ComparisonOperator",
	ShiftFirst:                   "ShiftFirst",
	ShiftSecond:                  "ShiftSecond",
	SeparatorComma:               "SeparatorComma",
	RankComma:                    "RankComma",
	StatementSemicolon:           "StatementSemicolon",
	BinaryOperator:               "BinaryOperator",
	UnaryPrefixOperator:          "UnaryPrefixOperator",
	UnaryPostfixOperator:         "UnaryPostfixOperator",
	MemberAccess:                 "MemberAccess",
	PointerDeclarator:            "PointerDeclarator",
	NullableMarker:               "NullableMarker",
	ConditionalOperator:          "ConditionalOperator",
	RangeOperator:                "RangeOperator",
}

func (r Role) String() string {
	if int(r) < len(roleNames) && roleNames[r] != "" {
		return roleNames[r]
	}
	return "Role(?)"
}

// closing returns the role of the partner of an opening paren, bracket or
// brace role.
func closing(open Role) Role {
	switch open {
	case KeywordOpenParen:
		return KeywordCloseParen
	case CallOpenParen:
		return CallCloseParen
	case TupleOpenParen:
		return TupleCloseParen
	case CastOpenParen:
		return CastCloseParen
	case GroupingOpenParen:
		return GroupingCloseParen
	case ArrayRankOpenBracket:
		return ArrayRankCloseBracket
	case StackAllocOpenBracket:
		return StackAllocCloseBracket
	case ImplicitArrayOpenBracket:
		return ImplicitArrayCloseBracket
	case AttributeOpenBracket:
		return AttributeCloseBracket
	case IndexOpenBracket:
		return IndexCloseBracket
	case IndexInitializerOpenBracket:
		return IndexInitializerCloseBracket
	case CollectionOpenBracket:
		return CollectionCloseBracket
	case ArrayInitializerOpenBrace:
		return ArrayInitializerCloseBrace
	case ObjectInitializerOpenBrace:
		return ObjectInitializerCloseBrace
	case NestedInitializerOpenBrace:
		return NestedInitializerCloseBrace
	case BlockOpenBrace:
		return BlockCloseBrace
	}
	return RoleNone
}

// IsInitializer reports whether r is one of the initializer brace roles.
func (r Role) IsInitializer() bool {
	switch r {
	case ArrayInitializerOpenBrace, ObjectInitializerOpenBrace, NestedInitializerOpenBrace,
		ArrayInitializerCloseBrace, ObjectInitializerCloseBrace, NestedInitializerCloseBrace:
		return true
	}
	return false
}
