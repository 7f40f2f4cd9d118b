package qom

// Operator represents comparison operators usable in conditions.
type Operator string

const (
	EQ Operator = "="
	NE Operator = "!="
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="

	LIKE    Operator = "LIKE"
	NotLike Operator = "NOT LIKE"

	// Postfix operators; the comparison's right side is absent.
	IsNull    Operator = "IS NULL"
	IsNotNull Operator = "IS NOT NULL"
)

// postfix reports whether the operator takes no right operand.
func (op Operator) postfix() bool {
	return op == IsNull || op == IsNotNull
}
