package ir

// Truth reports whether node is truthy: non-empty containers and strings,
// non-zero numbers and true.
func Truth(node *Node) bool {
	switch node.Type {
	case ObjectType, ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case NumberType:
		return node.Float64 != 0
	case BoolType:
		return node.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
