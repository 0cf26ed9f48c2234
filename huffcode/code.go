package huffcode

// Code is a single codeword: the low Len bits of Bits, read most
// significant bit first.
type Code struct {
	Bits uint64
	Len  uint8
}

// String renders the codeword as "0"/"1" digits in transmission order.
func (c Code) String() string {
	if c.Len == 0 {
		return ""
	}
	buf := make([]byte, c.Len)
	for i := uint8(0); i < c.Len; i++ {
		if c.Bits&(1<<(c.Len-1-i)) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// CodeTable maps each symbol to its codeword. Because every symbol is
// a tree leaf, no codeword is a prefix of another.
type CodeTable map[byte]Code

// Codes derives the code table by walking the tree depth first,
// appending a 0 for each left step and a 1 for each right step. The
// walk visits every leaf exactly once; a nil tree yields an empty
// table.
func (n *Node) Codes() CodeTable {
	table := make(CodeTable)
	if n == nil {
		return table
	}
	walk(n, Code{}, table)
	return table
}

func walk(n *Node, prefix Code, table CodeTable) {
	if n.Leaf {
		table[n.Symbol] = prefix
		return
	}
	if n.Left != nil {
		walk(n.Left, Code{Bits: prefix.Bits << 1, Len: prefix.Len + 1}, table)
	}
	if n.Right != nil {
		walk(n.Right, Code{Bits: prefix.Bits<<1 | 1, Len: prefix.Len + 1}, table)
	}
}
