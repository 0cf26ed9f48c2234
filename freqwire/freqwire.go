// Package freqwire persists frequency tables in protobuf wire format.
//
// The compressed stream itself carries no table, so a decoder rebuilds
// the code tree from this sidecar. The schema is
//
//	message FrequencyTable {
//	  repeated Entry entries = 1;
//	}
//	message Entry {
//	  uint32 symbol = 1;
//	  uint64 count  = 2;
//	}
//
// encoded directly with protowire; the messages are small and fixed
// enough that generated code would be overkill. Entries are marshaled
// in ascending symbol order, so equal tables produce equal bytes.
package freqwire

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/garrettjohnston99/Huffman-Encoder/huffcode"
)

const (
	fieldEntry  = 1 // FrequencyTable.entries
	entrySymbol = 1 // Entry.symbol
	entryCount  = 2 // Entry.count
)

// ErrMalformed is returned for sidecar data that does not decode to a
// valid frequency table.
var ErrMalformed = errors.New("freqwire: malformed frequency table")

// Marshal encodes the table with one Entry submessage per symbol.
func Marshal(ft huffcode.FrequencyTable) []byte {
	symbols := make([]int, 0, len(ft))
	for s := range ft {
		symbols = append(symbols, int(s))
	}
	sort.Ints(symbols)

	var out, entry []byte
	for _, s := range symbols {
		entry = entry[:0]
		entry = protowire.AppendTag(entry, entrySymbol, protowire.VarintType)
		entry = protowire.AppendVarint(entry, uint64(s))
		entry = protowire.AppendTag(entry, entryCount, protowire.VarintType)
		entry = protowire.AppendVarint(entry, ft[byte(s)])
		out = protowire.AppendTag(out, fieldEntry, protowire.BytesType)
		out = protowire.AppendBytes(out, entry)
	}
	return out
}

// Unmarshal decodes a table marshaled by Marshal. Unknown fields are
// skipped; duplicate symbols, out-of-range symbols, and zero counts
// are rejected, since none of them can come from a real frequency
// scan.
func Unmarshal(data []byte) (huffcode.FrequencyTable, error) {
	ft := make(huffcode.FrequencyTable)
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		data = data[n:]

		if num != fieldEntry || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		entry, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		data = data[n:]

		symbol, count, err := parseEntry(entry)
		if err != nil {
			return nil, err
		}
		if _, dup := ft[symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol 0x%02x", ErrMalformed, symbol)
		}
		ft[symbol] = count
	}
	return ft, nil
}

func parseEntry(b []byte) (byte, uint64, error) {
	var (
		symbol, count      uint64
		haveSym, haveCount bool
	)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return 0, 0, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == entrySymbol && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return 0, 0, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
			}
			if v > 0xff {
				return 0, 0, fmt.Errorf("%w: symbol %d out of byte range", ErrMalformed, v)
			}
			symbol, haveSym = v, true
			b = b[n:]
		case num == entryCount && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return 0, 0, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
			}
			count, haveCount = v, true
			b = b[n:]
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return 0, 0, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	if !haveSym || !haveCount {
		return 0, 0, fmt.Errorf("%w: incomplete entry", ErrMalformed)
	}
	if count == 0 {
		return 0, 0, fmt.Errorf("%w: zero count for symbol 0x%02x", ErrMalformed, byte(symbol))
	}
	return byte(symbol), count, nil
}

// WriteFile marshals ft to the sidecar at path.
func WriteFile(path string, ft huffcode.FrequencyTable) error {
	return os.WriteFile(path, Marshal(ft), 0o644)
}

// ReadFile reads and unmarshals the sidecar at path.
func ReadFile(path string) (huffcode.FrequencyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}
