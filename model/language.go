package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
)

// LanguageBytes is a single entry of a repository language breakdown
type LanguageBytes struct {
	Name  string
	Bytes int
}

// LanguageBreakdown maps language names to byte counts for one repository
// entries keep the order in which github returned them, a plain map would lose it
type LanguageBreakdown []LanguageBytes

// Total returns the sum of bytes over the whole breakdown
func (b LanguageBreakdown) Total() int {
	total := 0

	for _, l := range b {
		total += l.Bytes
	}

	return total
}

// Top returns at most n entries in their natural order, no sort is applied
func (b LanguageBreakdown) Top(n int) LanguageBreakdown {
	if n < 0 {
		n = 0
	}

	if len(b) <= n {
		return b
	}

	return b[:n]
}

// UnmarshalJSON decodes a github languages object, ie {"Go": 1200, "HTML": 30}
// the object is walked with jsonparser to keep the keys order
func (b *LanguageBreakdown) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	breakdown := LanguageBreakdown{}

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*b = breakdown
		return nil
	}

	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
		if dataType != jsonparser.Number {
			return fmt.Errorf("language %q has a non numeric byte count", string(key))
		}

		name, err := jsonparser.ParseString(key)
		if err != nil {
			return err
		}

		count, err := jsonparser.ParseInt(value)
		if err != nil {
			return err
		}

		breakdown = append(breakdown, LanguageBytes{Name: name, Bytes: int(count)})
		return nil
	})

	if err != nil {
		return err
	}

	*b = breakdown
	return nil
}

// MarshalJSON encodes the breakdown back to a json object with the same keys order
func (b LanguageBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, l := range b {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(l.Name)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(l.Bytes))
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
