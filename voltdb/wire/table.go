package wire

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ties/voltdb-client-go/voltdb/common"
)

// Null sentinels used inside row data for the fixed-width column types
const (
	nullTinyInt  int8  = math.MinInt8
	nullSmallInt int16 = math.MinInt16
	nullInteger  int32 = math.MinInt32
	nullBigInt   int64 = math.MinInt64
)

// Table is one decoded tabular payload together with its response envelope.
// Row access follows a cursor model: AdvanceRow moves to the next row, the
// typed getters read columns of the current row.
type Table struct {
	Info *ResponseInfo

	ColumnTypes []Type
	ColumnNames []string

	rows   [][]any // decoded cell values, nil = SQL NULL
	cursor int     // current row, -1 before the first AdvanceRow
}

// ParseTable decodes the tabular payload following the response envelope.
// A response can carry several tables; like the rest of the driver this
// decodes the first one, which is all the system procedures in scope return.
func ParseTable(r *Reader, info *ResponseInfo) (*Table, error) {
	t := &Table{Info: info, cursor: -1}

	if info.TableCount == 0 {
		return t, nil
	}

	if _, err := r.ReadInt32("table total length"); err != nil {
		return nil, err
	}
	if _, err := r.ReadInt32("table metadata length"); err != nil {
		return nil, err
	}
	if _, err := r.ReadInt8("table status"); err != nil {
		return nil, err
	}

	colCount, err := r.ReadInt16("column count")
	if err != nil {
		return nil, err
	}
	if colCount < 0 {
		return nil, common.NewDecodeError("negative column count")
	}

	t.ColumnTypes = make([]Type, colCount)
	for i := range t.ColumnTypes {
		ct, err := r.ReadInt8("column type")
		if err != nil {
			return nil, err
		}
		t.ColumnTypes[i] = Type(ct)
	}

	t.ColumnNames = make([]string, colCount)
	for i := range t.ColumnNames {
		if t.ColumnNames[i], err = r.ReadString("column name"); err != nil {
			return nil, err
		}
	}

	rowCount, err := r.ReadInt32("row count")
	if err != nil {
		return nil, err
	}
	if rowCount < 0 {
		return nil, common.NewDecodeError("negative row count")
	}

	t.rows = make([][]any, 0, rowCount)
	for i := int32(0); i < rowCount; i++ {
		if _, err := r.ReadInt32("row length"); err != nil {
			return nil, err
		}
		row := make([]any, colCount)
		for c := range row {
			if row[c], err = readCell(r, t.ColumnTypes[c]); err != nil {
				return nil, err
			}
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

// readCell decodes one cell of the given column type, nil for SQL NULL
func readCell(r *Reader, ct Type) (any, error) {
	switch ct {
	case TypeNull:
		return nil, nil
	case TypeTinyInt:
		v, err := r.ReadInt8("tinyint cell")
		if err != nil || v == nullTinyInt {
			return nil, err
		}
		return v, nil
	case TypeSmallInt:
		v, err := r.ReadInt16("smallint cell")
		if err != nil || v == nullSmallInt {
			return nil, err
		}
		return v, nil
	case TypeInteger:
		v, err := r.ReadInt32("integer cell")
		if err != nil || v == nullInteger {
			return nil, err
		}
		return v, nil
	case TypeBigInt:
		v, err := r.ReadInt64("bigint cell")
		if err != nil || v == nullBigInt {
			return nil, err
		}
		return v, nil
	case TypeFloat:
		v, err := r.ReadFloat64("float cell")
		if err != nil {
			return nil, err
		}
		return v, nil
	case TypeString:
		length, err := r.ReadInt32("string cell length")
		if err != nil {
			return nil, err
		}
		if length < 0 {
			return nil, nil
		}
		bs, err := r.ReadRaw(int(length), "string cell")
		if err != nil {
			return nil, err
		}
		return string(bs), nil
	case TypeTimestamp:
		v, err := r.ReadInt64("timestamp cell")
		if err != nil {
			return nil, err
		}
		if v == nullBigInt {
			return nil, nil
		}
		return time.UnixMicro(v).UTC(), nil
	case TypeVarbinary:
		bs, err := r.ReadVarbinary("varbinary cell")
		if err != nil {
			return nil, err
		}
		if bs == nil {
			return nil, nil
		}
		return bs, nil
	default:
		return nil, common.NewDecodeError(fmt.Sprintf("unsupported column type %d", ct))
	}
}

// --------------------------------------------------------------------------
// Row access
// --------------------------------------------------------------------------

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return len(t.ColumnTypes)
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnIndex returns the index of the named column, case insensitive
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, n := range t.ColumnNames {
		if strings.EqualFold(n, name) {
			return i, true
		}
	}
	return 0, false
}

// AdvanceRow moves the cursor to the next row. It must be called before the
// first row can be read and returns false once the rows are exhausted.
func (t *Table) AdvanceRow() bool {
	if t.cursor+1 >= len(t.rows) {
		return false
	}
	t.cursor++
	return true
}

// Rewind resets the cursor so the table can be iterated again
func (t *Table) Rewind() {
	t.cursor = -1
}

// cell returns the value at the given column of the current row
func (t *Table) cell(col int) (any, error) {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return nil, fmt.Errorf("no current row, call AdvanceRow first")
	}
	if col < 0 || col >= len(t.ColumnTypes) {
		return nil, fmt.Errorf("column index %d out of range", col)
	}
	return t.rows[t.cursor][col], nil
}

// GetString reads a string column of the current row. ok is false for NULL.
func (t *Table) GetString(col int) (val string, ok bool, err error) {
	c, err := t.cell(col)
	if err != nil || c == nil {
		return "", false, err
	}
	v, isStr := c.(string)
	if !isStr {
		return "", false, fmt.Errorf("column %d is %s, not string", col, t.ColumnTypes[col])
	}
	return v, true, nil
}

// GetInt64 reads any integer column of the current row as int64
func (t *Table) GetInt64(col int) (val int64, ok bool, err error) {
	c, err := t.cell(col)
	if err != nil || c == nil {
		return 0, false, err
	}
	switch v := c.(type) {
	case int8:
		return int64(v), true, nil
	case int16:
		return int64(v), true, nil
	case int32:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	default:
		return 0, false, fmt.Errorf("column %d is %s, not an integer type", col, t.ColumnTypes[col])
	}
}

// GetFloat64 reads a float column of the current row
func (t *Table) GetFloat64(col int) (val float64, ok bool, err error) {
	c, err := t.cell(col)
	if err != nil || c == nil {
		return 0, false, err
	}
	v, isFloat := c.(float64)
	if !isFloat {
		return 0, false, fmt.Errorf("column %d is %s, not float", col, t.ColumnTypes[col])
	}
	return v, true, nil
}

// GetTimestamp reads a timestamp column of the current row
func (t *Table) GetTimestamp(col int) (val time.Time, ok bool, err error) {
	c, err := t.cell(col)
	if err != nil || c == nil {
		return time.Time{}, false, err
	}
	v, isTime := c.(time.Time)
	if !isTime {
		return time.Time{}, false, fmt.Errorf("column %d is %s, not timestamp", col, t.ColumnTypes[col])
	}
	return v, true, nil
}

// GetBytes reads a varbinary column of the current row
func (t *Table) GetBytes(col int) (val []byte, ok bool, err error) {
	c, err := t.cell(col)
	if err != nil || c == nil {
		return nil, false, err
	}
	v, isBytes := c.([]byte)
	if !isBytes {
		return nil, false, fmt.Errorf("column %d is %s, not varbinary", col, t.ColumnTypes[col])
	}
	return v, true, nil
}

// HasError converts a non-success response status into an error
func (t *Table) HasError() error {
	if t.Info == nil {
		return nil
	}
	return t.Info.Err()
}

// String renders the table for human consumption, one row per line
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.ColumnNames, "\t"))
	sb.WriteString("\n")
	for _, row := range t.rows {
		for i, c := range row {
			if i > 0 {
				sb.WriteString("\t")
			}
			if c == nil {
				sb.WriteString("NULL")
			} else {
				sb.WriteString(fmt.Sprintf("%v", c))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
