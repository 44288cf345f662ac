package sqlfile

import (
	"bytes"
	"fmt"
	"strings"
)

const rule = "-- =========================================="

// Table is one multi-row INSERT: rows hold values in Columns order
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

func (t *Table) Add(values ...any) {
	if len(values) != len(t.Columns) {
		panic(fmt.Sprintf("sqlfile: table %s has %d columns, row has %d values", t.Name, len(t.Columns), len(values)))
	}
	t.Rows = append(t.Rows, values)
}

// Script accumulates an SQL file in memory
type Script struct {
	buf bytes.Buffer
}

func (s *Script) Comment(lines ...string) *Script {
	for _, line := range lines {
		s.buf.WriteString("-- " + line + "\n")
	}
	return s
}

// Banner is a comment framed by rule lines
func (s *Script) Banner(lines ...string) *Script {
	s.buf.WriteString(rule + "\n")
	s.Comment(lines...)
	s.buf.WriteString(rule + "\n")
	return s
}

func (s *Script) Use(database string) *Script {
	return s.Statement("USE " + database)
}

// Statement writes sql terminated by a semicolon
func (s *Script) Statement(sql string) *Script {
	s.buf.WriteString(strings.TrimSuffix(sql, ";") + ";\n")
	return s
}

func (s *Script) Blank() *Script {
	s.buf.WriteString("\n")
	return s
}

// Insert renders the table as a single INSERT. An empty table only leaves a comment,
// since INSERT ... VALUES needs at least one row.
func (s *Script) Insert(t Table) *Script {
	if len(t.Rows) == 0 {
		return s.Comment(fmt.Sprintf("no rows for %s", t.Name))
	}

	fmt.Fprintf(&s.buf, "INSERT INTO %s (%s) VALUES\n", t.Name, strings.Join(t.Columns, ", "))
	for i, row := range t.Rows {
		values := make([]string, len(row))
		for j, v := range row {
			values[j] = Literal(v)
		}

		s.buf.WriteString("(" + strings.Join(values, ", ") + ")")
		if i < len(t.Rows)-1 {
			s.buf.WriteString(",\n")
		} else {
			s.buf.WriteString(";\n")
		}
	}

	return s
}

func (s *Script) Bytes() []byte {
	return s.buf.Bytes()
}

func (s *Script) String() string {
	return s.buf.String()
}
