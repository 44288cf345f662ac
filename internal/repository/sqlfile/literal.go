package sqlfile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Null       = "NULL"
	TimeLayout = "2006-01-02 15:04:05"
)

// Literal renders a Go value as an SQL literal.
// Text is single quoted with embedded quotes doubled; nil and nil pointers become NULL.
func Literal(v any) string {
	switch v := v.(type) {
	case nil:
		return Null
	case string:
		return Quote(v)
	case *string:
		if v == nil {
			return Null
		}
		return Quote(*v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case *int64:
		if v == nil {
			return Null
		}
		return strconv.FormatInt(*v, 10)
	case time.Time:
		return Quote(v.Format(TimeLayout))
	case *time.Time:
		if v == nil {
			return Null
		}
		return Quote(v.Format(TimeLayout))
	case decimal.Decimal:
		return v.String()
	case fmt.Stringer:
		return Quote(v.String())
	default:
		panic(fmt.Sprintf("sqlfile: no literal for %T", v))
	}
}

func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
