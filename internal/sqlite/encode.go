package sqlite

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/larder/pkg/settings"
)

// encodeValue renders a typed value to the raw textual form stored in the
// database. Arrays and maps are stored as JSON so they round-trip through
// the coercer; scalars use their plain textual form.
func encodeValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case settings.Symbol:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []any, []string, map[string]any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}
