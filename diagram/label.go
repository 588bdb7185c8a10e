package diagram

import (
	"encoding/json"
	"fmt"
)

// LabelOf renders a hap value as box text. Strings are used verbatim and
// Stringers through String; anything else is JSON-encoded so numbers and
// small structures stay readable.
func LabelOf(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
