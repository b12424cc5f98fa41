package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldService   = "service"
	FieldError     = "error"
	FieldTaxonomy  = "taxonomy"
	FieldKind      = "kind"
	FieldStack     = "stack"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
// Non-string keys and a trailing key without a value are dropped.
//
//	logger.Error("invariant violated", logger.Fields("kind", "state"))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
