package observability

import "go.uber.org/zap"

// Thin wrappers over zap field constructors so domain packages do not import
// zap directly.

// String creates a string field.
func String(key, value string) zap.Field {
	return zap.String(key, value)
}

// Int creates an int field.
func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

// Bool creates a bool field.
func Bool(key string, value bool) zap.Field {
	return zap.Bool(key, value)
}

// Float64 creates a float64 field.
func Float64(key string, value float64) zap.Field {
	return zap.Float64(key, value)
}

// Error creates an error field.
func Error(err error) zap.Field {
	return zap.Error(err)
}
