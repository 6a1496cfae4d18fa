package logging

import "context"

type fieldsKeyType struct{}

var fieldsKey = fieldsKeyType{}

// ContextWith attaches key/value pairs that every *Context log call on ctx
// will include.
func ContextWith(ctx context.Context, kv ...any) context.Context {
	prev, _ := ctx.Value(fieldsKey).([]any)
	merged := make([]any, 0, len(prev)+len(kv))
	merged = append(merged, prev...)
	merged = append(merged, kv...)
	return context.WithValue(ctx, fieldsKey, merged)
}

func withContextFields(ctx context.Context, kv []any) []any {
	if ctx == nil {
		return kv
	}
	fields, _ := ctx.Value(fieldsKey).([]any)
	if len(fields) == 0 {
		return kv
	}
	out := make([]any, 0, len(fields)+len(kv))
	out = append(out, fields...)
	return append(out, kv...)
}
