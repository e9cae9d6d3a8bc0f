package logs

// Span identifies one logical operation in log records. It travels in
// a context.Context under SpanKey.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
