package logs

import "context"

type sourceKey struct{}

// Source is the path of the program a log record or error belongs to.
type Source string

func WithSource(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, sourceKey{}, Source(path))
}

func SourceFrom(ctx context.Context) (Source, bool) {
	v, ok := ctx.Value(sourceKey{}).(Source)
	return v, ok
}
