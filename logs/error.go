package logs

import (
	"context"
	"errors"
	"fmt"
)

func WrapSource(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	source, ok := SourceFrom(ctx)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("source: %s", source))
}
