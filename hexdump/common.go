package hexdump

import (
	"github.com/pkg/errors"
)

func Fatal(err error) error {
	return errors.WithStack(err)
}

func Fatalf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}
