//go:build !cgo

package window

import "github.com/matzehuels/plotlib/pkg/errors"

func run(string, int, int, DrawFunc) error {
	return errors.New(errors.ErrCodeDisplayUnavailable, "window mode requires cgo (build/run with CGO_ENABLED=1)")
}
