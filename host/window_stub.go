//go:build !cgo

package host

import "errors"

func RunWindow(_ WindowConfig, _ func(Env) error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), or use -headless")
}
