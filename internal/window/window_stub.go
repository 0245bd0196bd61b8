//go:build !cgo

package window

import (
	"errors"

	"github.com/idilsaglam/calc/internal/model"
)

// Run reports that this binary was built without a window backend.
func Run() ([]model.Entry, error) {
	return nil, errors.New("window: built without cgo, use the terminal calculator")
}
