package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/nuelxcodev/luxe/internal/usecase"
)

// System writes to the host clipboard. Callers treat failure as non-fatal;
// headless hosts routinely have no clipboard at all.
type System struct{}

func NewSystem() System { return System{} }

func (System) Copy(text string) error {
	return clipboard.WriteAll(text)
}

var _ usecase.Clipboard = System{}
