package ui

import (
	"errors"
	"fmt"

	"github.com/stigoleg/movement/internal/watch"
)

// RenderError formats err for the terminal. Parse errors get a bordered box
// with the accepted formats underneath; anything else is a single red line.
func RenderError(err error) string {
	var pe *watch.ParseError
	if !errors.As(err, &pe) {
		return Current.Error.Render(err.Error())
	}

	header := Current.Error.
		Bold(true).
		PaddingLeft(0).
		PaddingRight(0).
		Render(err.Error())

	details := Current.Help.
		PaddingLeft(0).
		PaddingRight(0).
		Render(watch.FormatHelp)

	return Current.ErrorBox.Render(fmt.Sprintf("%s\n\n%s", header, details))
}
