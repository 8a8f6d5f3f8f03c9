package render

import "github.com/go-drift/infinitelist/pkg/errors"

type quietHandler struct{}

func (quietHandler) HandleError(*errors.ListError)  {}
func (quietHandler) HandlePanic(*errors.PanicError) {}
func (quietHandler) HandleRenderError(*errors.RenderError) {}

// setQuietHandler silences content failures and returns a restore func.
func setQuietHandler() func() {
	prev := errors.SetHandler(quietHandler{})
	return func() { errors.SetHandler(prev) }
}
