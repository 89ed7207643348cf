package gosu

// Audio is an inert placeholder.
//
// Deprecated: audio is not managed by the window. The type only exists so
// existing callers of Window.Audio keep compiling.
type Audio struct{}

var dummyAudio Audio

// Audio returns the shared placeholder, the same for every window.
//
// Deprecated: the returned value does nothing.
func (w *Window) Audio() *Audio {
	return &dummyAudio
}
