package middleware

import (
	"sync/atomic"

	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"github.com/gin-gonic/gin"
)

// DisplayModeHeader carries the global light/dark flag on every response
const DisplayModeHeader = "X-Display-Mode"

// DisplayMode holds the presentation flag applied by the state container
type DisplayMode struct {
	mode atomic.Value
}

// NewDisplayMode creates a DisplayMode starting in light mode
func NewDisplayMode() *DisplayMode {
	d := &DisplayMode{}
	d.mode.Store(model.DisplayModeLight)
	return d
}

// ApplyDisplayMode records the mode for subsequent responses
func (d *DisplayMode) ApplyDisplayMode(mode model.DisplayMode) {
	d.mode.Store(mode)
}

// Current returns the applied mode
func (d *DisplayMode) Current() model.DisplayMode {
	return d.mode.Load().(model.DisplayMode)
}

// modeWriter stamps the display mode header at the moment headers are written
type modeWriter struct {
	gin.ResponseWriter
	display *DisplayMode
}

func (w *modeWriter) stamp() {
	if !w.Written() {
		w.Header().Set(DisplayModeHeader, string(w.display.Current()))
	}
}

func (w *modeWriter) WriteHeader(code int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *modeWriter) WriteHeaderNow() {
	w.stamp()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *modeWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

func (w *modeWriter) WriteString(s string) (int, error) {
	w.stamp()
	return w.ResponseWriter.WriteString(s)
}

// Middleware writes the current mode to DisplayModeHeader. A toggle is
// reflected in its own response.
func (d *DisplayMode) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &modeWriter{ResponseWriter: c.Writer, display: d}
		c.Next()
	}
}
