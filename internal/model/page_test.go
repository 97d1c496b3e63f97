package model

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTestPage(t *testing.T) {
	p := NewTestPage("<div>PLAYER</div>")

	assert.Equal(t, template.HTML("<div>PLAYER</div>"), p.Fragment)
	assert.Len(t, p.Controls, 4)
	assert.Equal(t, "Load Test Video", p.Controls[0].Label)
	assert.Equal(t, template.JS("checkStatus"), p.Controls[3].Func)
	assert.Equal(t, "video/mp4", p.Media.MIME)
	assert.Equal(t, "videoCube", p.OverlayID)
	assert.Equal(t, 1000, p.StatusDelayMS)
}
