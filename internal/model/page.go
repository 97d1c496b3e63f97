package model

import "html/template"

// Control is one button of the test panel. Func names the inline script
// function the button calls.
type Control struct {
	Label string
	Func  template.JS
}

type Media struct {
	URL      string
	Filename string
	MIME     string
}

// TestPage is everything the synthesized page template needs.
type TestPage struct {
	Title    string
	Heading  string
	Controls []Control
	Fragment template.HTML // embedded verbatim

	Media         Media
	PlayerGlobal  template.JS // window.<PlayerGlobal>.loadMedia
	OverlayGlobal template.JS // window.<OverlayGlobal>.show / .hide
	OverlayID     string
	StatusDelayMS int
}

var DefaultControls = []Control{
	{Label: "Load Test Video", Func: "loadTestVideo"},
	{Label: "Show Video Cube Directly", Func: "showVideoCubeDirectly"},
	{Label: "Hide Video Cube", Func: "hideVideoCube"},
	{Label: "Check Status", Func: "checkStatus"},
}

var SampleVideo = Media{
	URL:      "https://www.w3schools.com/html/mov_bbb.mp4",
	Filename: "test-video.mp4",
	MIME:     "video/mp4",
}

// NewTestPage wraps fragment in the fixed video cube test page.
func NewTestPage(fragment string) TestPage {
	return TestPage{
		Title:         "Test Video Cube - Fixed Version",
		Heading:       "Video Cube Test - Fixed Version",
		Controls:      DefaultControls,
		Fragment:      template.HTML(fragment),
		Media:         SampleVideo,
		PlayerGlobal:  "mediaPlayer",
		OverlayGlobal: "VideoCube",
		OverlayID:     "videoCube",
		StatusDelayMS: 1000,
	}
}
