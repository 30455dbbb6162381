package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/aperricio/qt-dlp/internal/config"
	"github.com/aperricio/qt-dlp/internal/model"
)

func testProbeResult() *model.ProbeResult {
	return &model.ProbeResult{
		Title: "Test Video",
		Video: []model.FormatInfo{
			{ID: "137", Kind: model.StreamVideo, Ext: "mp4", Height: 1080, FPS: 30, Codec: "avc1", Filesize: 104857600},
			{ID: "136", Kind: model.StreamVideo, Ext: "mp4", Height: 720, FPS: 30, Codec: "avc1", Filesize: 52428800},
		},
		Audio: []model.FormatInfo{
			{ID: "140", Kind: model.StreamAudio, Ext: "m4a", Bitrate: 129.5, Codec: "mp4a", Filesize: 3145728},
		},
	}
}

func TestFormatsPanelSelection(t *testing.T) {
	test.NewApp()

	fp := NewFormatsPanel(NewLocalization())
	result := testProbeResult()
	fp.SetResult(result, config.LayoutTwoColumns)

	if sel := fp.Selection(); !sel.IsEmpty() {
		t.Errorf("fresh panel selection = %+v, expected empty", sel)
	}

	fp.videoGroup.SetSelected(result.Video[0].Describe())
	fp.audioGroup.SetSelected(result.Audio[0].Describe())

	sel := fp.Selection()
	if sel.VideoID != "137" {
		t.Errorf("VideoID = %q, expected 137", sel.VideoID)
	}
	if sel.AudioID != "140" {
		t.Errorf("AudioID = %q, expected 140", sel.AudioID)
	}
	if !sel.Separate() {
		t.Error("both streams selected should require the mux pass")
	}
}

func TestFormatsPanelDuplicateLabels(t *testing.T) {
	test.NewApp()

	fp := NewFormatsPanel(NewLocalization())
	result := &model.ProbeResult{
		Video: []model.FormatInfo{
			{ID: "137", Kind: model.StreamVideo, Ext: "mp4", Height: 1080, FPS: 30, Codec: "avc1"},
			{ID: "399", Kind: model.StreamVideo, Ext: "mp4", Height: 1080, FPS: 30, Codec: "avc1"},
		},
	}
	fp.SetResult(result, config.LayoutSingleColumn)

	if len(fp.videoGroup.Options) != 2 {
		t.Fatalf("got %d options, expected both duplicates listed", len(fp.videoGroup.Options))
	}
	if fp.videoGroup.Options[0] == fp.videoGroup.Options[1] {
		t.Error("duplicate labels must be disambiguated")
	}

	fp.videoGroup.SetSelected(fp.videoGroup.Options[1])
	if sel := fp.Selection(); sel.VideoID != "399" {
		t.Errorf("VideoID = %q, expected 399", sel.VideoID)
	}
}

func TestFormatsPanelClear(t *testing.T) {
	test.NewApp()

	fp := NewFormatsPanel(NewLocalization())
	fp.SetResult(testProbeResult(), config.LayoutTwoColumns)
	fp.videoGroup.SetSelected(fp.videoGroup.Options[0])

	fp.Clear()
	if sel := fp.Selection(); !sel.IsEmpty() {
		t.Errorf("selection after Clear() = %+v, expected empty", sel)
	}
}
