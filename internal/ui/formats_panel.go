package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/aperricio/qt-dlp/internal/config"
	"github.com/aperricio/qt-dlp/internal/model"
)

// FormatsPanel renders the probed format listing as two selectable groups,
// one per stream kind. The user may pick a video format, an audio format,
// or both; picking both routes the download through the mux pass.
type FormatsPanel struct {
	localization *Localization

	videoGroup *widget.RadioGroup
	audioGroup *widget.RadioGroup

	// Describe() labels are not guaranteed unique, ids are
	videoByLabel map[string]string
	audioByLabel map[string]string

	content *fyne.Container
}

// NewFormatsPanel creates an empty formats panel
func NewFormatsPanel(localization *Localization) *FormatsPanel {
	fp := &FormatsPanel{
		localization: localization,
		videoByLabel: make(map[string]string),
		audioByLabel: make(map[string]string),
		content:      container.NewStack(),
	}

	fp.videoGroup = widget.NewRadioGroup(nil, nil)
	fp.audioGroup = widget.NewRadioGroup(nil, nil)
	return fp
}

// Container returns the renderable panel
func (fp *FormatsPanel) Container() fyne.CanvasObject {
	return fp.content
}

// SetResult fills the panel from a probe result using the configured layout
func (fp *FormatsPanel) SetResult(result *model.ProbeResult, layout config.FormatsLayout) {
	fp.videoByLabel = make(map[string]string)
	fp.audioByLabel = make(map[string]string)

	fp.videoGroup = widget.NewRadioGroup(fp.buildOptions(result.Video, fp.videoByLabel), nil)
	fp.audioGroup = widget.NewRadioGroup(fp.buildOptions(result.Audio, fp.audioByLabel), nil)

	videoBox := container.NewVBox(
		widget.NewLabelWithStyle(fp.localization.GetText(KeyVideoFormats), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		fp.videoGroup,
	)
	audioBox := container.NewVBox(
		widget.NewLabelWithStyle(fp.localization.GetText(KeyAudioFormats), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		fp.audioGroup,
	)

	var inner fyne.CanvasObject
	if layout == config.LayoutSingleColumn {
		inner = container.NewVBox(videoBox, widget.NewSeparator(), audioBox)
	} else {
		inner = container.NewGridWithColumns(2, videoBox, audioBox)
	}

	scroll := container.NewVScroll(inner)
	scroll.SetMinSize(fyne.NewSize(0, FormatListMinHeight))

	fp.content.Objects = []fyne.CanvasObject{scroll}
	fp.content.Refresh()
}

// buildOptions turns formats into radio labels and records the label to id
// mapping. Duplicate labels get the id appended so both stay selectable.
func (fp *FormatsPanel) buildOptions(formats []model.FormatInfo, byLabel map[string]string) []string {
	options := make([]string, 0, len(formats))
	for _, f := range formats {
		label := f.Describe()
		if _, taken := byLabel[label]; taken {
			label = label + " [" + f.ID + "]"
		}
		byLabel[label] = f.ID
		options = append(options, label)
	}
	return options
}

// Selection returns the chosen format ids
func (fp *FormatsPanel) Selection() model.Selection {
	return model.Selection{
		VideoID: fp.videoByLabel[fp.videoGroup.Selected],
		AudioID: fp.audioByLabel[fp.audioGroup.Selected],
	}
}

// Clear empties the panel
func (fp *FormatsPanel) Clear() {
	fp.videoByLabel = make(map[string]string)
	fp.audioByLabel = make(map[string]string)
	fp.videoGroup = widget.NewRadioGroup(nil, nil)
	fp.audioGroup = widget.NewRadioGroup(nil, nil)
	fp.content.Objects = nil
	fp.content.Refresh()
}
