package gui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/wordsearch/internal/dictionary"
	"codeberg.org/snonux/wordsearch/internal/search"
)

// Heading is shown above the search form
const Heading = "Welcome to online word search !!!"

// WordSearch is the search form and the result area below it
type WordSearch struct {
	widget.BaseWidget

	ctx      context.Context
	ctrl     *search.Controller
	dispatch func(func())

	input           *widget.Entry
	searchButton    *ttwidget.Button
	emptyInputError *widget.Label
	notFoundError   *widget.Label
	meanings        *fyne.Container
	audioPlayer     *AudioPlayer

	container *fyne.Container
}

// NewWordSearch creates the widget and subscribes it to ctrl. player is
// reloaded by ctrl whenever a new clip arrives while it is shown.
func NewWordSearch(ctx context.Context, ctrl *search.Controller, player *AudioPlayer) *WordSearch {
	w := &WordSearch{
		ctx:         ctx,
		ctrl:        ctrl,
		dispatch:    fyne.Do,
		audioPlayer: player,
	}

	w.input = widget.NewEntry()
	w.input.SetPlaceHolder(search.Placeholder)
	w.input.OnChanged = ctrl.SetInput
	w.input.OnSubmitted = func(string) { w.onSearch() }

	w.searchButton = ttwidget.NewButtonWithIcon("Search", theme.SearchIcon(), w.onSearch)
	w.searchButton.SetToolTip("Look the word up (Enter)")

	w.emptyInputError = widget.NewLabel("")
	w.emptyInputError.Importance = widget.DangerImportance
	w.emptyInputError.Hide()

	w.notFoundError = widget.NewLabel("")
	w.notFoundError.Importance = widget.WarningImportance
	w.notFoundError.Hide()

	w.meanings = container.NewVBox()
	player.Hide()

	heading := widget.NewLabelWithStyle(Heading, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	form := container.NewBorder(
		nil, nil,
		widget.NewLabel("Enter word :"),
		w.searchButton,
		w.input,
	)

	w.container = container.NewBorder(
		container.NewVBox(heading, form, w.emptyInputError, w.notFoundError, widget.NewSeparator()),
		w.audioPlayer,
		nil, nil,
		container.NewVScroll(w.meanings),
	)

	ctrl.SetAudioReloader(player)
	ctrl.OnChange(func(st search.State) {
		w.dispatch(func() { w.render(st) })
	})

	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer implements fyne.Widget
func (w *WordSearch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.container)
}

// FocusInput puts the keyboard focus on the search field
func (w *WordSearch) FocusInput(c fyne.Canvas) {
	c.Focus(w.input)
}

// onSearch handles the search button and the Enter key
func (w *WordSearch) onSearch() {
	go w.ctrl.Submit(w.ctx)
}

// render shows st. Must run on the Fyne main thread.
func (w *WordSearch) render(st search.State) {
	w.input.SetPlaceHolder(st.Placeholder)
	if w.input.Text != st.Input {
		w.input.SetText(st.Input)
	}

	setMessage(w.emptyInputError, st.EmptyInputError())
	setMessage(w.notFoundError, st.NotFoundError())

	w.meanings.RemoveAll()
	for _, m := range st.Meanings {
		w.meanings.Add(meaningView(m))
	}
	w.meanings.Refresh()

	if st.HasAudio() {
		w.audioPlayer.SetSource(st.AudioURL)
		w.audioPlayer.Show()
	} else {
		w.audioPlayer.Clear()
		w.audioPlayer.Hide()
	}
}

func setMessage(l *widget.Label, text string) {
	l.SetText(text)
	if text == "" {
		l.Hide()
	} else {
		l.Show()
	}
}

func meaningView(m dictionary.Meaning) fyne.CanvasObject {
	box := container.NewVBox(
		widget.NewLabelWithStyle(m.PartOfSpeech, fyne.TextAlignLeading, fyne.TextStyle{Bold: true, Italic: true}),
	)
	for _, d := range m.Definitions {
		def := widget.NewLabel(d.Definition)
		def.Wrapping = fyne.TextWrapWord
		box.Add(def)
	}
	return container.NewPadded(box)
}
