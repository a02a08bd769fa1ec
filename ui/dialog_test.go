package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pthm/hxui"
)

func TestDialogStructure(t *testing.T) {
	t.Parallel()

	page := Dialog(DialogProps{ID: "edit"},
		DialogTrigger(DialogTriggerProps{Class: "underline"}, Text("Edit")),
		DialogContent(DialogContentProps{},
			DialogHeader(DialogPartProps{},
				DialogTitle(DialogPartProps{}, Text("Edit profile")),
				DialogDescription(DialogPartProps{}, Text("Change your details.")),
			),
			DialogBody(DialogPartProps{}, Text("Form")),
			DialogFooter(DialogPartProps{}, Button(ButtonProps{}, Text("Save"))),
		),
	)

	result, err := hxui.TestRender(page)
	require.NoError(t, err)

	trigger := result.Find("button")
	require.Equal(t, "Edit", trigger.Text())
	require.True(t, trigger.HasClass("underline"))
	controls, _ := trigger.Attr("aria-controls")
	require.Equal(t, "edit", controls)
	expanded, _ := trigger.Attr("aria-expanded")
	require.Equal(t, "false", expanded)
	popup, _ := trigger.Attr("aria-haspopup")
	require.Equal(t, "dialog", popup)
	onclick, _ := trigger.Attr("onclick")
	require.Contains(t, onclick, "showModal")

	dialog := result.Find("dialog")
	require.NotNil(t, dialog)
	id, _ := dialog.Attr("id")
	require.Equal(t, "edit", id)
	labelledBy, _ := dialog.Attr("aria-labelledby")
	require.Equal(t, "edit-title", labelledBy)
	describedBy, _ := dialog.Attr("aria-describedby")
	require.Equal(t, "edit-description", describedBy)
	state, _ := dialog.Attr("data-state")
	require.Equal(t, "closed", state)
	_, open := dialog.Attr("open")
	require.False(t, open)

	title := result.Find("h2")
	titleID, _ := title.Attr("id")
	require.Equal(t, "edit-title", titleID)
	require.Equal(t, "Edit profile", title.Text())

	desc := result.Find("p")
	descID, _ := desc.Attr("id")
	require.Equal(t, "edit-description", descID)

	overlay := dialog.Children()
	require.Len(t, overlay, 1)
	require.True(t, overlay[0].HasClass("backdrop-blur-sm"))

	panel := overlay[0].Children()
	require.Len(t, panel, 1)
	require.True(t, panel[0].HasClass("sm:max-w-lg"))
	require.True(t, panel[0].HasClass("-sm:border-t"))

	// Header, body, footer, then the built-in close button.
	parts := panel[0].Children()
	require.Len(t, parts, 4)
	closeBtn := parts[3]
	require.Equal(t, "button", closeBtn.Tag)
	require.Equal(t, "Close", closeBtn.Text())
	onclick, _ = closeBtn.Attr("onclick")
	require.Contains(t, onclick, "close()")
}

func TestDialogOpen(t *testing.T) {
	t.Parallel()

	result, err := hxui.TestRender(Dialog(DialogProps{ID: "d", Open: true},
		DialogTrigger(DialogTriggerProps{}),
		DialogContent(DialogContentProps{HideClose: true}),
	))
	require.NoError(t, err)

	expanded, _ := result.Find("button").Attr("aria-expanded")
	require.Equal(t, "true", expanded)

	dialog := result.Find("dialog")
	_, open := dialog.Attr("open")
	require.True(t, open)
	state, _ := dialog.Attr("data-state")
	require.Equal(t, "open", state)

	require.Len(t, result.FindAll("button"), 1, "HideClose drops the close button")
}

func TestDialogContentVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		props   DialogContentProps
		want    []string
		notWant []string
	}{
		{
			name:    "large",
			props:   DialogContentProps{Size: "lg"},
			want:    []string{"sm:max-w-3xl"},
			notWant: []string{"sm:max-w-lg"},
		},
		{
			name:    "full mobile viewport",
			props:   DialogContentProps{MobileViewport: "full"},
			want:    []string{"h-screen"},
			notWant: []string{"-sm:max-h-[90%]"},
		},
		{
			name:    "caller class",
			props:   DialogContentProps{Size: "xl", Class: "p-8"},
			want:    []string{"sm:max-w-6xl", "p-8"},
			notWant: []string{"p-6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := hxui.TestRender(Dialog(DialogProps{}, DialogContent(tt.props)))
			require.NoError(t, err)

			panel := result.Find("dialog").Children()[0].Children()[0]
			for _, w := range tt.want {
				require.True(t, panel.HasClass(w), "missing %s in %v", w, panel.Classes())
			}
			for _, nw := range tt.notWant {
				require.False(t, panel.HasClass(nw), "unexpected %s", nw)
			}
		})
	}
}

func TestDialogGeneratedID(t *testing.T) {
	t.Parallel()

	ref := &Ref{}
	result, err := hxui.TestRender(Dialog(DialogProps{Ref: ref},
		DialogTrigger(DialogTriggerProps{}),
		DialogContent(DialogContentProps{}),
	))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(ref.ID, "hxui-"))

	controls, _ := result.Find("button").Attr("aria-controls")
	require.Equal(t, ref.ID, controls)
	id, _ := result.Find("dialog").Attr("id")
	require.Equal(t, ref.ID, id)
}

func TestDialogPartsOutsideDialog(t *testing.T) {
	t.Parallel()

	_, err := hxui.TestRender(DialogTitle(DialogPartProps{}, Text("x")))
	require.True(t, errors.Is(err, ErrOutsideDialog))

	_, err = hxui.TestRender(DialogContent(DialogContentProps{}))
	require.ErrorIs(t, err, ErrOutsideDialog)

	_, err = hxui.TestRender(DialogTrigger(DialogTriggerProps{}))
	require.ErrorIs(t, err, ErrOutsideDialog)

	// Layout parts need no dialog.
	_, err = hxui.TestRender(DialogFooter(DialogPartProps{}))
	require.NoError(t, err)
}

func TestDialogScriptsSyncState(t *testing.T) {
	t.Parallel()

	result, err := hxui.TestRender(Dialog(DialogProps{ID: "confirm"},
		DialogTrigger(DialogTriggerProps{}, Text("Delete")),
		DialogContent(DialogContentProps{}),
	))
	require.NoError(t, err)

	trigger := result.FindByAttr("aria-controls", "confirm")
	require.NotNil(t, trigger)
	onclick, _ := trigger.Attr("onclick")
	require.Contains(t, onclick, "d.showModal()")
	require.Contains(t, onclick, "setAttribute('data-state',s)")
	require.Contains(t, onclick, "setAttribute('aria-expanded',String(open))")
	require.True(t, strings.HasSuffix(onclick, "(d,true)"))

	dialog := result.Find("dialog")
	onclose, ok := dialog.Attr("onclose")
	require.True(t, ok, "closing by any means resets the parts")
	require.Contains(t, onclose, "setAttribute('data-state',s)")
	require.True(t, strings.HasSuffix(onclose, "(this,false)"))

	// Every part the script updates carries data-state to begin with.
	overlay := dialog.Children()[0]
	state, _ := overlay.Attr("data-state")
	require.Equal(t, "closed", state)
	panel := overlay.Children()[0]
	state, _ = panel.Attr("data-state")
	require.Equal(t, "closed", state)
}
