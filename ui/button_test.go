package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pthm/hxui"
)

func TestButtonDefaults(t *testing.T) {
	t.Parallel()

	result, err := hxui.TestRender(Button(ButtonProps{}, Text("Save")))
	require.NoError(t, err)

	btn := result.Find("button")
	require.NotNil(t, btn)
	require.True(t, btn.HasClass("h-10"))
	require.True(t, btn.HasClass("px-3"))
	require.True(t, btn.HasClass("bg-primary"))
	require.True(t, btn.HasClass("inline-flex"))
	require.Equal(t, "Save", btn.Text())

	typ, _ := btn.Attr("type")
	require.Equal(t, "button", typ)
	_, disabled := btn.Attr("disabled")
	require.False(t, disabled)
	require.Nil(t, result.Find("svg"), "idle button must not render a spinner")
}

func TestButtonClassVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		props   ButtonProps
		want    []string
		notWant []string
	}{
		{
			name:    "destructive default",
			props:   ButtonProps{Intent: "destructive"},
			want:    []string{"bg-destructive", "text-destructive-foreground"},
			notWant: []string{"bg-primary"},
		},
		{
			name:    "outline destructive",
			props:   ButtonProps{Variant: "outline", Intent: "destructive"},
			want:    []string{"border", "bg-background", "border-destructive", "text-destructive"},
			notWant: []string{"border-input"},
		},
		{
			name:    "icon only small",
			props:   ButtonProps{Size: "sm", Icon: true},
			want:    []string{"h-9", "w-9", "p-2"},
			notWant: []string{"px-3", "h-10"},
		},
		{
			name:    "icon only extra small has no compound",
			props:   ButtonProps{Size: "xs", Icon: true},
			want:    []string{"h-8", "px-2", "text-xs"},
			notWant: []string{"w-9", "text-sm"},
		},
		{
			name:    "full width replaces inline-flex",
			props:   ButtonProps{Width: "full"},
			want:    []string{"flex", "w-full"},
			notWant: []string{"inline-flex"},
		},
		{
			name:    "caller class wins",
			props:   ButtonProps{Size: "sm", Class: "h-20"},
			want:    []string{"h-20", "px-3"},
			notWant: []string{"h-9"},
		},
		{
			name:    "unknown variant ignored",
			props:   ButtonProps{Variant: "neon"},
			want:    []string{"h-10"},
			notWant: []string{"bg-primary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := strings.Fields(ButtonClass(tt.props))
			for _, w := range tt.want {
				require.Contains(t, tokens, w)
			}
			for _, nw := range tt.notWant {
				require.NotContains(t, tokens, nw)
			}
		})
	}
}

func TestButtonTypeAndDisabled(t *testing.T) {
	t.Parallel()

	result, err := hxui.TestRender(Button(ButtonProps{Form: "profile", Type: "reset", IsLoading: true}, Text("Go")))
	require.NoError(t, err)

	btn := result.Find("button")
	typ, _ := btn.Attr("type")
	require.Equal(t, "submit", typ)
	form, _ := btn.Attr("form")
	require.Equal(t, "profile", form)
	_, disabled := btn.Attr("disabled")
	require.True(t, disabled)
	busy, _ := btn.Attr("aria-busy")
	require.Equal(t, "true", busy)

	result, err = hxui.TestRender(Button(ButtonProps{Type: "reset"}))
	require.NoError(t, err)
	typ, _ = result.Find("button").Attr("type")
	require.Equal(t, "reset", typ)
}

func TestButtonLoaderInsertedWithoutIcon(t *testing.T) {
	t.Parallel()

	result, err := hxui.TestRender(Button(ButtonProps{IsLoading: true}, Text("Saving")))
	require.NoError(t, err)

	svg := result.Find("svg")
	require.NotNil(t, svg)
	icon, _ := svg.Attr("data-icon")
	require.Equal(t, "loader", icon)
	require.True(t, svg.HasClass("animate-spin"))
	require.True(t, svg.HasClass("mr-2"))
}

func TestButtonIconReplacesLoader(t *testing.T) {
	t.Parallel()

	chevron := ChevronRightIcon("")

	result, err := hxui.TestRender(Button(ButtonProps{Variant: "outline", Icon: true},
		ButtonIcon(ButtonIconProps{Icon: chevron}),
	))
	require.NoError(t, err)

	svgs := result.FindAll("svg")
	require.Len(t, svgs, 1)
	icon, _ := svgs[0].Attr("data-icon")
	require.Equal(t, "chevron-right", icon)

	span := result.Find("span")
	require.NotNil(t, span)
	require.True(t, span.HasClass("h-4"))
	require.False(t, span.HasClass("mr-2"), "icon-only button has no gap")

	result, err = hxui.TestRender(Button(ButtonProps{IsLoading: true},
		ButtonIcon(ButtonIconProps{Icon: chevron}),
		Text("Next"),
	))
	require.NoError(t, err)

	svgs = result.FindAll("svg")
	require.Len(t, svgs, 1, "loading icon replaces the icon and no extra loader is added")
	icon, _ = svgs[0].Attr("data-icon")
	require.Equal(t, "loader", icon)
	require.True(t, svgs[0].HasClass("mr-2"))
}

func TestButtonIconOutsideButton(t *testing.T) {
	t.Parallel()

	_, err := hxui.TestRender(ButtonIcon(ButtonIconProps{Icon: ChevronRightIcon("")}))
	require.True(t, errors.Is(err, ErrOutsideButton))

	_, err = hxui.TestRender(ButtonLoader(ButtonLoaderProps{Show: true}))
	require.True(t, errors.Is(err, ErrOutsideButton))
}

func TestButtonStateDoesNotLeak(t *testing.T) {
	t.Parallel()

	// A loader rendered after the button, at the same level, has no button.
	page := Card(CardProps{},
		Button(ButtonProps{IsLoading: true}),
		ButtonLoader(ButtonLoaderProps{}),
	)
	_, err := hxui.TestRender(page)
	require.ErrorIs(t, err, ErrOutsideButton)
}

func TestButtonLoaderShow(t *testing.T) {
	t.Parallel()

	result, err := hxui.TestRender(Button(ButtonProps{}, ButtonLoader(ButtonLoaderProps{Show: true})))
	require.NoError(t, err)
	require.Len(t, result.FindAll("svg"), 1)
}

func TestButtonRefAndAttrs(t *testing.T) {
	t.Parallel()

	ref := &Ref{}
	result, err := hxui.TestRender(Button(ButtonProps{
		Ref:   ref,
		Attrs: map[string]any{"hx-post": "/save", "class": "mt-4", "data-x": 3, "hidden": false},
	}))
	require.NoError(t, err)
	require.NotEmpty(t, ref.ID)

	btn := result.Find("button")
	id, _ := btn.Attr("id")
	require.Equal(t, ref.ID, id)
	post, _ := btn.Attr("hx-post")
	require.Equal(t, "/save", post)
	x, _ := btn.Attr("data-x")
	require.Equal(t, "3", x)
	_, hidden := btn.Attr("hidden")
	require.False(t, hidden)
	require.True(t, btn.HasClass("mt-4"))
}

func TestButtonLoaderVisibility(t *testing.T) {
	t.Parallel()

	// A Button without a ButtonIcon adds its own loader, so a loading
	// button with an explicit loader shows two spinners.
	tests := []struct {
		name     string
		loading  bool
		show     bool
		spinners int
	}{
		{"idle", false, false, 0},
		{"idle forced", false, true, 1},
		{"loading", true, false, 2},
		{"loading forced", true, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := hxui.TestRender(Button(ButtonProps{IsLoading: tt.loading},
				ButtonLoader(ButtonLoaderProps{Show: tt.show}),
			))
			require.NoError(t, err)
			require.Len(t, result.FindAll("svg"), tt.spinners)
		})
	}
}
