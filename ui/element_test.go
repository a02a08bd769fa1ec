package ui

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/pthm/hxui"
)

func TestElementEscapesCallerAttributeKeys(t *testing.T) {
	t.Parallel()

	html, err := hxui.RenderString(context.Background(), Button(ButtonProps{
		Attrs: templ.Attributes{`onx"><script>alert(1)</script>`: "1"},
	}, Text("Go")))
	require.NoError(t, err)
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, "&lt;script&gt;")
}

func TestElementPointerAndKeyValueAttributes(t *testing.T) {
	t.Parallel()

	vals := `{"id":7}`
	on, off := true, false
	var missing *string

	result, err := hxui.TestRender(Card(CardProps{Attrs: templ.Attributes{
		"hx-vals":     &vals,
		"hidden":      &on,
		"inert":       &off,
		"data-empty":  missing,
		"data-mode":   templ.KV("compact", true),
		"data-off":    templ.KV("wide", false),
		"href":        templ.SafeURL("/plans?id=1"),
		"data-weight": 2,
	}}))
	require.NoError(t, err)

	root := result.Find("div")
	v, _ := root.Attr("hx-vals")
	require.Equal(t, vals, v)
	_, hidden := root.Attr("hidden")
	require.True(t, hidden)
	_, inert := root.Attr("inert")
	require.False(t, inert)
	_, empty := root.Attr("data-empty")
	require.False(t, empty)
	mode, _ := root.Attr("data-mode")
	require.Equal(t, "compact", mode)
	_, wide := root.Attr("data-off")
	require.False(t, wide)
	href, _ := root.Attr("href")
	require.Equal(t, "/plans?id=1", href)
	weight, _ := root.Attr("data-weight")
	require.Equal(t, "2", weight)

	require.False(t, result.HTMLContains("0x"), "pointer values must not print as addresses")
}

func TestElementCallerAttributeOverridesInPlace(t *testing.T) {
	t.Parallel()

	html, err := hxui.RenderString(context.Background(), Button(ButtonProps{
		Attrs: templ.Attributes{"type": "submit", "class": "mt-4"},
	}))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(html, `<button class="`), html)
	require.Equal(t, 1, strings.Count(html, "type="))
	require.Contains(t, html, `type="submit"`)
}

func TestRefBoundWhenBuilt(t *testing.T) {
	t.Parallel()

	ref := &Ref{}
	btn := Button(ButtonProps{Ref: ref})
	require.True(t, strings.HasPrefix(ref.ID, "hxui-"), "id is known before rendering")

	explicit := &Ref{ID: "old"}
	Input(InputProps{Ref: explicit, Attrs: templ.Attributes{"id": "email"}})
	require.Equal(t, "email", explicit.ID)

	result, err := hxui.TestRender(btn)
	require.NoError(t, err)
	id, _ := result.Find("button").Attr("id")
	require.Equal(t, ref.ID, id)
}

func TestSharedComponentRendersConcurrently(t *testing.T) {
	t.Parallel()

	ref := &Ref{}
	page := Card(CardProps{},
		Button(ButtonProps{Ref: ref, IsLoading: true}, Text("Save")),
		Dialog(DialogProps{Ref: &Ref{}},
			DialogTrigger(DialogTriggerProps{Ref: &Ref{}}),
			DialogContent(DialogContentProps{}),
		),
	)

	const workers = 8
	out := make([]string, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			html, err := hxui.RenderString(context.Background(), page)
			if err != nil {
				html = err.Error()
			}
			out[i] = html
		}()
	}
	wg.Wait()

	for _, html := range out {
		require.Equal(t, out[0], html)
		require.Contains(t, html, `id="`+ref.ID+`"`)
	}
}
