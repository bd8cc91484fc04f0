package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-listingwizard/pkg/render"
	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

type captureRenderer struct {
	name  string
	state wizard.State
	err   error
}

func (c *captureRenderer) Name() string        { return c.name }
func (c *captureRenderer) ContentType() string { return "text/plain" }

func (c *captureRenderer) Render(_ context.Context, state wizard.State, _ render.RenderOptions) ([]byte, error) {
	c.state = state
	if c.err != nil {
		return nil, c.err
	}
	return []byte(state.Back.Label), nil
}

func TestRegistry_RegisterAndList(t *testing.T) {
	registry := render.NewRegistry(&captureRenderer{name: "b"}, &captureRenderer{name: "a"})

	if diff := cmp.Diff([]string{"a", "b"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if err := registry.Register(&captureRenderer{name: "a"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if err := registry.Register(&captureRenderer{}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if !registry.Has("b") || registry.Has("c") {
		t.Fatalf("unexpected Has results")
	}
	if _, err := registry.Get("c"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}

func TestRegistry_RenderLocalizes(t *testing.T) {
	capture := &captureRenderer{name: "capture"}
	registry := render.NewRegistry(capture)

	out, err := registry.Render(context.Background(), "capture", trackedState(false), render.RenderOptions{
		Translator: stubTranslator{wizard.BackLabelKey: "Atrás"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "Atrás" {
		t.Fatalf("want localized output, got %q", out)
	}
}

func TestRegistry_RenderErrors(t *testing.T) {
	boom := errors.New("boom")
	registry := render.NewRegistry(&captureRenderer{name: "broken", err: boom})

	if _, err := registry.Render(context.Background(), "broken", wizard.State{}, render.RenderOptions{}); !errors.Is(err, boom) {
		t.Fatalf("want wrapped renderer error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := registry.Render(ctx, "broken", wizard.State{}, render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
