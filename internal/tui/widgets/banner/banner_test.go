package banner

import (
	"strings"
	"testing"
)

func TestHiddenBannerRendersNothing(t *testing.T) {
	b := NewBanner()
	if out := b.View(Info, "still stored", false); out != "" {
		t.Fatalf("expected empty render for hidden banner, got %q", out)
	}
}

func TestVisibleBanners(t *testing.T) {
	b := NewBanner()
	if out := b.View(Info, "5", true); !strings.Contains(out, "5") {
		t.Fatalf("expected info text in render: %q", out)
	}
	out := b.View(Error, "Status error", true)
	if !strings.Contains(out, "Status error") || !strings.Contains(out, "✗") {
		t.Fatalf("expected error marker and text: %q", out)
	}
}
