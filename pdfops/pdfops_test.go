package pdfops

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPageSelection(t *testing.T) {
	sel, err := pageSelection(nil)
	if err != nil || sel != nil {
		t.Fatalf("empty selection = %v, %v; want nil, nil", sel, err)
	}

	sel, err = pageSelection([]int{1, 3, 12})
	if err != nil {
		t.Fatal(err)
	}
	if len(sel) != 3 || sel[0] != "1" || sel[1] != "3" || sel[2] != "12" {
		t.Fatalf("selection = %v", sel)
	}

	if _, err := pageSelection([]int{0}); err == nil {
		t.Fatal("expected error for page 0")
	}
	if _, err := pageSelection([]int{-2}); err == nil {
		t.Fatal("expected error for negative page")
	}
}

func TestTextStampDetails(t *testing.T) {
	d := TextStamp{Text: "CONFIDENTIAL", Rotation: 45, Opacity: 0.2, Scale: 0.4}.details()
	for _, want := range []string{"scalefactor:0.40 rel", "opacity:0.20", "rotation:45.0"} {
		if !strings.Contains(d, want) {
			t.Errorf("details %q missing %q", d, want)
		}
	}

	// Zero opacity and scale fall back to defaults rather than vanishing.
	d = TextStamp{Text: "DRAFT"}.details()
	for _, want := range []string{"scalefactor:0.50 rel", "opacity:0.30", "rotation:0.0"} {
		if !strings.Contains(d, want) {
			t.Errorf("default details %q missing %q", d, want)
		}
	}
}

func TestImageStampDetails(t *testing.T) {
	d := ImageStamp{ImagePath: "sig.png", Scale: 0.25, Absolute: true}.details()
	for _, want := range []string{"scale:0.25", "pos:full", "op:1.00"} {
		if !strings.Contains(d, want) {
			t.Errorf("details %q missing %q", d, want)
		}
	}
	if d := (ImageStamp{ImagePath: "logo.png"}).details(); !strings.Contains(d, "pos:c") {
		t.Errorf("relative stamp details %q missing pos:c", d)
	}
}

func TestMergeRequiresInputs(t *testing.T) {
	o := New(nil)
	err := o.Merge(context.Background(), nil, "out.pdf")
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("err = %v, want ErrNoInput", err)
	}
}

func TestImagesToPDFRequiresInputs(t *testing.T) {
	o := New(nil)
	err := o.ImagesToPDF(context.Background(), nil, "out.pdf", ImportOptions{})
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("err = %v, want ErrNoInput", err)
	}
}

func TestSplitRejectsBadSpan(t *testing.T) {
	o := New(nil)
	if err := o.Split(context.Background(), "in.pdf", "out", 0); err == nil {
		t.Fatal("expected error for span 0")
	}
}

func TestEncryptRequiresPassword(t *testing.T) {
	o := New(nil)
	if err := o.Encrypt(context.Background(), "in.pdf", "out.pdf", "", "", PermissionsNone); err == nil {
		t.Fatal("expected error for empty passwords")
	}
}

func TestWatermarkTextRequiresText(t *testing.T) {
	o := New(nil)
	if err := o.WatermarkText(context.Background(), "in.pdf", "out.pdf", TextStamp{}); err == nil {
		t.Fatal("expected error for empty watermark text")
	}
}

func TestOperationsHonorCanceledContext(t *testing.T) {
	o := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := o.Merge(ctx, []string{"a.pdf"}, "out.pdf"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Merge err = %v", err)
	}
	if err := o.Optimize(ctx, "a.pdf", "b.pdf"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Optimize err = %v", err)
	}
	if _, err := o.ExtractText(ctx, "a.pdf"); !errors.Is(err, context.Canceled) {
		t.Fatalf("ExtractText err = %v", err)
	}
}
