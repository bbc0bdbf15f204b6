package stage

import "testing"

func BenchmarkFillSpan(b *testing.B) {
	st := New(1024, 1024)
	b.ReportAllocs()
	for b.Loop() {
		st.FillSpan(512, 0, 1023, Red)
	}
}

func BenchmarkSetPixel(b *testing.B) {
	st := New(1024, 1024)
	b.ReportAllocs()
	for b.Loop() {
		st.SetPixel(512, 512, Red)
	}
}

func BenchmarkLine(b *testing.B) {
	st := New(1024, 1024)
	style := StrokeOnly(White)
	b.ReportAllocs()
	for b.Loop() {
		Line(st, Pt(-500, -380), Pt(480, 410), style)
	}
}

func BenchmarkCircleFill(b *testing.B) {
	st := New(1024, 1024)
	style := FillOnly(Red)
	b.ReportAllocs()
	for b.Loop() {
		Circle(st, Pt(0, 0), 300, style)
	}
}

func BenchmarkCircleFillStroke(b *testing.B) {
	st := New(1024, 1024)
	style := NewStyle(NewFill(Red), NewStroke(White).WithWidth(4))
	b.ReportAllocs()
	for b.Loop() {
		Circle(st, Pt(0, 0), 300, style)
	}
}

func BenchmarkTriangleFill(b *testing.B) {
	st := New(1024, 1024)
	style := FillOnly(Green)
	b.ReportAllocs()
	for b.Loop() {
		Triangle(st, Pt(-400, -300), Pt(420, -100), Pt(0, 390), style)
	}
}

func BenchmarkPathFill(b *testing.B) {
	st := New(1024, 1024)
	path := NewPath([]Point{
		Pt(-400, -300), Pt(400, -250), Pt(350, 300), Pt(-300, 380),
	}, true)
	style := FillOnly(Blue)
	b.ReportAllocs()
	for b.Loop() {
		path.Render(st, style)
	}
}
