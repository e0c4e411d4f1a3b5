package series

import (
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/plotlib/pkg/errors"
)

func TestNew(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	tests := []struct {
		name    string
		sname   string
		x, y    []float64
		opts    []Option
		wantErr bool
		wantLen int
	}{
		{name: "valid", sname: "a", x: []float64{1, 2, 3}, y: []float64{4, 5, 6}, wantLen: 3},
		{name: "single point", sname: "a", x: []float64{1}, y: []float64{1}, wantLen: 1},
		{name: "length mismatch", sname: "a", x: []float64{1, 2}, y: []float64{1, 2, 3}, wantErr: true},
		{name: "empty", sname: "a", x: nil, y: nil, wantErr: true},
		{name: "empty name", sname: "", x: []float64{1}, y: []float64{1}, wantErr: true},
		{name: "nan filtered", sname: "a", x: []float64{1, nan, 3}, y: []float64{1, 2, 3}, wantLen: 2},
		{name: "inf filtered", sname: "a", x: []float64{1, 2, 3}, y: []float64{inf, 2, 3}, wantLen: 2},
		{name: "all nan", sname: "a", x: []float64{nan, nan}, y: []float64{1, 2}, wantErr: true},
		{name: "bad line width", sname: "a", x: []float64{1}, y: []float64{1},
			opts: []Option{WithStyle(Style{LineWidth: 0})}, wantErr: true},
		{name: "negative radius", sname: "a", x: []float64{1}, y: []float64{1},
			opts: []Option{WithStyle(Style{LineWidth: 1, PointRadius: -1})}, wantErr: true},
		{name: "band length mismatch", sname: "a", x: []float64{1, 2}, y: []float64{1, 2},
			opts: []Option{WithErrorBand([]float64{0}, []float64{3, 3})}, wantErr: true},
		{name: "band nan filtered", sname: "a", x: []float64{1, 2}, y: []float64{1, 2},
			opts: []Option{WithErrorBand([]float64{0, nan}, []float64{3, 3})}, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.sname, tt.x, tt.y, tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidSeries) {
					t.Errorf("New() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSeries)
				}
				return
			}
			if s.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.wantLen)
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{3, 4}
	s, err := New("a", x, y)
	if err != nil {
		t.Fatal(err)
	}
	x[0], y[0] = 100, 100
	if gx, gy := s.At(0); gx != 1 || gy != 3 {
		t.Errorf("At(0) = (%v, %v) after caller mutation, want (1, 3)", gx, gy)
	}

	got := s.X()
	got[1] = 42
	if !reflect.DeepEqual(s.X(), []float64{1, 2}) {
		t.Error("X() exposes internal storage")
	}
}

func TestStyleResolution(t *testing.T) {
	palette := func(i int) color.NRGBA { return color.NRGBA{R: uint8(i), A: 0xff} }
	red := color.NRGBA{R: 0xff, A: 0xff}

	plain, _ := New("plain", []float64{1}, []float64{1})
	if _, ok := plain.Style(); ok {
		t.Error("plain series reports an explicit style")
	}
	st := plain.Resolve(2, palette)
	if st.Color != palette(2) || st.LineWidth != DefaultLineWidth || st.ShowPoints {
		t.Errorf("Resolve(plain) = %+v", st)
	}

	colored, _ := New("colored", []float64{1}, []float64{1}, WithColor(red))
	if st := colored.Resolve(2, palette); st.Color != red || st.LineWidth != DefaultLineWidth {
		t.Errorf("Resolve(colored) = %+v", st)
	}

	custom, _ := New("custom", []float64{1}, []float64{1}, WithStyle(Style{LineWidth: 4, ShowPoints: true, PointRadius: 5}))
	st = custom.Resolve(1, palette)
	if st.Color != palette(1) || st.LineWidth != 4 || !st.ShowPoints || st.PointRadius != 5 {
		t.Errorf("Resolve(custom) = %+v", st)
	}
}

func TestScatter(t *testing.T) {
	s, err := Scatter("pts", []float64{1, 2}, []float64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	st, ok := s.Style()
	if !ok || !st.ShowPoints || !st.HideLine {
		t.Errorf("Scatter style = %+v, %v", st, ok)
	}
}

func TestBounds(t *testing.T) {
	s, err := New("a", []float64{3, 1, 2}, []float64{5, -1, 4},
		WithErrorBand([]float64{4, -3, 3}, []float64{6, 0, 9}))
	if err != nil {
		t.Fatal(err)
	}
	want := Bounds{XMin: 1, XMax: 3, YMin: -3, YMax: 9}
	if got := s.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}

	if !EmptyBounds().IsEmpty() {
		t.Error("EmptyBounds() is not empty")
	}
	if got := EmptyBounds().Union(want); got != want {
		t.Errorf("Union with empty = %+v", got)
	}
}
