/*
MIT License

Copyright (c) 2025 Misael Monterroca

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package content

import (
	"testing"
)

func tx(text string, x, y, endX, size float64) TextItem {
	return TextItem{Text: text, X: x, Y: y, EndX: endX, FontSizePt: size, Font: "Helvetica", ColorHex: "000000"}
}

func TestGroupRowsByBaseline(t *testing.T) {
	items := []Item{
		tx("world", 150, 699, 200, 12), // same visual row as hello, slight baseline wobble
		tx("hello", 100, 700, 140, 12),
		tx("below", 100, 650, 140, 12),
	}
	features := GroupPage(items, DefaultThresholds())
	if len(features) != 1 {
		t.Fatalf("got %d features, want 1", len(features))
	}
	tf, ok := features[0].(TextFeature)
	if !ok {
		t.Fatalf("feature is %T, want TextFeature", features[0])
	}
	if len(tf.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(tf.Lines))
	}
	if len(tf.Lines[0].Marks) != 2 || tf.Lines[0].Marks[0].Text != "hello" {
		t.Fatalf("first line marks: %+v", tf.Lines[0].Marks)
	}
	if tf.Lines[1].Marks[0].Text != "below" {
		t.Fatalf("second line: %+v", tf.Lines[1].Marks)
	}
}

func TestUnderlineDetection(t *testing.T) {
	items := []Item{
		tx("signed", 100, 700, 150, 12),
		LineItem{X1: 100, Y1: 697, X2: 150, Y2: 697, WidthPt: 0.5},
	}
	features := GroupPage(items, DefaultThresholds())
	tf := features[0].(TextFeature)
	m := tf.Lines[0].Marks[0]
	if !m.Underline {
		t.Fatal("rule 3pt below baseline should read as underline")
	}
	if m.Strike {
		t.Fatal("underline misread as strikethrough")
	}
}

func TestStrikethroughDetection(t *testing.T) {
	items := []Item{
		tx("void", 100, 700, 150, 12),
		// baseline + 0.3 x 12 = 703.6
		LineItem{X1: 100, Y1: 703.5, X2: 150, Y2: 703.5, WidthPt: 0.5},
	}
	features := GroupPage(items, DefaultThresholds())
	tf := features[0].(TextFeature)
	m := tf.Lines[0].Marks[0]
	if !m.Strike {
		t.Fatal("rule at baseline + 0.3 em should read as strikethrough")
	}
	if m.Underline {
		t.Fatal("strikethrough misread as underline")
	}
}

func TestNonOverlappingRuleIsNotDecoration(t *testing.T) {
	items := []Item{
		tx("plain", 100, 700, 150, 12),
		LineItem{X1: 300, Y1: 697, X2: 400, Y2: 697, WidthPt: 0.5},
	}
	features := GroupPage(items, DefaultThresholds())
	tf := features[0].(TextFeature)
	if tf.Lines[0].Marks[0].Underline {
		t.Fatal("rule with no horizontal overlap marked as underline")
	}
}

func TestGridTableDetection(t *testing.T) {
	items := []Item{
		// 2x2 grid: horizontal rules at y = 100, 140, 180; vertical at
		// x = 50, 150, 250.
		LineItem{X1: 50, Y1: 180, X2: 250, Y2: 180},
		LineItem{X1: 50, Y1: 140, X2: 250, Y2: 140},
		LineItem{X1: 50, Y1: 100, X2: 250, Y2: 100},
		LineItem{X1: 50, Y1: 100, X2: 50, Y2: 180},
		LineItem{X1: 150, Y1: 100, X2: 150, Y2: 180},
		LineItem{X1: 250, Y1: 100, X2: 250, Y2: 180},
		tx("A", 60, 160, 80, 10),
		tx("B", 160, 160, 180, 10),
		tx("C", 60, 110, 80, 10),
		tx("D", 160, 110, 180, 10),
		tx("caption", 50, 300, 120, 10),
	}
	features := GroupPage(items, DefaultThresholds())
	if len(features) != 2 {
		t.Fatalf("got %d features, want caption + table", len(features))
	}
	if _, ok := features[0].(TextFeature); !ok {
		t.Fatalf("first feature is %T, want the caption above the grid", features[0])
	}
	table, ok := features[1].(TableFeature)
	if !ok {
		t.Fatalf("second feature is %T, want TableFeature", features[1])
	}
	if len(table.Rows) != 2 || len(table.Rows[0]) != 2 {
		t.Fatalf("table shape %dx%d, want 2x2", len(table.Rows), len(table.Rows[0]))
	}
	got := [][]string{}
	for _, row := range table.Rows {
		var r []string
		for _, cell := range row {
			text := ""
			for _, m := range cell {
				text += m.Text
			}
			r = append(r, text)
		}
		got = append(got, r)
	}
	want := [][]string{{"A", "B"}, {"C", "D"}}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("cell [%d][%d] = %q, want %q (full: %v)", i, j, got[i][j], want[i][j], got)
			}
		}
	}
}

func TestColumnHeuristicTable(t *testing.T) {
	items := []Item{
		// Two rows, two columns each, separated by a gap much larger
		// than 2x the font size.
		tx("name", 50, 700, 90, 10),
		tx("value", 300, 700, 350, 10),
		tx("size", 50, 680, 85, 10),
		tx("42", 300, 680, 320, 10),
		// A single-column line below: stays a paragraph.
		tx("footer", 50, 640, 100, 10),
	}
	features := GroupPage(items, DefaultThresholds())
	if len(features) != 2 {
		t.Fatalf("got %d features, want table + footer", len(features))
	}
	table, ok := features[0].(TableFeature)
	if !ok {
		t.Fatalf("first feature is %T, want TableFeature", features[0])
	}
	if len(table.Rows) != 2 || len(table.Rows[0]) != 2 {
		t.Fatalf("inferred table shape %dx%d, want 2x2", len(table.Rows), len(table.Rows[0]))
	}
	if table.Rows[1][1][0].Text != "42" {
		t.Fatalf("cell [1][1] = %q", table.Rows[1][1][0].Text)
	}
	if _, ok := features[1].(TextFeature); !ok {
		t.Fatalf("second feature is %T, want TextFeature", features[1])
	}
}

func TestSingleWideGapRowStaysText(t *testing.T) {
	items := []Item{
		tx("left", 50, 700, 90, 10),
		tx("right", 300, 700, 350, 10),
		tx("ordinary line", 50, 680, 150, 10),
	}
	features := GroupPage(items, DefaultThresholds())
	// One two-column row is not enough evidence for a table.
	if len(features) != 1 {
		t.Fatalf("got %d features, want 1", len(features))
	}
	if _, ok := features[0].(TextFeature); !ok {
		t.Fatalf("feature is %T, want TextFeature", features[0])
	}
}

func TestImageInterleavedByPosition(t *testing.T) {
	items := []Item{
		tx("above", 50, 700, 100, 10),
		ImageItem{Data: []byte{1, 2, 3}, Ext: "png", X: 50, Y: 500, W: 100, H: 80},
		tx("below", 50, 400, 100, 10),
	}
	features := GroupPage(items, DefaultThresholds())
	if len(features) != 3 {
		t.Fatalf("got %d features, want 3", len(features))
	}
	if _, ok := features[0].(TextFeature); !ok {
		t.Fatalf("feature 0 is %T", features[0])
	}
	img, ok := features[1].(ImageFeature)
	if !ok {
		t.Fatalf("feature 1 is %T, want ImageFeature", features[1])
	}
	if img.WidthPt != 100 || img.HeightPt != 80 {
		t.Fatalf("image size %gx%g", img.WidthPt, img.HeightPt)
	}
	if _, ok := features[2].(TextFeature); !ok {
		t.Fatalf("feature 2 is %T", features[2])
	}
}

func TestThresholdTuningChangesRowGrouping(t *testing.T) {
	items := []Item{
		tx("a", 50, 700, 60, 10),
		tx("b", 50, 692, 60, 10),
	}
	// Default tolerance (10pt) merges the two baselines into one row.
	tf := GroupPage(items, DefaultThresholds())[0].(TextFeature)
	if len(tf.Lines) != 1 {
		t.Fatalf("default thresholds: %d lines, want 1", len(tf.Lines))
	}

	tight := DefaultThresholds()
	tight.RowYTolerancePt = 3
	tf = GroupPage(items, tight)[0].(TextFeature)
	if len(tf.Lines) != 2 {
		t.Fatalf("tight thresholds: %d lines, want 2", len(tf.Lines))
	}
}
