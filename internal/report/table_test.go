package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	cols := []column{textCol("Component"), numCol("Score"), textCol("Band")}
	rows := [][]string{
		{"Fluency", "27.16", "excellent"},
		{"Coherence", "3.60", "needs improvement"},
	}

	lines := formatTable(cols, rows)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Component  Score  Band" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Fluency    27.16  excellent" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Coherence   3.60  needs improvement" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]column{textCol("File"), numCol("Overall")}, [][]string{{"日本.txt", "20.00"}, {"a.txt", "9.50"}})
	if lines[1] != "日本.txt    20.00" {
		t.Fatalf("unexpected wide row: %q", lines[1])
	}
	if lines[2] != "a.txt        9.50" {
		t.Fatalf("unexpected narrow row: %q", lines[2])
	}
}

func TestFormatTableShortRowsAndExtraCells(t *testing.T) {
	lines := formatTable([]column{textCol("File"), numCol("Overall"), numCol("Flue")},
		[][]string{{"broken.txt", "error"}, {"a.txt", "20.00", "18.50", "ignored"}})
	if lines[1] != "broken.txt    error" {
		t.Fatalf("unexpected short row: %q", lines[1])
	}
	if lines[2] != "a.txt         20.00  18.50" {
		t.Fatalf("unexpected full row: %q", lines[2])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}
