package table

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustNew(t *testing.T, cols ...Column) *Table {
	t.Helper()
	tbl, err := New(cols...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tbl
}

func TestNew_RejectsDuplicateNames(t *testing.T) {
	_, err := New(NewInt64("x", nil), NewInt64("x", nil))
	if !errors.Is(err, ErrDuplicateColumn) {
		t.Errorf("want ErrDuplicateColumn, got %v", err)
	}
}

func TestNew_RejectsUnequalLengths(t *testing.T) {
	_, err := New(NewInt64("x", []int64{1, 2}), NewInt64("y", []int64{1}))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("want ErrLengthMismatch, got %v", err)
	}
}

func TestColumn_NotFound(t *testing.T) {
	tbl := mustNew(t, NewInt64("x", []int64{1}))
	_, err := tbl.Column("missing")
	if !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("want ErrColumnNotFound, got %v", err)
	}
}

func TestTypedAccess_Mismatch(t *testing.T) {
	tbl := mustNew(t, NewFloat64("v", []float64{1.5}))
	if _, err := Int64s(tbl, "v"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("want ErrTypeMismatch, got %v", err)
	}
}

func TestFilter_MaskLengthChecked(t *testing.T) {
	tbl := mustNew(t, NewInt64("x", []int64{1, 2, 3}))
	if _, err := tbl.Filter([]bool{true}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("want ErrLengthMismatch, got %v", err)
	}
}

func TestFilter_KeepsMaskedRows(t *testing.T) {
	tbl := mustNew(t,
		NewInt64("x", []int64{1, 2, 3, 4}),
		NewString("tag", []string{"a", "b", "c", "d"}),
	)
	got, err := tbl.Filter([]bool{true, false, false, true})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	xs, _ := Int64s(got, "x")
	if diff := cmp.Diff([]int64{1, 4}, xs); diff != "" {
		t.Errorf("x mismatch (-want +got):\n%s", diff)
	}
	tags, _ := Strings(got, "tag")
	if diff := cmp.Diff([]string{"a", "d"}, tags); diff != "" {
		t.Errorf("tag mismatch (-want +got):\n%s", diff)
	}
}

func TestWithColumn_ReplacesInPlace(t *testing.T) {
	tbl := mustNew(t, NewInt64("x", []int64{1, 2}), NewInt64("y", []int64{3, 4}))
	got, err := tbl.WithColumn(NewInt64("x", []int64{10, 20}))
	if err != nil {
		t.Fatalf("WithColumn failed: %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, got.ColumnNames()); diff != "" {
		t.Errorf("column order changed (-want +got):\n%s", diff)
	}
	xs, _ := Int64s(got, "x")
	if diff := cmp.Diff([]int64{10, 20}, xs); diff != "" {
		t.Errorf("x mismatch (-want +got):\n%s", diff)
	}
}

func TestWithColumn_AppendsNew(t *testing.T) {
	tbl := mustNew(t, NewInt64("x", []int64{1, 2}))
	got, err := tbl.WithColumn(NewFloat64("w", []float64{0.5, 0.7}))
	if err != nil {
		t.Fatalf("WithColumn failed: %v", err)
	}
	if got.NumCols() != 2 || !got.HasColumn("w") {
		t.Errorf("expected appended column, names=%v", got.ColumnNames())
	}
}

func TestGroupByCollect_CountsAndLists(t *testing.T) {
	tbl := mustNew(t,
		NewInt64("x", []int64{0, 0, 1, 0}),
		NewFloat64("intensity", []float64{0.1, 0.2, 0.3, 0.4}),
	)
	got, err := tbl.GroupByCollect([]string{"x"}, "count")
	if err != nil {
		t.Fatalf("GroupByCollect failed: %v", err)
	}
	if got.NumRows() != 2 {
		t.Fatalf("expected 2 groups, got %d", got.NumRows())
	}
	xs, _ := Int64s(got, "x")
	if diff := cmp.Diff([]int64{0, 1}, xs); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	counts, _ := Int64s(got, "count")
	if diff := cmp.Diff([]int64{3, 1}, counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
	lists, err := Float64Lists(got, "intensity")
	if err != nil {
		t.Fatalf("intensity should be a float64 list column: %v", err)
	}
	if diff := cmp.Diff([][]float64{{0.1, 0.2, 0.4}, {0.3}}, lists); diff != "" {
		t.Errorf("collected lists mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByCollect_MultiKeyFirstAppearanceOrder(t *testing.T) {
	tbl := mustNew(t,
		NewInt64("x", []int64{5, 0, 5, 0}),
		NewInt64("y", []int64{5, 0, 5, 1}),
	)
	got, err := tbl.GroupByCollect([]string{"x", "y"}, "count")
	if err != nil {
		t.Fatalf("GroupByCollect failed: %v", err)
	}
	xs, _ := Int64s(got, "x")
	ys, _ := Int64s(got, "y")
	if diff := cmp.Diff([]int64{5, 0, 0}, xs); diff != "" {
		t.Errorf("x mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{5, 0, 1}, ys); diff != "" {
		t.Errorf("y mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByCollect_ReplacesExistingCountColumn(t *testing.T) {
	tbl := mustNew(t,
		NewInt64("x", []int64{0, 0}),
		NewInt64("count", []int64{40, 2}),
	)
	got, err := tbl.GroupByCollect([]string{"x"}, "count")
	if err != nil {
		t.Fatalf("GroupByCollect failed: %v", err)
	}
	counts, err := Int64s(got, "count")
	if err != nil {
		t.Fatalf("count should be a scalar int64 column: %v", err)
	}
	// Group size, never a sum of the old count column.
	if diff := cmp.Diff([]int64{2}, counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByCollect_RejectsListKey(t *testing.T) {
	tbl := mustNew(t, NewInt64List("x", [][]int64{{1}}))
	if _, err := tbl.GroupByCollect([]string{"x"}, "count"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("want ErrTypeMismatch, got %v", err)
	}
}

func TestExplode_RoundTripsGroupByCollect(t *testing.T) {
	orig := mustNew(t,
		NewInt64("x", []int64{0, 0, 1}),
		NewFloat64("v", []float64{0.5, 0.25, 1.0}),
	)
	grouped, err := orig.GroupByCollect([]string{"x"}, "count")
	if err != nil {
		t.Fatalf("GroupByCollect failed: %v", err)
	}
	exploded, err := grouped.Explode()
	if err != nil {
		t.Fatalf("Explode failed: %v", err)
	}
	if exploded.NumRows() != 3 {
		t.Fatalf("expected 3 rows, got %d", exploded.NumRows())
	}
	xs, _ := Int64s(exploded, "x")
	if diff := cmp.Diff([]int64{0, 0, 1}, xs); diff != "" {
		t.Errorf("x mismatch (-want +got):\n%s", diff)
	}
	vs, _ := Float64s(exploded, "v")
	if diff := cmp.Diff([]float64{0.5, 0.25, 1.0}, vs); diff != "" {
		t.Errorf("v mismatch (-want +got):\n%s", diff)
	}
	counts, _ := Int64s(exploded, "count")
	if diff := cmp.Diff([]int64{2, 2, 1}, counts); diff != "" {
		t.Errorf("count replication mismatch (-want +got):\n%s", diff)
	}
}

func TestExplode_RaggedListsFail(t *testing.T) {
	tbl := mustNew(t,
		NewInt64List("a", [][]int64{{1, 2}}),
		NewInt64List("b", [][]int64{{1}}),
	)
	if _, err := tbl.Explode(); !errors.Is(err, ErrRaggedLists) {
		t.Errorf("want ErrRaggedLists, got %v", err)
	}
}

func TestExplode_EmptyListDropsRow(t *testing.T) {
	tbl := mustNew(t,
		NewInt64("x", []int64{1, 2}),
		NewInt64List("vals", [][]int64{{10, 11}, {}}),
	)
	got, err := tbl.Explode()
	if err != nil {
		t.Fatalf("Explode failed: %v", err)
	}
	xs, _ := Int64s(got, "x")
	if diff := cmp.Diff([]int64{1, 1}, xs); diff != "" {
		t.Errorf("x mismatch (-want +got):\n%s", diff)
	}
}

func TestExplode_NoListColumnsIsIdentity(t *testing.T) {
	tbl := mustNew(t, NewInt64("x", []int64{1, 2}))
	got, err := tbl.Explode()
	if err != nil {
		t.Fatalf("Explode failed: %v", err)
	}
	if !got.Equal(tbl) {
		t.Error("explode of scalar-only table should be identity")
	}
}

func TestEqual_OrderInsensitiveOnColumns(t *testing.T) {
	a := mustNew(t, NewInt64("x", []int64{1}), NewFloat64("v", []float64{2}))
	b := mustNew(t, NewFloat64("v", []float64{2}), NewInt64("x", []int64{1}))
	if !a.Equal(b) {
		t.Error("tables with same columns in different order should be equal")
	}
}
