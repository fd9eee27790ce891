package query

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/vegasq/surveyq/record"
)

func TestLimit(t *testing.T) {
	people := samplePeople()

	tests := []struct {
		name    string
		n       int
		wantIDs []int
	}{
		{name: "zero", n: 0, wantIDs: []int{}},
		{name: "negative", n: -3, wantIDs: []int{}},
		{name: "prefix", n: 3, wantIDs: []int{1, 2, 3}},
		{name: "exact length", n: 6, wantIDs: []int{1, 2, 3, 4, 5, 6}},
		{name: "beyond length", n: 100, wantIDs: []int{1, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Limit(people, tt.n)
			if !reflect.DeepEqual(ids(got), tt.wantIDs) {
				t.Errorf("Limit(%d) ids = %v, want %v", tt.n, ids(got), tt.wantIDs)
			}
		})
	}
}

func TestLimit_Composition(t *testing.T) {
	people := samplePeople()
	for n := 0; n <= len(people)+1; n++ {
		for m := n; m <= len(people)+2; m++ {
			direct := Limit(people, n)
			composed := Limit(Limit(people, m), n)
			if !reflect.DeepEqual(ids(direct), ids(composed)) {
				t.Errorf("Limit(Limit(%d), %d) = %v, want %v", m, n, ids(composed), ids(direct))
			}
		}
	}
}

func TestLimit_AppendDoesNotTouchInput(t *testing.T) {
	people := samplePeople()
	head := Limit(people, 2)
	_ = append(head, record.Record{ID: 99})

	if people[2].ID != 3 {
		t.Errorf("append to Limit() result overwrote input: got id %d", people[2].ID)
	}
}

func TestOffset(t *testing.T) {
	people := samplePeople()

	if got := ids(Offset(people, 4)); !reflect.DeepEqual(got, []int{5, 6}) {
		t.Errorf("Offset(4) ids = %v, want [5 6]", got)
	}
	if got := Offset(people, 10); len(got) != 0 {
		t.Errorf("Offset(10) returned %d records, want 0", len(got))
	}
	if got := ids(Offset(people, 0)); len(got) != len(people) {
		t.Errorf("Offset(0) returned %d records, want %d", len(got), len(people))
	}
}

func TestMap(t *testing.T) {
	people := samplePeople()[:2]
	got := Map(people, func(r record.Record) string { return r.Job })
	want := []string{"Оператор call-центра", "Программист"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}

	if got := Map([]record.Record{}, record.Age); got == nil || len(got) != 0 {
		t.Errorf("Map() on empty input = %v, want empty slice", got)
	}
}

func TestCountMinMax(t *testing.T) {
	people := samplePeople()

	if got := Count(people); got != 6 {
		t.Errorf("Count() = %d, want 6", got)
	}
	if got := CountWhere(people, Where(record.Job, Eq("Программист"))); got != 3 {
		t.Errorf("CountWhere() = %d, want 3", got)
	}

	maxSalary, ok := Max(people, record.Salary).Get()
	if !ok || maxSalary != 150000 {
		t.Errorf("Max(salary) = %d, %v; want 150000, true", maxSalary, ok)
	}
	minAge, ok := Min(people, record.Age).Get()
	if !ok || minAge != 19 {
		t.Errorf("Min(age) = %d, %v; want 19, true", minAge, ok)
	}
	if got := Sum(people, record.Salary); got != 525000 {
		t.Errorf("Sum(salary) = %d, want 525000", got)
	}
	avg, ok := Average(people, record.Salary).Get()
	if !ok || avg != 87500 {
		t.Errorf("Average(salary) = %v, %v; want 87500, true", avg, ok)
	}
}

func TestCountMinMax_Empty(t *testing.T) {
	var empty []record.Record

	if got := Count(empty); got != 0 {
		t.Errorf("Count() on empty input = %d, want 0", got)
	}
	if got := CountWhere(empty, Where(record.Salary, Greater(50000))); got != 0 {
		t.Errorf("CountWhere() on empty input = %d, want 0", got)
	}

	filtered := Filter(samplePeople(), Where(record.City, Eq("Берлин")))
	if Max(filtered, record.Salary).Present() {
		t.Error("Max() on empty input should be absent")
	}
	if Min(filtered, record.Age).Present() {
		t.Error("Min() on empty input should be absent")
	}
	if Average(filtered, record.Age).Present() {
		t.Error("Average() on empty input should be absent")
	}
	if got := Max(filtered, record.Salary).String(); got != "absent" {
		t.Errorf("absent String() = %q, want %q", got, "absent")
	}
}

func TestOptional(t *testing.T) {
	some := Some(42)
	none := None[int]()

	if some.OrElse(0) != 42 || none.OrElse(7) != 7 {
		t.Error("OrElse() returned the wrong value")
	}

	called := false
	none.IfPresent(func(int) { called = true })
	if called {
		t.Error("IfPresent() called fn for an absent value")
	}
	some.IfPresent(func(v int) { called = v == 42 })
	if !called {
		t.Error("IfPresent() did not call fn for a present value")
	}

	data, err := json.Marshal(map[string]Optional[int]{"a": some, "b": none})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"a":42,"b":null}` {
		t.Errorf("json.Marshal() = %s", data)
	}
}

func TestAggregators(t *testing.T) {
	people := samplePeople()

	if got := Counting[record.Record]()(people); got != 6 {
		t.Errorf("Counting() = %d, want 6", got)
	}
	if got := MaxOf(record.Age)(people).OrElse(-1); got != 41 {
		t.Errorf("MaxOf(age) = %d, want 41", got)
	}
	if got := MinOf(record.Salary)(people).OrElse(-1); got != 40000 {
		t.Errorf("MinOf(salary) = %d, want 40000", got)
	}
	if got := Summing(record.Age)(people); got != 161 {
		t.Errorf("Summing(age) = %d, want 161", got)
	}
	if got := Mapping(record.City, Counting[string]())(people); got != 6 {
		t.Errorf("Mapping(city, Counting) = %d, want 6", got)
	}
	if got := Averaging(record.Salary)(nil); !math.IsNaN(got) {
		t.Errorf("Averaging() on empty group = %v, want NaN", got)
	}
}
