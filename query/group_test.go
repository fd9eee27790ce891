package query

import (
	"reflect"
	"sort"
	"testing"

	"github.com/vegasq/surveyq/record"
)

func TestGroupBy_FirstSeenOrder(t *testing.T) {
	groups := GroupBy(samplePeople(), record.Job)

	wantKeys := []string{"Оператор call-центра", "Программист", "Бариста"}
	if got := groups.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Fatalf("Keys() = %v, want %v", got, wantKeys)
	}

	members, ok := groups.Get("Программист")
	if !ok {
		t.Fatal("group Программист not found")
	}
	if want := []int{2, 4, 6}; !reflect.DeepEqual(ids(members), want) {
		t.Errorf("group ids = %v, want %v", ids(members), want)
	}
}

func TestGroupBy_Partition(t *testing.T) {
	people := samplePeople()
	groups := GroupBy(people, record.City)

	seen := make(map[int]string)
	var union []int
	for city, members := range groups.All() {
		if len(members) == 0 {
			t.Errorf("group %q is empty", city)
		}
		for _, r := range members {
			if prev, dup := seen[r.ID]; dup {
				t.Errorf("record %d in groups %q and %q", r.ID, prev, city)
			}
			seen[r.ID] = city
			if r.City != city {
				t.Errorf("record %d with city %q filed under %q", r.ID, r.City, city)
			}
			union = append(union, r.ID)
		}
	}

	want := ids(people)
	sort.Ints(union)
	sort.Ints(want)
	if !reflect.DeepEqual(union, want) {
		t.Errorf("union of groups = %v, want %v", union, want)
	}
}

func TestGroupBy_Empty(t *testing.T) {
	groups := GroupBy([]record.Record{}, record.City)
	if groups.Len() != 0 {
		t.Errorf("Len() = %d, want 0", groups.Len())
	}
	if got := Fold(groups, MaxOf(record.Salary)); got.Len() != 0 {
		t.Errorf("Fold() on empty groups has %d keys, want 0", got.Len())
	}
}

func TestFold_CountAndMax(t *testing.T) {
	byCity := GroupBy(samplePeople(), record.City)

	counts := Fold(byCity, Counting[record.Record]())
	if got, _ := counts.Get("Прага"); got != 3 {
		t.Errorf("count Прага = %d, want 3", got)
	}
	if got, _ := counts.Get("София"); got != 3 {
		t.Errorf("count София = %d, want 3", got)
	}

	maxSalary := Fold(byCity, MaxOf(record.Salary))
	if got, _ := maxSalary.Get("Прага"); got.OrElse(0) != 120000 {
		t.Errorf("max salary Прага = %v, want 120000", got)
	}
	if got, _ := maxSalary.Get("София"); got.OrElse(0) != 150000 {
		t.Errorf("max salary София = %v, want 150000", got)
	}
	if !reflect.DeepEqual(maxSalary.Keys(), []string{"Прага", "София"}) {
		t.Errorf("Keys() = %v", maxSalary.Keys())
	}
}

func TestFold2_Average(t *testing.T) {
	people := []record.Record{
		{Job: "A", City: "X", Salary: 100},
		{Job: "A", City: "X", Salary: 200},
		{Job: "B", City: "X", Salary: 300},
	}

	avg := Fold2(GroupBy2(people, record.City, record.Job), Averaging(record.Salary))

	if !reflect.DeepEqual(avg.Keys(), []string{"X"}) {
		t.Fatalf("outer keys = %v, want [X]", avg.Keys())
	}
	x, _ := avg.Get("X")
	if !reflect.DeepEqual(x.Keys(), []string{"A", "B"}) {
		t.Fatalf("inner keys = %v, want [A B]", x.Keys())
	}
	if got, _ := x.Get("A"); got != 150.0 {
		t.Errorf("X/A average = %v, want 150", got)
	}
	if got, _ := x.Get("B"); got != 300.0 {
		t.Errorf("X/B average = %v, want 300", got)
	}
}

func TestFold2_KeepsPrecision(t *testing.T) {
	people := []record.Record{
		{Job: "A", City: "X", Salary: 1},
		{Job: "A", City: "X", Salary: 2},
		{Job: "A", City: "X", Salary: 2},
	}

	avg := Fold2(GroupBy2(people, record.City, record.Job), Averaging(record.Salary))
	x, _ := avg.Get("X")
	got, _ := x.Get("A")
	if want := 5.0 / 3.0; got != want {
		t.Errorf("average = %v, want %v", got, want)
	}
}

func TestOrdered_SetKeepsPosition(t *testing.T) {
	o := NewOrdered[string, int]()
	o.Set("b", 1)
	o.Set("a", 2)
	o.Set("b", 3)

	if !reflect.DeepEqual(o.Keys(), []string{"b", "a"}) {
		t.Errorf("Keys() = %v, want [b a]", o.Keys())
	}
	if v, _ := o.Get("b"); v != 3 {
		t.Errorf("Get(b) = %d, want 3", v)
	}

	var nilMap *Ordered[string, int]
	if nilMap.Len() != 0 || len(nilMap.Keys()) != 0 {
		t.Error("nil Ordered should behave as empty")
	}
}

// Young people in Prague, best paid first, at most ten.
func TestPipeline_TopSalaries(t *testing.T) {
	people := []record.Record{
		{Salary: 120000, Age: 22, City: "Прага", ID: 1},
		{Salary: 90000, Age: 23, City: "Прага", ID: 2},
		{Salary: 150000, Age: 30, City: "Прага", ID: 3},
	}

	got := Limit(
		SortByDesc(
			Filter(people, And(
				Where(record.Age, Less(25)),
				Where(record.City, Eq("Прага")),
			)),
			record.Salary,
		),
		10,
	)

	want := []record.Record{people[0], people[1]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pipeline = %v, want %v", got, want)
	}
}
