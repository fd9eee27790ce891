package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vegasq/surveyq/internal/config"
	"github.com/vegasq/surveyq/query"
	"github.com/vegasq/surveyq/record"
)

// Build runs every query over people in report order.
//
// The only errors come from field names in p that do not resolve to a
// usable accessor; people itself is never modified.
func Build(source string, people record.Collection, p config.Query) (*Report, error) {
	steps := []func(record.Collection, config.Query) (Section, error){
		filterBySalary,
		sortByField,
		limitPeople,
		mapJobSalary,
		topSalaries,
		countByJob,
		maxSalaryInCity,
		minAgeInCity,
		groupByField,
		countByField,
		maxSalaryByCity,
		averageSalaryByCityAndJob,
	}

	r := &Report{
		RunID:     uuid.New(),
		Source:    source,
		Generated: time.Now().UTC(),
		Sections:  make([]Section, 0, len(steps)),
	}
	for _, step := range steps {
		s, err := step(people, p)
		if err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{"section": s.ID, "kind": s.Kind}).Debug("query complete")
		r.Sections = append(r.Sections, s)
	}
	return r, nil
}

func filterBySalary(people record.Collection, p config.Query) (Section, error) {
	return Section{
		ID:      "2.1.1",
		Title:   fmt.Sprintf("Filter by predicate (salary > %d)", p.SalaryThreshold),
		Kind:    KindRecords,
		Records: query.Filter(people, query.Where(record.Salary, query.Greater(p.SalaryThreshold))),
	}, nil
}

func sortByField(people record.Collection, p config.Query) (Section, error) {
	f, err := record.ParseField(p.SortField)
	if err != nil {
		return Section{}, fmt.Errorf("sort field: %w", err)
	}
	compare, err := record.Compare(f)
	if err != nil {
		return Section{}, fmt.Errorf("sort field: %w", err)
	}
	return Section{
		ID:      "2.1.2",
		Title:   fmt.Sprintf("Sort by %s", f),
		Kind:    KindRecords,
		Records: query.SortFunc(people, compare),
	}, nil
}

func limitPeople(people record.Collection, p config.Query) (Section, error) {
	return Section{
		ID:      "2.1.3",
		Title:   fmt.Sprintf("Limit (%d people)", p.LimitN),
		Kind:    KindRecords,
		Records: query.Limit(people, p.LimitN),
	}, nil
}

func mapJobSalary(people record.Collection, _ config.Query) (Section, error) {
	return Section{
		ID:    "2.1.4",
		Title: "Map to job and salary",
		Kind:  KindLines,
		Lines: query.Map(people, func(r record.Record) string {
			return fmt.Sprintf("%s: %d", r.Job, r.Salary)
		}),
	}, nil
}

func topSalaries(people record.Collection, p config.Query) (Section, error) {
	young := query.Filter(people, query.And(
		query.Where(record.Age, query.Less(p.YoungAge)),
		query.Where(record.City, query.Eq(p.City)),
	))
	return Section{
		ID:      "2.2.1",
		Title:   fmt.Sprintf("Top %d salaries in %s, younger than %d", p.TopN, p.City, p.YoungAge),
		Kind:    KindRecords,
		Records: query.Limit(query.SortByDesc(young, record.Salary), p.TopN),
	}, nil
}

func countByJob(people record.Collection, p config.Query) (Section, error) {
	n := query.CountWhere(people, query.And(
		query.Where(record.Salary, query.Greater(p.CountSalary)),
		query.Where(record.Job, query.Eq(p.Job)),
	))
	return Section{
		ID:    "2.2.2",
		Title: fmt.Sprintf("People earning more than %d as %q", p.CountSalary, p.Job),
		Kind:  KindScalar,
		Label: "Count",
		Value: n,
	}, nil
}

func maxSalaryInCity(people record.Collection, p config.Query) (Section, error) {
	if p.MinAge > p.MaxAge {
		log.WithFields(log.Fields{"min_age": p.MinAge, "max_age": p.MaxAge}).Warn("age range is empty")
	}
	inRange := query.Filter(people, query.And(
		query.Where(record.City, query.Eq(p.SecondCity)),
		query.Where(record.Age, query.Between(p.MinAge, p.MaxAge)),
	))
	s := Section{
		ID:    "2.2.3",
		Title: fmt.Sprintf("Maximum salary in %s, aged %d to %d", p.SecondCity, p.MinAge, p.MaxAge),
		Kind:  KindScalar,
		Label: "Maximum salary",
	}
	setOptional(&s.Value, &s.Absent, query.Max(inRange, record.Salary))
	return s, nil
}

func minAgeInCity(people record.Collection, p config.Query) (Section, error) {
	wellPaid := query.Filter(people, query.And(
		query.Where(record.City, query.Eq(p.City)),
		query.Where(record.Salary, query.Greater(p.SalaryThreshold)),
	))
	s := Section{
		ID:    "2.2.4",
		Title: fmt.Sprintf("Minimum age in %s, salary above %d", p.City, p.SalaryThreshold),
		Kind:  KindScalar,
		Label: "Minimum age",
	}
	setOptional(&s.Value, &s.Absent, query.Min(wellPaid, record.Age))
	return s, nil
}

func groupByField(people record.Collection, p config.Query) (Section, error) {
	f, key, err := textKey(p.GroupField)
	if err != nil {
		return Section{}, fmt.Errorf("group field: %w", err)
	}

	s := Section{ID: "2.3.1", Title: fmt.Sprintf("Group by %s", f), Kind: KindGroups, Entries: []Entry{}}
	for k, members := range query.GroupBy(people, key).All() {
		s.Entries = append(s.Entries, Entry{Key: k, Records: members})
	}
	return s, nil
}

func countByField(people record.Collection, p config.Query) (Section, error) {
	f, key, err := textKey(p.CountField)
	if err != nil {
		return Section{}, fmt.Errorf("count field: %w", err)
	}

	counts := query.Fold(query.GroupBy(people, key), query.Counting[record.Record]())
	s := Section{ID: "2.3.2", Title: fmt.Sprintf("Group by %s with counts", f), Kind: KindGroups, Entries: []Entry{}}
	for k, n := range counts.All() {
		s.Entries = append(s.Entries, Entry{Key: k, Value: n})
	}
	return s, nil
}

func maxSalaryByCity(people record.Collection, _ config.Query) (Section, error) {
	maxima := query.Fold(query.GroupBy(people, record.City), query.MaxOf(record.Salary))
	s := Section{ID: "2.3.3", Title: "Group by city with maximum salary", Kind: KindGroups, Entries: []Entry{}}
	for city, highest := range maxima.All() {
		e := Entry{Key: city}
		setOptional(&e.Value, &e.Absent, highest)
		s.Entries = append(s.Entries, e)
	}
	return s, nil
}

func averageSalaryByCityAndJob(people record.Collection, _ config.Query) (Section, error) {
	averages := query.Fold2(
		query.GroupBy2(people, record.City, record.Job),
		query.Averaging(record.Salary),
	)
	s := Section{ID: "2.3.4", Title: "Group by city with average salary per job", Kind: KindNested, Entries: []Entry{}}
	for city, byJob := range averages.All() {
		outer := Entry{Key: city}
		for job, avg := range byJob.All() {
			outer.Entries = append(outer.Entries, Entry{Key: job, Value: avg})
		}
		s.Entries = append(s.Entries, outer)
	}
	return s, nil
}

func textKey(name string) (record.Field, func(record.Record) string, error) {
	f, err := record.ParseField(name)
	if err != nil {
		return 0, nil, err
	}
	key, err := record.TextField(f)
	if err != nil {
		return 0, nil, err
	}
	return f, key, nil
}

func setOptional(value *any, absent *bool, o query.Optional[int]) {
	if v, ok := o.Get(); ok {
		*value = v
		return
	}
	*absent = true
}
