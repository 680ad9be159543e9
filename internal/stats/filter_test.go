package stats

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pdiddy/paperscope/pkg/types"
)

func TestFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		wantErr bool
	}{
		{"zero filter", Filter{}, false},
		{"valid range", Filter{FromYear: 2020, ToYear: 2021}, false},
		{"equal bounds", Filter{FromYear: 2020, ToYear: 2020}, false},
		{"only lower bound", Filter{FromYear: 2020}, false},
		{"only upper bound", Filter{ToYear: 2020}, false},
		{"inverted range", Filter{FromYear: 2021, ToYear: 2020}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr && !errors.Is(err, types.ErrInvalidArgument) {
				t.Errorf("Validate() = %v, want ErrInvalidArgument", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestFilterApply(t *testing.T) {
	records := []types.Record{
		rec("a", "J1", 2019),
		rec("b", "J2", 2020),
		rec("c", "J1", 2021),
		rec("d", "J3", 2022),
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"zero filter keeps all", Filter{}, []string{"a", "b", "c", "d"}},
		{"year range", Filter{FromYear: 2020, ToYear: 2021}, []string{"b", "c"}},
		{"journal subset", Filter{Journals: []string{"J1"}}, []string{"a", "c"}},
		{"range and journals", Filter{FromYear: 2020, ToYear: 2022, Journals: []string{"J1", "J3"}}, []string{"c", "d"}},
		{"no match", Filter{FromYear: 1990, ToYear: 1991}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(records)
			var titles []string
			for _, r := range got {
				titles = append(titles, r.Title)
			}
			if !reflect.DeepEqual(titles, tt.want) {
				t.Errorf("Apply() titles = %v, want %v", titles, tt.want)
			}
		})
	}
}

func TestFilterApplyDoesNotMutate(t *testing.T) {
	records := []types.Record{rec("a", "J1", 2019), rec("b", "J2", 2020)}
	before := make([]types.Record, len(records))
	copy(before, records)

	Filter{FromYear: 2020}.Apply(records)
	if !reflect.DeepEqual(records, before) {
		t.Error("Apply modified its input slice")
	}
}

func TestJournalNames(t *testing.T) {
	records := []types.Record{
		rec("a", "J2", 2019),
		rec("b", "J1", 2020),
		rec("c", "J2", 2021),
		rec("d", "", 2021),
	}

	got := JournalNames(records)
	want := []string{"J2", "J1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("JournalNames() = %v, want %v", got, want)
	}
}
