package models

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"
)

func TestNewHabit_Validate(t *testing.T) {
	tests := []struct {
		name       string
		habit      NewHabit
		wantErr    bool
		incomplete bool
	}{
		{name: "valid", habit: NewHabit{Title: "Exercitar", WeekDays: []int{1, 3, 5}}},
		{name: "every day", habit: NewHabit{Title: "Beber água", WeekDays: []int{0, 1, 2, 3, 4, 5, 6}}},
		{name: "empty title", habit: NewHabit{Title: "", WeekDays: []int{1}}, wantErr: true, incomplete: true},
		{name: "blank title", habit: NewHabit{Title: "   ", WeekDays: []int{1}}, wantErr: true, incomplete: true},
		{name: "no weekdays", habit: NewHabit{Title: "Ler"}, wantErr: true, incomplete: true},
		{name: "weekday out of range", habit: NewHabit{Title: "Ler", WeekDays: []int{7}}, wantErr: true},
		{name: "negative weekday", habit: NewHabit{Title: "Ler", WeekDays: []int{-1}}, wantErr: true},
		{name: "duplicate weekday", habit: NewHabit{Title: "Ler", WeekDays: []int{2, 2}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.habit.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.incomplete && !errors.Is(err, ErrIncompleteHabit) {
				t.Errorf("Validate() error = %v, want ErrIncompleteHabit", err)
			}
		})
	}
}

func TestNewHabit_JSON(t *testing.T) {
	h := NewHabit{Title: "Exercitar", WeekDays: []int{0, 6}}
	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"title":"Exercitar","weekDays":[0,6]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestNewHabit_Normalized(t *testing.T) {
	h := NewHabit{Title: "  Ler  ", WeekDays: []int{5, 1, 3}}
	n := h.Normalized()

	if n.Title != "Ler" {
		t.Errorf("Title = %q, want %q", n.Title, "Ler")
	}
	if !slices.Equal(n.WeekDays, []int{1, 3, 5}) {
		t.Errorf("WeekDays = %v, want [1 3 5]", n.WeekDays)
	}
	if !slices.Equal(h.WeekDays, []int{5, 1, 3}) {
		t.Errorf("input modified: %v", h.WeekDays)
	}
}

func TestNewHabit_WeekDayNames(t *testing.T) {
	h := NewHabit{Title: "Ler", WeekDays: []int{0, 6}}
	got := h.WeekDayNames()
	if !slices.Equal(got, []string{"Domingo", "Sábado"}) {
		t.Errorf("WeekDayNames() = %v", got)
	}
}
