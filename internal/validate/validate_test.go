package validate

import (
	"errors"
	"testing"
)

type ratingForm struct {
	Rating int    `json:"rating" validate:"min=1,max=10"`
	Name   string `json:"name" validate:"required"`
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(&ratingForm{Rating: 5, Name: "ok"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStruct_Invalid(t *testing.T) {
	err := Struct(&ratingForm{Rating: 11})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("fields = %v, want rating and name", verr.Fields)
	}
	for _, f := range verr.Fields {
		if f.Field != "rating" && f.Field != "name" {
			t.Errorf("unexpected field name %q (json names expected)", f.Field)
		}
	}
}

func TestNew(t *testing.T) {
	err := New("bad input", FieldError{Field: "time", Error: "empty"})
	if err.Error() != "bad input (time: empty)" {
		t.Errorf("Error() = %q", err.Error())
	}
	plain := New("bad input")
	if plain.Error() != "bad input" {
		t.Errorf("Error() = %q", plain.Error())
	}
}
