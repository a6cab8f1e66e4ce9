package chatcard

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// stagingValidator checks required-field presence on builder staging structs.
// Required fields are pointers (or slices) tagged `validate:"required"`; a
// non-nil pointer to an empty string counts as set.
var stagingValidator = newStagingValidator()

func newStagingValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// finalize validates the staging struct f and, when every required field is
// set, builds the entity from it.
func finalize[F, E any](entity string, f *F, build func(*F) E) (E, error) {
	if err := stagingValidator.Struct(f); err != nil {
		var zero E
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return zero, &BuildError{Entity: entity, Field: verrs[0].Field(), Code: CodeRequired}
		}
		return zero, err
	}
	return build(f), nil
}

func mustBuild[E any](e E, err error) E {
	if err != nil {
		panic(err)
	}
	return e
}

// clonePtr copies the value behind p so entities never share storage with a
// builder.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneSlice returns a non-nil copy of s, so that an empty input still reads
// as "set".
func cloneSlice[T any](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}
