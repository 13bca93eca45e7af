package menu

import (
	"strings"
	"unicode/utf8"

	"cafe-menu-service/internal/pkg/errs"
)

type Ingredient struct {
	name       string
	excludable bool
}

func NewIngredient(name string, excludable bool) (Ingredient, error) {
	t := strings.TrimSpace(name)
	if t == "" {
		return Ingredient{}, errs.Validation(errs.NewDetail("name", CodeIngredientNameRequired, "ingredient name is required"))
	}
	if utf8.RuneCountInString(t) > MaxIngredientNameLength {
		return Ingredient{}, errs.Validation(errs.NewDetail("name", CodeIngredientNameTooLong, "ingredient name exceeds maximum length"))
	}
	return Ingredient{name: t, excludable: excludable}, nil
}

func (i Ingredient) Name() string     { return i.name }
func (i Ingredient) Excludable() bool { return i.excludable }

func ReconstructIngredient(name string, excludable bool) Ingredient {
	return Ingredient{name: name, excludable: excludable}
}
