package menu

import (
	"cafe-menu-service/internal/domain/reconcile"
)

const (
	MaxMenuNameLength       = 200
	MaxSectionNameLength    = 100
	MaxItemNameLength       = 200
	MaxDescriptionLength    = 500
	MaxIngredients          = 50
	MaxIngredientNameLength = 100
)

const (
	labelSection = "section"
	labelItem    = "item"
)

// Detail codes. Clients switch on these, so they are part of the API.
const (
	CodeMenuCafeRequired       = "menu.cafe_required"
	CodeMenuNameRequired       = "menu.name_required"
	CodeMenuNameTooLong        = "menu.name_too_long"
	CodeMenuNotFound           = "menu.not_found"
	CodeMenuAlreadyPublished   = "menu.already_published"
	CodeMenuAlreadyActive      = "menu.already_active"
	CodeMenuNotPublished       = "menu.not_published"
	CodeMenuNotActive          = "menu.not_active"
	CodeMenuActiveNotDeletable = "menu.active_not_deletable"
	CodeMenuNoSections         = "menu.no_sections"
	CodeMenuNoItems            = "menu.no_items"
	CodeMenuActiveConflict     = "menu.active_conflict"

	CodeSectionNameRequired       = "section.name_required"
	CodeSectionNameTooLong        = "section.name_too_long"
	CodeSectionAvailabilityWindow = "section.availability_window_invalid"
	CodeSectionAvailabilityTime   = "section.availability_time_invalid"

	CodeItemNameRequired       = "item.name_required"
	CodeItemNameTooLong        = "item.name_too_long"
	CodeItemDescriptionTooLong = "item.description_too_long"
	CodeItemPriceRequired      = "item.price_required"
	CodeItemTooManyIngredients = "item.too_many_ingredients"

	CodePriceAmountInvalid   = "price.amount_invalid"
	CodePriceDiscountInvalid = "price.discount_invalid"
	CodePriceUnitInvalid     = "price.unit_invalid"

	CodeImageIncomplete = "image.incomplete"

	CodeIngredientNameRequired = "ingredient.name_required"
	CodeIngredientNameTooLong  = "ingredient.name_too_long"
)

var (
	CodeSectionNotFound      = reconcile.Code(labelSection, reconcile.SuffixNotFound)
	CodeSectionDuplicateID   = reconcile.Code(labelSection, reconcile.SuffixDuplicateID)
	CodeSectionDuplicateName = reconcile.Code(labelSection, reconcile.SuffixDuplicateName)
	CodeItemNotFound         = reconcile.Code(labelItem, reconcile.SuffixNotFound)
	CodeItemDuplicateID      = reconcile.Code(labelItem, reconcile.SuffixDuplicateID)
	CodeItemDuplicateName    = reconcile.Code(labelItem, reconcile.SuffixDuplicateName)
)
