package domain

type MaterialRole string

const (
	RoleBody  MaterialRole = "body"
	RoleDoor  MaterialRole = "door"
	RoleShelf MaterialRole = "shelf"
)

// ValidMaterialRoles is the canonical set of accepted material role strings.
var ValidMaterialRoles = map[string]bool{
	"body": true, "door": true, "shelf": true,
}

type FrontType string

const (
	FrontHingedDoor  FrontType = "hinged_door"
	FrontDrawerFront FrontType = "drawer_front"
	FrontFlapDoor    FrontType = "flap_door"
	FrontFixedPanel  FrontType = "fixed_panel"
)

// ValidFrontTypes is the canonical set of accepted front type strings.
var ValidFrontTypes = map[string]bool{
	"hinged_door": true, "drawer_front": true,
	"flap_door": true, "fixed_panel": true,
}

type CompartmentItemType string

const (
	ItemShelf             CompartmentItemType = "shelf"
	ItemHorizontalDivider CompartmentItemType = "horizontal_divider"
	ItemVerticalDivider   CompartmentItemType = "vertical_divider"
)

// ValidCompartmentItemTypes is the canonical set of accepted interior item types.
var ValidCompartmentItemTypes = map[string]bool{
	"shelf": true, "horizontal_divider": true, "vertical_divider": true,
}

type QuoteStatus string

const (
	QuoteDraft     QuoteStatus = "draft"
	QuoteFinalized QuoteStatus = "finalized"
)
