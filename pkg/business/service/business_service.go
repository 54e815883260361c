package service

import (
	"context"

	"planner/entities"
)

const (
	StageCreateBusiness = "create_business"
	StageCheckBusiness  = "check_business"
)

// Defaults applied to businesses created on demand.
const (
	DefaultName     = "Demo Deli"
	DefaultCity     = "Your City"
	DefaultCategory = "restaurant"
)

// ListLimit caps the business listing.
const ListLimit = 50

func DefaultGoals() []string { return []string{"foot_traffic", "online_orders"} }

// ResolveRequest identifies an existing business or describes a new one.
// Nil Name/City fall back to the defaults; empty strings are kept as given.
type ResolveRequest struct {
	BusinessID string
	Name       *string
	City       *string
}

type BusinessService interface {
	// Resolve returns the id of the requested business, creating one when
	// BusinessID is empty. Failures are tagged with StageCheckBusiness or
	// StageCreateBusiness.
	Resolve(ctx context.Context, req ResolveRequest) (string, error)
	List(ctx context.Context) ([]entities.BusinessSummary, error)
}
