package repository

import (
	"time"

	"analytics-srv/internal/model"
)

// OwnerKind says which record a child list belongs to.
type OwnerKind string

const (
	OwnerOverview OwnerKind = "overview"
	OwnerPeriod   OwnerKind = "period"
)

// UpsertAggregatesOptions - Options for UpsertAggregates
type UpsertAggregatesOptions struct {
	RunID        string
	BusinessID   string
	Platform     string
	ComputedAt   time.Time
	Overview     model.Overview
	Distribution model.DistributionSnapshot
	Periods      []model.PeriodMetrics
}

// AggregateIDs - Row ids of the upserted records, used as child owners
type AggregateIDs struct {
	OverviewID string
	PeriodIDs  map[int]string // period key -> row id
}

// ReplaceChildrenOptions - Options for ReplaceChildren
type ReplaceChildrenOptions struct {
	OwnerKind OwnerKind
	OwnerID   string
	Keywords  []model.TermCount
	Topics    []model.TermCount
	Tags      []model.TermCount
}
