// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"sort"
	"time"

	"github.com/danielhkuo/huddleboard/models"
)

// DateLayout is the calendar-date format used for action item due dates.
const DateLayout = "2006-01-02"

// Bucket is the deadline-urgency classification assigned to an action item.
type Bucket string

const (
	BucketOverdue     Bucket = "overdue"
	BucketDueToday    Bucket = "due_today"
	BucketDueTomorrow Bucket = "due_tomorrow"
	BucketNone        Bucket = "none"
)

// Classify assigns an action item to a deadline bucket relative to now.
// Only open items are classified; done items always yield BucketNone.
// Comparison is by whole calendar days in now's location, so an item due
// today is BucketDueToday regardless of the current time of day. Items
// with unparsable due dates are excluded from classification (BucketNone)
// rather than treated as errors: the classifier is a best-effort
// summarizer over externally sourced data.
func Classify(item models.ActionItem, now time.Time) Bucket {
	if item.Status != models.StatusOpen {
		return BucketNone
	}

	due, err := time.ParseInLocation(DateLayout, item.DueDate, now.Location())
	if err != nil {
		return BucketNone
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case due.Before(today):
		return BucketOverdue
	case due.Equal(today):
		return BucketDueToday
	case due.Equal(today.AddDate(0, 0, 1)):
		return BucketDueTomorrow
	default:
		return BucketNone
	}
}

// UrgentList filters items classified as due today or due tomorrow,
// sorted ascending by due date with ties kept in input order, truncated
// to limit. A negative limit means no truncation.
func UrgentList(items []models.ActionItem, now time.Time, limit int) []models.ActionItem {
	urgent := make([]models.ActionItem, 0, len(items))
	for _, item := range items {
		switch Classify(item, now) {
		case BucketDueToday, BucketDueTomorrow:
			urgent = append(urgent, item)
		}
	}

	// YYYY-MM-DD strings order lexically the same as chronologically.
	sort.SliceStable(urgent, func(i, j int) bool {
		return urgent[i].DueDate < urgent[j].DueDate
	})

	if limit >= 0 && len(urgent) > limit {
		urgent = urgent[:limit]
	}
	return urgent
}

// CountByBucket returns per-bucket counts over the snapshot. All four
// buckets are present in the result, zero-valued when empty.
func CountByBucket(items []models.ActionItem, now time.Time) map[Bucket]int {
	counts := map[Bucket]int{
		BucketOverdue:     0,
		BucketDueToday:    0,
		BucketDueTomorrow: 0,
		BucketNone:        0,
	}
	for _, item := range items {
		counts[Classify(item, now)]++
	}
	return counts
}

// CompletionRate returns 100 * done / total, or 0 for an empty snapshot.
func CompletionRate(items []models.ActionItem) float64 {
	if len(items) == 0 {
		return 0
	}

	done := 0
	for _, item := range items {
		if item.Status == models.StatusDone {
			done++
		}
	}
	return 100 * float64(done) / float64(len(items))
}
