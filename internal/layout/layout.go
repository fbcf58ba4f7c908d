// Package layout holds the presentation policy applied to the manifest: which folders become
// floating hearts, which become chapters and how their labels look.
package layout

import (
	"fmt"
	"sort"
	"time"

	"github.com/RacoonMediaServer/rms-memories/internal/model"
)

const (
	// SmallFolderLimit is the largest item count of a folder rendered as a heart
	SmallFolderLimit = 3

	// LayoutVariants is a number of rotating chapter layouts
	LayoutVariants = 3

	// maxSummaryLocations is a number of locations shown in a chapter summary
	maxSummaryLocations = 2
)

const dateLabelLayout = "Jan 2, 2006"

// Partition splits manifest into heart folders and chapter folders, keeping order
func Partition(manifest model.Manifest) (hearts, chapters []model.Folder) {
	for _, f := range manifest {
		if f.Count <= SmallFolderLimit {
			hearts = append(hearts, f)
		} else {
			chapters = append(chapters, f)
		}
	}
	return
}

// Variant returns layout variant of the chapter by its position
func Variant(chapterIndex int) int {
	return chapterIndex % LayoutVariants
}

// Step moves modal selection by delta with wrap-around
func Step(index, delta, count int) int {
	if count <= 0 {
		return 0
	}
	return ((index+delta)%count + count) % count
}

// Summary is a short description of a folder
type Summary struct {
	DateLabel string
	Locations []string
}

func parseCapturedAt(item *model.Item) (time.Time, bool) {
	if item.Context == nil || item.Context.CapturedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, item.Context.CapturedAt)
	return t, err == nil
}

// Summarize builds date range label and first distinct locations of the folder
func Summarize(folder model.Folder) Summary {
	var dates []time.Time
	var locations []string
	seen := map[string]bool{}

	for i := range folder.Items {
		item := &folder.Items[i]
		if t, ok := parseCapturedAt(item); ok {
			dates = append(dates, t)
		}
		if item.Context != nil && item.Context.Location != "" && !seen[item.Context.Location] {
			seen[item.Context.Location] = true
			locations = append(locations, item.Context.Location)
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	if len(locations) > maxSummaryLocations {
		locations = locations[:maxSummaryLocations]
	}

	s := Summary{Locations: locations}
	switch len(dates) {
	case 0:
	case 1:
		s.DateLabel = dates[0].Format(dateLabelLayout)
	default:
		s.DateLabel = fmt.Sprintf("%s - %s", dates[0].Format(dateLabelLayout), dates[len(dates)-1].Format(dateLabelLayout))
	}
	return s
}

// ContextLabels returns captions of the item: date, location or coordinates, device
func ContextLabels(item model.Item) []string {
	var labels []string
	if t, ok := parseCapturedAt(&item); ok {
		labels = append(labels, t.Format(dateLabelLayout))
	}

	ctx := item.Context
	if ctx == nil {
		return labels
	}

	if ctx.Location != "" {
		labels = append(labels, ctx.Location)
	} else if ctx.Latitude != nil && ctx.Longitude != nil {
		labels = append(labels, fmt.Sprintf("%.4f, %.4f", *ctx.Latitude, *ctx.Longitude))
	}

	if ctx.Device != "" {
		labels = append(labels, ctx.Device)
	}
	return labels
}
