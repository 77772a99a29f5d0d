package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchFeed Phase = iota
	FetchFeatured
	FetchSaved
	SaveItem
	RemoveItem
)

func (p Phase) String() string {
	switch p {
	case FetchFeed:
		return "fetch_feed"
	case FetchFeatured:
		return "fetch_featured"
	case FetchSaved:
		return "fetch_saved"
	case SaveItem:
		return "save_item"
	case RemoveItem:
		return "remove_item"
	default:
		return ""
	}
}

func fetchFeedUpdate(step, total, offset int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchFeed,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Fetching articles (offset %d)...", offset),
	}
}

func fetchFeaturedUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchFeatured,
		Step:    step,
		Total:   total,
		Message: "Fetching featured article...",
	}
}

func feedReadyUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchFeed,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Loaded %d articles", count),
		Data:    count,
	}
}

func fetchSavedUpdate(kind SavedKind) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchSaved,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Fetching %s...", kind),
	}
}

func saveItemUpdate(kind SavedKind, articleID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SaveItem,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Adding article %s to %s...", articleID, kind),
	}
}

func removeItemUpdate(kind SavedKind, savedID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   RemoveItem,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Removing item %s from %s...", savedID, kind),
	}
}
