package ui

import "buzznews/internal/tasks"

type hydratedMsg struct {
	err error
}

type authResultMsg struct {
	err error
}

type feedLoadedMsg struct {
	err error
}

type savedLoadedMsg struct {
	kind tasks.SavedKind
	err  error
}

type itemSavedMsg struct {
	kind      tasks.SavedKind
	articleID string
	err       error
}

type itemRemovedMsg struct {
	kind    tasks.SavedKind
	savedID string
	err     error
}
