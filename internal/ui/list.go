package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"buzznews/internal/formatter"
	"buzznews/internal/models"
	"buzznews/internal/shared"
)

var (
	_ list.Item = articleItem{}
	_ list.Item = savedEntryItem{}
)

// articleItem wraps [models.Article] to implement [list.Item].
type articleItem struct {
	article  models.Article
	category string
}

func (i articleItem) FilterValue() string { return i.article.Title }
func (i articleItem) Title() string       { return i.article.Title }
func (i articleItem) Description() string {
	desc := i.category
	if date := formatter.FormatDate(i.article.PublishedAt); date != "" {
		desc = fmt.Sprintf("%s • %s", desc, date)
	}
	return desc
}

// savedEntryItem wraps [models.SavedItem] to implement [list.Item].
type savedEntryItem struct {
	item     models.SavedItem
	category string
}

func (i savedEntryItem) FilterValue() string { return i.item.Article.Title }
func (i savedEntryItem) Title() string       { return i.item.Article.Title }
func (i savedEntryItem) Description() string {
	desc := i.category
	if date := formatter.FormatDate(i.item.Article.PublishedAt); date != "" {
		desc = fmt.Sprintf("%s • %s", desc, date)
	}
	return desc
}

func newArticleItems(articles []models.Article, table []shared.CategoryConfig) []list.Item {
	items := make([]list.Item, len(articles))
	for i, article := range articles {
		items[i] = articleItem{
			article:  article,
			category: formatter.CategoryTag(article.Source, table),
		}
	}
	return items
}

func newSavedItems(saved []models.SavedItem, table []shared.CategoryConfig) []list.Item {
	items := make([]list.Item, len(saved))
	for i, item := range saved {
		items[i] = savedEntryItem{
			item:     item,
			category: formatter.CategoryTag(item.Article.Source, table),
		}
	}
	return items
}
