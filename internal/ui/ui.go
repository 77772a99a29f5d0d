// package ui implements the interactive reader on top of bubbletea.
//
// The model gates every content view behind the session: while the session is
// hydrating a neutral placeholder renders, and an unauthenticated user is
// redirected to the login view instead of the view they asked for.
package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"buzznews/internal/api"
	"buzznews/internal/models"
	"buzznews/internal/session"
	"buzznews/internal/shared"
	"buzznews/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoadingView ViewState = iota
	LoginView
	FeedView
	FavoritesView
	WatchLaterView
)

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	session    *session.Session
	client     *api.Client
	feed       *tasks.FeedEngine
	favorites  *tasks.SavedEngine
	watchLater *tasks.SavedEngine
	categories []shared.CategoryConfig

	width  int
	height int

	feedList  list.Model
	favList   list.Model
	watchList list.Model

	emailInput    textinput.Model
	passwordInput textinput.Model
	focusPassword bool

	fetchCancel context.CancelFunc
	status      string
	err         error
	help        help.Model
	keys        keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, sess *session.Session, client *api.Client, feed *tasks.FeedEngine, favorites, watchLater *tasks.SavedEngine, categories []shared.CategoryConfig) *Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	feedList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	feedList.Title = "News Feed"

	favList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	favList.Title = "Favorites"

	watchList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	watchList.Title = "Watch Later"

	return &Model{
		ctx:           ctx,
		view:          LoadingView,
		session:       sess,
		client:        client,
		feed:          feed,
		favorites:     favorites,
		watchLater:    watchLater,
		categories:    categories,
		feedList:      feedList,
		favList:       favList,
		watchList:     watchList,
		emailInput:    email,
		passwordInput: password,
		help:          help.New(),
		keys:          newKeyMap(),
	}
}

// Init hydrates the session from the store before anything renders.
func (m *Model) Init() tea.Cmd {
	return m.hydrate()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.feedList.SetSize(msg.Width-4, msg.Height-8)
		m.favList.SetSize(msg.Width-4, msg.Height-8)
		m.watchList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LoginView:
			return m.handleLoginKeys(msg)
		case FeedView:
			return m.handleFeedKeys(msg)
		case FavoritesView, WatchLaterView:
			return m.handleSavedKeys(msg)
		}
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case hydratedMsg:
		if msg.err != nil {
			m.err = msg.err
		}
		return m.enterView(FeedView)

	case authResultMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.passwordInput.SetValue("")
		return m.enterView(FeedView)

	case feedLoadedMsg:
		m.err = msg.err
		m.rebuildFeedList()
		return m, nil

	case savedLoadedMsg:
		m.err = msg.err
		m.rebuildSavedList(msg.kind)
		return m, nil

	case itemSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Added article %s to %s", msg.articleID, msg.kind)
		return m, nil

	case itemRemovedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Removed item from %s", msg.kind)
		m.rebuildSavedList(msg.kind)
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.session.Loading() {
		return "Loading..."
	}

	switch m.view {
	case LoadingView:
		return "Loading..."
	case LoginView:
		return m.renderLogin()
	case FeedView:
		return m.renderFeed()
	case FavoritesView:
		return m.renderSaved(m.favList)
	case WatchLaterView:
		return m.renderSaved(m.watchList)
	default:
		return ""
	}
}

// enterView switches to a content view, redirecting to the login view when
// the session holds no token.
func (m *Model) enterView(view ViewState) (tea.Model, tea.Cmd) {
	m.cancelFetch()
	if !m.session.IsAuthenticated() {
		m.view = LoginView
		m.emailInput.Focus()
		m.passwordInput.Blur()
		m.focusPassword = false
		return m, textinput.Blink
	}

	m.view = view
	m.status = ""
	switch view {
	case FeedView:
		return m, m.loadFeed(false)
	case FavoritesView:
		return m, m.loadSaved(tasks.Favorites)
	case WatchLaterView:
		return m, m.loadSaved(tasks.WatchLater)
	}
	return m, nil
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab":
		m.focusPassword = !m.focusPassword
		if m.focusPassword {
			m.emailInput.Blur()
			m.passwordInput.Focus()
		} else {
			m.passwordInput.Blur()
			m.emailInput.Focus()
		}
		return m, textinput.Blink
	case "enter":
		return m, m.submitLogin()
	}

	var cmd tea.Cmd
	if m.focusPassword {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	} else {
		m.emailInput, cmd = m.emailInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleFeedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.reload):
		return m, m.loadFeed(true)
	case key.Matches(msg, m.keys.favorite):
		return m, m.saveSelected(tasks.Favorites)
	case key.Matches(msg, m.keys.watch):
		return m, m.saveSelected(tasks.WatchLater)
	case key.Matches(msg, m.keys.nextView):
		return m.enterView(FavoritesView)
	case key.Matches(msg, m.keys.logout):
		return m.logout()
	}

	var cmd tea.Cmd
	m.feedList, cmd = m.feedList.Update(msg)
	return m, cmd
}

// logout clears the session everywhere; the guard then lands on the login view.
func (m *Model) logout() (tea.Model, tea.Cmd) {
	if err := m.session.Logout(); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	return m.enterView(FeedView)
}

func (m *Model) handleSavedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kind := tasks.Favorites
	if m.view == WatchLaterView {
		kind = tasks.WatchLater
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		return m.enterView(FeedView)
	case key.Matches(msg, m.keys.reload):
		return m, m.loadSaved(kind)
	case key.Matches(msg, m.keys.remove):
		return m, m.removeSelected(kind)
	case key.Matches(msg, m.keys.nextView):
		if m.view == FavoritesView {
			return m.enterView(WatchLaterView)
		}
		return m.enterView(FeedView)
	case key.Matches(msg, m.keys.logout):
		return m.logout()
	}

	return m.updateLists(msg)
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case FeedView:
		m.feedList, cmd = m.feedList.Update(msg)
	case FavoritesView:
		m.favList, cmd = m.favList.Update(msg)
	case WatchLaterView:
		m.watchList, cmd = m.watchList.Update(msg)
	}
	return m, cmd
}

func (m *Model) hydrate() tea.Cmd {
	return func() tea.Msg {
		return hydratedMsg{err: m.session.Hydrate()}
	}
}

func (m *Model) submitLogin() tea.Cmd {
	creds := models.Credentials{
		Email:    m.emailInput.Value(),
		Password: m.passwordInput.Value(),
	}
	return func() tea.Msg {
		resp, err := m.client.Login(m.ctx, creds)
		if err != nil {
			return authResultMsg{err: err}
		}
		return authResultMsg{err: m.session.Login(resp.User, resp.Token)}
	}
}

// loadFeed starts a feed fetch that is cancelled if the user leaves the view
// or starts another fetch before it completes. The context is released as
// soon as the fetch returns.
func (m *Model) loadFeed(reload bool) tea.Cmd {
	m.cancelFetch()
	ctx, cancel := context.WithCancel(m.ctx)
	m.fetchCancel = cancel
	return func() tea.Msg {
		defer cancel()
		return feedLoadedMsg{err: m.feed.Load(ctx, reload, nil)}
	}
}

func (m *Model) loadSaved(kind tasks.SavedKind) tea.Cmd {
	m.cancelFetch()
	ctx, cancel := context.WithCancel(m.ctx)
	m.fetchCancel = cancel
	engine := m.savedEngine(kind)
	return func() tea.Msg {
		defer cancel()
		return savedLoadedMsg{kind: kind, err: engine.Load(ctx, nil)}
	}
}

func (m *Model) saveSelected(kind tasks.SavedKind) tea.Cmd {
	selected, ok := m.feedList.SelectedItem().(articleItem)
	if !ok {
		return nil
	}
	engine := m.savedEngine(kind)
	if engine.Pending(selected.article.ID) {
		return nil
	}
	m.status = fmt.Sprintf("Adding to %s...", kind)
	return func() tea.Msg {
		_, err := engine.Add(m.ctx, selected.article.ID, nil)
		return itemSavedMsg{kind: kind, articleID: selected.article.ID, err: err}
	}
}

func (m *Model) removeSelected(kind tasks.SavedKind) tea.Cmd {
	var current list.Model
	if kind == tasks.WatchLater {
		current = m.watchList
	} else {
		current = m.favList
	}

	selected, ok := current.SelectedItem().(savedEntryItem)
	if !ok {
		return nil
	}
	engine := m.savedEngine(kind)
	if engine.Pending(selected.item.ID) {
		return nil
	}
	m.status = fmt.Sprintf("Removing from %s...", kind)
	return func() tea.Msg {
		err := engine.Remove(m.ctx, selected.item.ID, nil)
		return itemRemovedMsg{kind: kind, savedID: selected.item.ID, err: err}
	}
}

func (m *Model) savedEngine(kind tasks.SavedKind) *tasks.SavedEngine {
	if kind == tasks.WatchLater {
		return m.watchLater
	}
	return m.favorites
}

func (m *Model) cancelFetch() {
	if m.fetchCancel != nil {
		m.fetchCancel()
		m.fetchCancel = nil
	}
}

// rebuildFeedList swaps the backing items in place so the cursor and filter
// state survive reloads.
func (m *Model) rebuildFeedList() {
	m.feedList.SetItems(newArticleItems(m.feed.Articles(), m.categories))
}

func (m *Model) rebuildSavedList(kind tasks.SavedKind) {
	engine := m.savedEngine(kind)
	items := newSavedItems(engine.Items(), m.categories)
	if kind == tasks.WatchLater {
		m.watchList.SetItems(items)
	} else {
		m.favList.SetItems(items)
	}
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Sign in to BuzzNews")
	fields := fmt.Sprintf("%s\n%s", m.emailInput.View(), m.passwordInput.View())

	var errLine string
	if m.err != nil {
		errLine = "\n" + styles.err.Render(api.ErrorMessage(m.err))
	}

	submitKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in"))
	switchKey := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch field"))
	helpView := m.help.ShortHelpView([]key.Binding{submitKey, switchKey, m.keys.quit})

	return fmt.Sprintf("%s\n%s%s\n\n%s", title, fields, errLine, helpView)
}

func (m *Model) renderFeed() string {
	var header string
	if featured := m.feed.Featured(); featured != nil {
		header = styles.title.Render("Featured: "+featured.Title) + "\n"
	}

	helpKeys := []key.Binding{m.keys.favorite, m.keys.watch, m.keys.reload, m.keys.nextView, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s%s\n%s\n%s", header, m.feedList.View(), m.statusLine(), helpView)
}

func (m *Model) renderSaved(lst list.Model) string {
	helpKeys := []key.Binding{m.keys.remove, m.keys.reload, m.keys.back, m.keys.nextView, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n%s", lst.View(), m.statusLine(), helpView)
}

func (m *Model) statusLine() string {
	if m.err != nil {
		return styles.err.Render(api.ErrorMessage(m.err))
	}
	if m.status != "" {
		return styles.ok.Render(m.status)
	}
	return ""
}
