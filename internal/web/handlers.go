package web

import (
	"net/http"
	"time"

	"github.com/ayselgur/cradle/internal/config"
	"github.com/ayselgur/cradle/internal/errors"
	"github.com/ayselgur/cradle/internal/journal"
	"github.com/ayselgur/cradle/internal/store"
)

// Handlers contains HTTP route handlers for the journal viewer.
type Handlers struct {
	st       *store.Store
	cfg      *config.Config
	renderer *Renderer
}

// HandleJournal handles GET /journal. The optional day=YYYY-MM-DD query
// parameter narrows moods and feedings to a single day.
func (h *Handlers) HandleJournal(w http.ResponseWriter, r *http.Request) {
	snap := h.st.Snapshot()

	moods := snap.Moods
	feedings := snap.Feedings

	day := r.URL.Query().Get("day")
	filtered := false
	if day != "" {
		d, err := time.ParseInLocation("2006-01-02", day, time.Local)
		if err != nil {
			h.renderer.renderError(w, r, errors.NewInvalidArgument("day must be in YYYY-MM-DD format"))
			return
		}
		moods = journal.MoodsOn(d, moods)
		feedings = journal.FeedingsOn(d, feedings)
		filtered = true
	}

	h.renderer.renderPage(w, r, "journal", JournalPageData{
		PageData: PageData{
			Title:   "Günlük",
			Version: h.renderer.version,
			Nav:     "journal",
		},
		Moods:    moods,
		Feedings: feedings,
		Toast:    snap.Toast,
		Day:      day,
		Filtered: filtered,
	})
}

// HandlePanas handles GET /panas — PANAS submission history with scores.
func (h *Handlers) HandlePanas(w http.ResponseWriter, r *http.Request) {
	snap := h.st.Snapshot()

	h.renderer.renderPage(w, r, "panas", PanasPageData{
		PageData: PageData{
			Title:   "PANAS",
			Version: h.renderer.version,
			Nav:     "panas",
		},
		Records:   snap.PanasRecords,
		Questions: journal.PanasQuestions,
	})
}

// HandleNotes handles GET /notes — list daily notes.
func (h *Handlers) HandleNotes(w http.ResponseWriter, r *http.Request) {
	snap := h.st.Snapshot()

	h.renderer.renderPage(w, r, "notes", NotesPageData{
		PageData: PageData{
			Title:   "Notlar",
			Version: h.renderer.version,
			Nav:     "notes",
		},
		Notes: snap.DailyNotes,
	})
}

// HandleNoteDetail handles GET /notes/{id} — view a single note with
// its text rendered as markdown.
func (h *Handlers) HandleNoteDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidArgument("note ID is required"))
		return
	}

	var note *journal.DailyNote
	for _, n := range h.st.Snapshot().DailyNotes {
		if n.ID == id {
			note = &n
			break
		}
	}
	if note == nil {
		h.renderer.renderError(w, r, errors.NewNotFound("note", id))
		return
	}

	h.renderer.renderPage(w, r, "note", NoteDetailPageData{
		PageData: PageData{
			Title:   journal.FormatDate(note.CreatedAt),
			Version: h.renderer.version,
			Nav:     "notes",
		},
		Note:         *note,
		RenderedHTML: renderMarkdown(note.Text),
	})
}

// HandleSnapshot handles GET /snapshot.json — the full store state as JSON.
func (h *Handlers) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, h.st.Snapshot())
}
