package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ayselgur/cradle/internal/config"
	"github.com/ayselgur/cradle/internal/errors"
	"github.com/ayselgur/cradle/internal/journal"
	"github.com/ayselgur/cradle/internal/repo"
	"github.com/ayselgur/cradle/internal/store"
)

// Handlers holds dependencies for MCP tool handlers. The store carries
// the live state for this server process; every mutation is written
// through to the repository so it survives the process.
type Handlers struct {
	repo repo.Repository
	st   *store.Store
	cfg  *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(r repo.Repository, st *store.Store, cfg *config.Config) *Handlers {
	return &Handlers{repo: r, st: st, cfg: cfg}
}

// Request types for each tool

// MoodLogRequest represents the arguments for mood_log.
type MoodLogRequest struct {
	Level int    `json:"level"`
	Note  string `json:"note,omitempty"`
}

// MoodListRequest represents the arguments for mood_list.
type MoodListRequest struct {
	Today bool `json:"today,omitempty"`
}

// FeedingLogRequest represents the arguments for feeding_log.
// The amount's unit is implied by the type: minutes for Meme, mL for
// Biberon, grams for Mama.
type FeedingLogRequest struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// FeedingListRequest represents the arguments for feeding_list.
type FeedingListRequest struct {
	Today bool `json:"today,omitempty"`
}

// PanasSubmitRequest represents the arguments for panas_submit.
type PanasSubmitRequest struct {
	Answers []PanasAnswerArg `json:"answers"`
}

// PanasAnswerArg is one answered PANAS item.
type PanasAnswerArg struct {
	QuestionID string `json:"question_id"`
	Score      int    `json:"score"`
}

// NoteAddRequest represents the arguments for note_add.
type NoteAddRequest struct {
	Text string `json:"text"`
}

// NoteUpdateRequest represents the arguments for note_update.
type NoteUpdateRequest struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// DeleteRequest represents the arguments for the per-kind delete tools.
type DeleteRequest struct {
	ID string `json:"id"`
}

// Result payloads

// DeleteResult reports the outcome of a delete tool.
type DeleteResult struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// SummaryResult is the journal_summary payload.
type SummaryResult struct {
	MoodCount         int          `json:"mood_count"`
	FeedingCount      int          `json:"feeding_count"`
	PanasCount        int          `json:"panas_count"`
	NoteCount         int          `json:"note_count"`
	TodayMoodCount    int          `json:"today_mood_count"`
	TodayFeedingCount int          `json:"today_feeding_count"`
	Toast             *store.Toast `json:"toast,omitempty"`
}

// Handler implementations

// HandleMoodLog handles the mood_log tool call.
func (h *Handlers) HandleMoodLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[MoodLogRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidArgument(err.Error())), nil
	}

	rec, err := journal.NewMood(journal.MoodLevel(input.Level), input.Note)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.repo.AddMood(ctx, *rec); err != nil {
		return errorResult(err), nil
	}
	h.st.AddMood(*rec)
	h.st.ShowToast("Duygu durumu kaydedildi! 💛", store.ToastSuccess)

	return successResult(rec)
}

// HandleMoodList handles the mood_list tool call.
func (h *Handlers) HandleMoodList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[MoodListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidArgument(err.Error())), nil
	}

	moods := h.st.Snapshot().Moods
	if input.Today {
		moods = journal.MoodsOn(timeNow(), moods)
	}

	return successResult(map[string]any{"moods": moods, "count": len(moods)})
}

// HandleMoodDelete handles the mood_delete tool call.
func (h *Handlers) HandleMoodDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidArgument(err.Error())), nil
	}

	if err := h.repo.DeleteMood(ctx, input.ID); err != nil {
		return errorResult(err), nil
	}
	h.st.DeleteMood(input.ID)
	h.st.ShowToast("Kayıt silindi", store.ToastInfo)

	return successResult(DeleteResult{Deleted: true, ID: input.ID})
}

// HandleFeedingLog handles the feeding_log tool call.
func (h *Handlers) HandleFeedingLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FeedingLogRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidArgument(err.Error())), nil
	}

	typ := journal.FeedingType(input.Type)
	var qty journal.Quantity
	switch typ {
	case journal.FeedingBreast:
		qty = journal.Minutes(input.Amount)
	case journal.FeedingBottle:
		qty = journal.Milliliters(input.Amount)
	case journal.FeedingFormula:
		qty = journal.Grams(input.Amount)
	default:
		return errorResult(errors.NewInvalidArgument("type must be one of: Meme, Biberon, Mama")), nil
	}

	rec, err := journal.NewFeeding(typ, qty, input.Note)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.repo.AddFeeding(ctx, *rec); err != nil {
		return errorResult(err), nil
	}
	h.st.AddFeeding(*rec)
	h.st.ShowToast("Beslenme kaydedildi! 🍼", store.ToastSuccess)

	return successResult(rec)
}

// HandleFeedingList handles the feeding_list tool call.
func (h *Handlers) HandleFeedingList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FeedingListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidArgument(err.Error())), nil
	}

	feedings := h.st.Snapshot().Feedings
	if input.Today {
		feedings = journal.FeedingsOn(timeNow(), feedings)
	}

	return successResult(map[string]any{"feedings": feedings, "count": len(feedings)})
}

// HandleFeedingDelete handles the feeding_delete tool call.
func (h *Handlers) HandleFeedingDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidArgument(err.Error())), nil
	}

	if err := h.repo.DeleteFeeding(ctx, input.ID); err != nil {
		return errorResult(err), nil
	}
	h.st.DeleteFeeding(input.ID)
	h.st.ShowToast("Kayıt silindi", store.ToastInfo)

	return successResult(DeleteResult{Deleted: true, ID: input.ID})
}

// HandlePanasSubmit handles the panas_submit tool call.
func (h *Handlers) HandlePanasSubmit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PanasSubmitRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidArgument(err.Error())), nil
	}

	answers := make([]journal.PanasAnswer, len(input.Answers))
	for i, a := range input.Answers {
		answers[i] = journal.PanasAnswer{QuestionID: a.QuestionID, Score: a.Score}
	}

	rec, err := journal.NewPanas(answers)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.repo.AddPanas(ctx, *rec); err != nil {
		return errorResult(err), nil
	}
	h.st.AddPanas(*rec)
	h.st.ShowToast("PANAS testi kaydedildi! 📊", store.ToastSuccess)

	return successResult(rec)
}

// HandlePanasList handles the panas_list tool call.
func (h *Handlers) HandlePanasList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records := h.st.Snapshot().PanasRecords
	return successResult(map[string]any{"panas_records": records, "count": len(records)})
}

// HandlePanasDelete handles the panas_delete tool call.
func (h *Handlers) HandlePanasDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidArgument(err.Error())), nil
	}

	if err := h.repo.DeletePanas(ctx, input.ID); err != nil {
		return errorResult(err), nil
	}
	h.st.DeletePanas(input.ID)
	h.st.ShowToast("Test kaydı silindi", store.ToastInfo)

	return successResult(DeleteResult{Deleted: true, ID: input.ID})
}

// HandleNoteAdd handles the note_add tool call.
func (h *Handlers) HandleNoteAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteAddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidArgument(err.Error())), nil
	}

	rec, err := journal.NewNote(input.Text)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.repo.AddNote(ctx, *rec); err != nil {
		return errorResult(err), nil
	}
	h.st.AddNote(*rec)
	h.st.ShowToast("Not kaydedildi! 📝", store.ToastSuccess)

	return successResult(rec)
}

// HandleNoteUpdate handles the note_update tool call.
func (h *Handlers) HandleNoteUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteUpdateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidArgument(err.Error())), nil
	}

	var existing *journal.DailyNote
	for _, n := range h.st.Snapshot().DailyNotes {
		if n.ID == input.ID {
			existing = &n
			break
		}
	}
	if existing == nil {
		return errorResult(errors.NewNotFound("note", input.ID)), nil
	}

	edited, err := journal.EditNote(*existing, input.Text)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.repo.UpdateNote(ctx, *edited); err != nil {
		return errorResult(err), nil
	}
	h.st.UpdateNote(*edited)
	h.st.ShowToast("Not güncellendi! ✅", store.ToastSuccess)

	return successResult(edited)
}

// HandleNoteList handles the note_list tool call.
func (h *Handlers) HandleNoteList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes := h.st.Snapshot().DailyNotes
	return successResult(map[string]any{"notes": notes, "count": len(notes)})
}

// HandleNoteDelete handles the note_delete tool call.
func (h *Handlers) HandleNoteDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidArgument(err.Error())), nil
	}

	if err := h.repo.DeleteNote(ctx, input.ID); err != nil {
		return errorResult(err), nil
	}
	h.st.DeleteNote(input.ID)
	h.st.ShowToast("Not silindi", store.ToastInfo)

	return successResult(DeleteResult{Deleted: true, ID: input.ID})
}

// HandleJournalSummary handles the journal_summary tool call.
func (h *Handlers) HandleJournalSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := h.st.Snapshot()
	now := timeNow()

	return successResult(SummaryResult{
		MoodCount:         len(snap.Moods),
		FeedingCount:      len(snap.Feedings),
		PanasCount:        len(snap.PanasRecords),
		NoteCount:         len(snap.DailyNotes),
		TodayMoodCount:    len(journal.MoodsOn(now, snap.Moods)),
		TodayFeedingCount: len(journal.FeedingsOn(now, snap.Feedings)),
		Toast:             snap.Toast,
	})
}

// errorResult creates an MCP error result from any error.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if cErr, ok := err.(*errors.CradleError); ok {
		errorObj := map[string]any{
			"code":    cErr.Code,
			"message": cErr.Message,
			"status":  cErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if cErr.Code != errors.ErrInternal && cErr.Details != nil {
			errorObj["details"] = cErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
