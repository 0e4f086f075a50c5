package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var moodLogToolDef = mcp.NewTool("mood_log",
	mcp.WithDescription("Log the mother's current mood. Level runs 1 (Çok Mutsuz) to 5 (Çok Mutlu); the label and emoji are derived from the level."),
	mcp.WithNumber("level",
		mcp.Required(),
		mcp.Description("Mood level from 1 to 5"),
	),
	mcp.WithString("note",
		mcp.Description("Optional free-text note attached to the mood entry"),
	),
)

var moodListToolDef = mcp.NewTool("mood_list",
	mcp.WithDescription("List mood entries, newest first."),
	mcp.WithBoolean("today",
		mcp.Description("When true, only return entries recorded today"),
	),
)

var moodDeleteToolDef = mcp.NewTool("mood_delete",
	mcp.WithDescription("Delete a mood entry by id."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("ID of the mood entry to delete"),
	),
)

var feedingLogToolDef = mcp.NewTool("feeding_log",
	mcp.WithDescription("Log a feeding. Type is one of Meme (breastfeeding, minutes), Biberon (bottle, mL) or Mama (solid food, grams); the amount's unit follows the type."),
	mcp.WithString("type",
		mcp.Required(),
		mcp.Description("Feeding type: Meme, Biberon or Mama"),
	),
	mcp.WithNumber("amount",
		mcp.Required(),
		mcp.Description("Amount in the type's unit: 1-60 minutes for Meme, 10-300 mL for Biberon, 10-200 g for Mama"),
	),
	mcp.WithString("note",
		mcp.Description("Optional free-text note attached to the feeding entry"),
	),
)

var feedingListToolDef = mcp.NewTool("feeding_list",
	mcp.WithDescription("List feeding entries, newest first."),
	mcp.WithBoolean("today",
		mcp.Description("When true, only return entries recorded today"),
	),
)

var feedingDeleteToolDef = mcp.NewTool("feeding_delete",
	mcp.WithDescription("Delete a feeding entry by id."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("ID of the feeding entry to delete"),
	),
)

var panasSubmitToolDef = mcp.NewTool("panas_submit",
	mcp.WithDescription("Submit a completed PANAS questionnaire. Exactly 20 answers are required, one per question q1-q20, each scored 0-5. Positive and negative scores are computed from the answers."),
	mcp.WithArray("answers",
		mcp.Required(),
		mcp.Description("All 20 answered items"),
		mcp.Items(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question_id": map[string]any{
					"type":        "string",
					"description": "Question id, q1 through q20",
				},
				"score": map[string]any{
					"type":        "number",
					"description": "Score from 0 (Hiç) to 5 (Çok Fazla)",
				},
			},
			"required": []string{"question_id", "score"},
		}),
	),
)

var panasListToolDef = mcp.NewTool("panas_list",
	mcp.WithDescription("List submitted PANAS questionnaires with their scores, newest first."),
)

var panasDeleteToolDef = mcp.NewTool("panas_delete",
	mcp.WithDescription("Delete a PANAS record by id."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("ID of the PANAS record to delete"),
	),
)

var noteAddToolDef = mcp.NewTool("note_add",
	mcp.WithDescription("Add a daily note. Text must not be empty or whitespace-only."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Note text"),
	),
)

var noteUpdateToolDef = mcp.NewTool("note_update",
	mcp.WithDescription("Replace the text of an existing daily note. The note keeps its id and creation time."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("ID of the note to update"),
	),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("New note text"),
	),
)

var noteListToolDef = mcp.NewTool("note_list",
	mcp.WithDescription("List daily notes, newest first."),
)

var noteDeleteToolDef = mcp.NewTool("note_delete",
	mcp.WithDescription("Delete a daily note by id."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("ID of the note to delete"),
	),
)

var journalSummaryToolDef = mcp.NewTool("journal_summary",
	mcp.WithDescription("Summarize the journal: per-kind record counts, today's mood and feeding counts, and the active toast if one is showing."),
)
