package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayselgur/cradle/internal/config"
	"github.com/ayselgur/cradle/internal/errors"
	"github.com/ayselgur/cradle/internal/journal"
	"github.com/ayselgur/cradle/internal/repo"
	"github.com/ayselgur/cradle/internal/store"
	"github.com/ayselgur/cradle/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(r repo.Repository, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "cradle",
		Usage:   "Baby journal for new mothers",
		Version: Version,
		Commands: []*cli.Command{
			moodCmd(r),
			feedingCmd(r),
			panasCmd(r),
			noteCmd(r),
			summaryCmd(r),
			seedCmd(r),
			serveCmd(r, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// moodCmd groups the mood subcommands.
func moodCmd(r repo.Repository) *cli.Command {
	return &cli.Command{
		Name:  "mood",
		Usage: "Log, list and delete mood entries",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Log a mood (1=Çok Mutsuz .. 5=Çok Mutlu)",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "level", Aliases: []string{"l"}, Required: true, Usage: "Mood level 1-5"},
					&cli.StringFlag{Name: "note", Aliases: []string{"n"}, Usage: "Optional note"},
				},
				Action: func(c *cli.Context) error {
					rec, err := journal.NewMood(journal.MoodLevel(c.Int("level")), c.String("note"))
					if err != nil {
						return outputError(err)
					}
					if err := r.AddMood(c.Context, *rec); err != nil {
						return outputError(err)
					}
					return outputJSON(rec)
				},
			},
			{
				Name:  "list",
				Usage: "List mood entries, newest first",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "today", Usage: "Only entries recorded today"},
				},
				Action: func(c *cli.Context) error {
					moods, err := r.Moods(c.Context)
					if err != nil {
						return outputError(err)
					}
					if c.Bool("today") {
						moods = journal.MoodsOn(time.Now(), moods)
					}
					return outputJSON(map[string]any{"moods": moods, "count": len(moods)})
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a mood entry",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return outputError(errors.NewInvalidArgument("id is required"))
					}
					if err := r.DeleteMood(c.Context, id); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"deleted": true, "id": id})
				},
			},
		},
	}
}

// feedingCmd groups the feeding subcommands.
func feedingCmd(r repo.Repository) *cli.Command {
	return &cli.Command{
		Name:  "feeding",
		Usage: "Log, list and delete feeding entries",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Log a feeding (Meme: dk, Biberon: mL, Mama: g)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Required: true, Usage: "Feeding type: Meme|Biberon|Mama"},
					&cli.IntFlag{Name: "amount", Aliases: []string{"a"}, Required: true, Usage: "Amount in the type's unit"},
					&cli.StringFlag{Name: "note", Aliases: []string{"n"}, Usage: "Optional note"},
				},
				Action: func(c *cli.Context) error {
					typ := journal.FeedingType(c.String("type"))
					amount := c.Int("amount")

					var qty journal.Quantity
					switch typ {
					case journal.FeedingBreast:
						qty = journal.Minutes(amount)
					case journal.FeedingBottle:
						qty = journal.Milliliters(amount)
					case journal.FeedingFormula:
						qty = journal.Grams(amount)
					default:
						return outputError(errors.NewInvalidArgument("type must be one of: Meme, Biberon, Mama"))
					}

					rec, err := journal.NewFeeding(typ, qty, c.String("note"))
					if err != nil {
						return outputError(err)
					}
					if err := r.AddFeeding(c.Context, *rec); err != nil {
						return outputError(err)
					}
					return outputJSON(rec)
				},
			},
			{
				Name:  "list",
				Usage: "List feeding entries, newest first",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "today", Usage: "Only entries recorded today"},
				},
				Action: func(c *cli.Context) error {
					feedings, err := r.Feedings(c.Context)
					if err != nil {
						return outputError(err)
					}
					if c.Bool("today") {
						feedings = journal.FeedingsOn(time.Now(), feedings)
					}
					return outputJSON(map[string]any{"feedings": feedings, "count": len(feedings)})
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a feeding entry",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return outputError(errors.NewInvalidArgument("id is required"))
					}
					if err := r.DeleteFeeding(c.Context, id); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"deleted": true, "id": id})
				},
			},
		},
	}
}

// panasCmd groups the PANAS subcommands.
func panasCmd(r repo.Repository) *cli.Command {
	return &cli.Command{
		Name:  "panas",
		Usage: "Submit, list and delete PANAS questionnaires",
		Subcommands: []*cli.Command{
			{
				Name:  "submit",
				Usage: "Submit a questionnaire (reads answers JSON from stdin)",
				Description: `Reads a JSON array of 20 answers from stdin, e.g.
   [{"questionId":"q1","score":3}, ..., {"questionId":"q20","score":2}]`,
				Action: func(c *cli.Context) error {
					if !stdinHasData() {
						return outputError(errors.NewInvalidArgument("answers must be piped via stdin as a JSON array"))
					}
					raw, err := readStdin()
					if err != nil {
						return outputError(errors.NewInternal(err))
					}

					var answers []journal.PanasAnswer
					if err := json.Unmarshal([]byte(raw), &answers); err != nil {
						return outputError(errors.NewInvalidArgument("answers must be a JSON array of {questionId, score}"))
					}

					rec, err := journal.NewPanas(answers)
					if err != nil {
						return outputError(err)
					}
					if err := r.AddPanas(c.Context, *rec); err != nil {
						return outputError(err)
					}
					return outputJSON(rec)
				},
			},
			{
				Name:  "list",
				Usage: "List questionnaires with scores, newest first",
				Action: func(c *cli.Context) error {
					records, err := r.PanasRecords(c.Context)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"panasRecords": records, "count": len(records)})
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a questionnaire",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return outputError(errors.NewInvalidArgument("id is required"))
					}
					if err := r.DeletePanas(c.Context, id); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"deleted": true, "id": id})
				},
			},
		},
	}
}

// noteCmd groups the daily note subcommands.
func noteCmd(r repo.Repository) *cli.Command {
	return &cli.Command{
		Name:  "note",
		Usage: "Add, edit, list and delete daily notes",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a note (argument or stdin)",
				ArgsUsage: "[text]",
				Action: func(c *cli.Context) error {
					text, err := textArgOrStdin(c)
					if err != nil {
						return outputError(err)
					}
					rec, err := journal.NewNote(text)
					if err != nil {
						return outputError(err)
					}
					if err := r.AddNote(c.Context, *rec); err != nil {
						return outputError(err)
					}
					return outputJSON(rec)
				},
			},
			{
				Name:      "edit",
				Usage:     "Replace a note's text (argument or stdin)",
				ArgsUsage: "<id> [text]",
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return outputError(errors.NewInvalidArgument("id is required"))
					}

					var text string
					if c.NArg() > 1 {
						text = strings.Join(c.Args().Slice()[1:], " ")
					} else if stdinHasData() {
						var err error
						if text, err = readStdin(); err != nil {
							return outputError(errors.NewInternal(err))
						}
					}

					existing, err := findNote(c, r, id)
					if err != nil {
						return outputError(err)
					}

					edited, err := journal.EditNote(*existing, text)
					if err != nil {
						return outputError(err)
					}
					if err := r.UpdateNote(c.Context, *edited); err != nil {
						return outputError(err)
					}
					return outputJSON(edited)
				},
			},
			{
				Name:  "list",
				Usage: "List notes, newest first",
				Action: func(c *cli.Context) error {
					notes, err := r.Notes(c.Context)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"notes": notes, "count": len(notes)})
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a note",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return outputError(errors.NewInvalidArgument("id is required"))
					}
					if err := r.DeleteNote(c.Context, id); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"deleted": true, "id": id})
				},
			},
		},
	}
}

// summaryCmd creates the summary command.
func summaryCmd(r repo.Repository) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Show per-kind record counts and today's activity",
		Action: func(c *cli.Context) error {
			moods, feedings, panas, notes, err := repo.Load(c.Context, r)
			if err != nil {
				return outputError(err)
			}

			now := time.Now()
			return outputJSON(map[string]any{
				"moodCount":         len(moods),
				"feedingCount":      len(feedings),
				"panasCount":        len(panas),
				"noteCount":         len(notes),
				"todayMoodCount":    len(journal.MoodsOn(now, moods)),
				"todayFeedingCount": len(journal.FeedingsOn(now, feedings)),
			})
		},
	}
}

// seedCmd creates the seed command.
func seedCmd(r repo.Repository) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Insert demo journal data",
		Action: func(c *cli.Context) error {
			if err := repo.Seed(c.Context, r); err != nil {
				return outputError(err)
			}
			return outputJSON(map[string]any{"seeded": true})
		},
	}
}

// serveCmd creates the serve command for the web viewer.
func serveCmd(r repo.Repository, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the read-only journal viewer",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Aliases: []string{"b"}, Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8420, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			st := store.New(cfg.ToastDuration())
			defer st.Close()

			moods, feedings, panas, notes, err := repo.Load(c.Context, r)
			if err != nil {
				return outputError(err)
			}
			st.SetInitial(moods, feedings, panas, notes)

			srv := web.NewServer(st, cfg, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// textArgOrStdin takes note text from positional args, falling back to stdin.
func textArgOrStdin(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}
	if stdinHasData() {
		text, err := readStdin()
		if err != nil {
			return "", errors.NewInternal(err)
		}
		return text, nil
	}
	return "", errors.NewInvalidArgument("text is required (argument or stdin)")
}

// findNote fetches a note by id so edit can preserve its creation time.
func findNote(c *cli.Context, r repo.Repository, id string) (*journal.DailyNote, error) {
	notes, err := r.Notes(c.Context)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if notes[i].ID == id {
			return &notes[i], nil
		}
	}
	return nil, errors.NewNotFound("note", id)
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if cErr, ok := err.(*errors.CradleError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", cErr.Code, cErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
