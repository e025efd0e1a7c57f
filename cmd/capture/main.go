// Command capture is a terminal client for the expense capture API. It drives the same
// session state as the mobile client: rollups per month and the add/correct popup.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"expense-capture/internal/aggregation"
	"expense-capture/internal/client"
	"expense-capture/internal/correctionui"
	"expense-capture/internal/dto"

	"github.com/google/uuid"
)

const usage = `usage: capture [-server URL] [-user UUID] <command> [flags] [args]

commands:
  add [-fix N=Category] <text>     parse a text expense
  voice [-fix N=Category] <file>   upload a recording
  list [-category Category]        list expenses
  summary                          monthly rollups built locally
  correct -id ID -category Cat     re-label one expense
  corrections                      training data export
  history -id ID                   corrections of one expense
  health                           server health
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type app struct {
	api     *client.Client
	session *correctionui.Session
	out     io.Writer
	now     func() time.Time
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("capture", flag.ContinueOnError)
	global.SetOutput(stderr)
	server := global.String("server", envOr("CAPTURE_SERVER", "http://localhost:3000"), "API base URL")
	user := global.String("user", os.Getenv("CAPTURE_USER_ID"), "user id")
	if err := global.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if global.NArg() == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	api := client.New(*server, client.WithLogger(logger))

	userID := uuid.Nil
	if *user != "" {
		parsed, err := uuid.Parse(*user)
		if err != nil {
			return fmt.Errorf("%w: -user must be a UUID", errUsage)
		}
		userID = parsed
	}

	a := &app{
		api: api,
		session: correctionui.NewSession(userID, correctionui.Options{
			Corrector: api,
			Logger:    logger,
		}),
		out: stdout,
		now: time.Now,
	}
	defer a.session.Popup().Close()

	command, rest := global.Arg(0), global.Args()[1:]
	switch command {
	case "add":
		return a.add(ctx, rest)
	case "voice":
		return a.voice(ctx, rest)
	case "list":
		return a.list(ctx, rest)
	case "summary":
		return a.summary(ctx)
	case "correct":
		return a.correct(ctx, rest)
	case "corrections":
		return a.corrections(ctx)
	case "history":
		return a.history(ctx, rest)
	case "health":
		if err := api.Health(ctx); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "healthy")
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (a *app) requireUser() (uuid.UUID, error) {
	id := a.session.UserID()
	if id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: -user is required for this command", errUsage)
	}
	return id, nil
}

func (a *app) add(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fix := fs.String("fix", "", "correct item N to Category right away, as N=Category")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	text := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if text == "" {
		return fmt.Errorf("%w: add needs the expense text", errUsage)
	}
	if err := checkFix(*fix); err != nil {
		return err
	}
	userID, err := a.requireUser()
	if err != nil {
		return err
	}

	resp, err := a.api.ParseExpense(ctx, userID, text)
	if err != nil {
		return err
	}
	return a.showParsed(resp, *fix)
}

func (a *app) voice(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("voice", flag.ContinueOnError)
	fix := fs.String("fix", "", "correct item N to Category right away, as N=Category")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: voice needs one audio file", errUsage)
	}
	if err := checkFix(*fix); err != nil {
		return err
	}
	userID, err := a.requireUser()
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()

	resp, err := a.api.ParseAudio(ctx, userID, filepath.Base(path), f)
	if err != nil {
		return err
	}
	return a.showParsed(resp, *fix)
}

// showParsed feeds the response through the session so the popup and rollups see it,
// then applies an optional immediate correction
func (a *app) showParsed(resp *dto.ParseExpenseResponse, fix string) error {
	a.session.OnParsed(resp)

	fmt.Fprintf(a.out, "%q (%s, month %s)\n", resp.RawText, resp.Source, resp.MonthContext)
	for i, e := range resp.Expenses {
		fmt.Fprintf(a.out, "  [%d] %s %s %-13s %s\n", i, e.Amount.StringFixed(2), e.Currency, e.Category, e.Title)
	}
	for _, failed := range resp.Errors {
		fmt.Fprintf(a.out, "  not saved: %s (%s)\n", failed.Title, failed.Error)
	}

	if fix == "" {
		return nil
	}

	index, category, err := parseFix(fix)
	if err != nil {
		return err
	}

	popup := a.session.Popup()
	if err := popup.SelectItem(index); err != nil {
		return fmt.Errorf("cannot correct item %d: %w", index, err)
	}
	if err := popup.SelectCategory(category); err != nil {
		return err
	}
	popup.Wait()

	fmt.Fprintln(a.out, correctionui.ThanksFeedback)
	return nil
}

func checkFix(raw string) error {
	if raw == "" {
		return nil
	}
	_, _, err := parseFix(raw)
	return err
}

func parseFix(raw string) (int, string, error) {
	left, right, ok := strings.Cut(raw, "=")
	if !ok {
		return 0, "", fmt.Errorf("%w: -fix must look like 0=Food", errUsage)
	}
	index, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, "", fmt.Errorf("%w: -fix index must be a number", errUsage)
	}
	return index, strings.TrimSpace(right), nil
}

func (a *app) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	category := fs.String("category", "", "only this category")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	userID, err := a.requireUser()
	if err != nil {
		return err
	}

	resp, err := a.api.ListExpenses(ctx, userID, *category)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: %s\n", resp.Category, resp.Total.StringFixed(2))
	for _, e := range resp.Expenses {
		fmt.Fprintf(a.out, "  %s  %s  %s %s %-13s %s\n",
			e.ExpenseID, e.OccurredAt.Local().Format("2006-01-02"), e.Amount.StringFixed(2), e.Currency, e.Category, e.Title)
	}
	return nil
}

// summary rebuilds the rollups on the client from the full history, the same way the
// app does after login
func (a *app) summary(ctx context.Context) error {
	userID, err := a.requireUser()
	if err != nil {
		return err
	}

	resp, err := a.api.ListExpenses(ctx, userID, "")
	if err != nil {
		return err
	}
	a.session.Load(resp.Expenses)
	store := a.session.Store()

	if store.IsNewUser() {
		fmt.Fprintf(a.out, "%d expenses logged so far, keep going\n", store.LogsCount())
	}

	for _, key := range store.RecentMonths(a.now(), 6) {
		data := store.Month(key)
		fmt.Fprintf(a.out, "%s  %s\n", key, data.Total.StringFixed(2))
		printCategories(a.out, data)
	}
	return nil
}

func printCategories(w io.Writer, data aggregation.MonthData) {
	for _, category := range data.Ranked() {
		fmt.Fprintf(w, "    %-13s %s\n", category, data.Categories[category].StringFixed(2))
	}
}

func (a *app) correct(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("correct", flag.ContinueOnError)
	id := fs.String("id", "", "expense id")
	category := fs.String("category", "", "new category")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *id == "" || *category == "" {
		return fmt.Errorf("%w: correct needs -id and -category", errUsage)
	}

	if err := a.api.CorrectExpense(ctx, dto.CorrectExpenseRequest{
		ExpenseID:         *id,
		CorrectedCategory: *category,
	}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, correctionui.ThanksFeedback)
	return nil
}

func (a *app) corrections(ctx context.Context) error {
	resp, err := a.api.Corrections(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d corrections\n", resp.Total)
	for _, c := range resp.Corrections {
		predicted := "-"
		if c.PredictedCategory != nil {
			predicted = *c.PredictedCategory
		}
		fmt.Fprintf(a.out, "  %s -> %s  %q\n", predicted, c.CorrectCategory, c.InputText)
	}
	return nil
}

func (a *app) history(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	id := fs.String("id", "", "expense id")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	expenseID, err := uuid.Parse(*id)
	if err != nil {
		return fmt.Errorf("%w: history needs -id as a UUID", errUsage)
	}

	resp, err := a.api.CorrectionHistory(ctx, expenseID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: %d corrections\n", resp.ExpenseID, resp.Total)
	for _, c := range resp.Corrections {
		predicted := "-"
		if c.PredictedCategory != nil {
			predicted = *c.PredictedCategory
		}
		fmt.Fprintf(a.out, "  %s  %s -> %s\n", c.Timestamp.Local().Format("2006-01-02 15:04"), predicted, c.CorrectedCategory)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
