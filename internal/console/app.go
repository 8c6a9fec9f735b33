// Package console is the interactive front end of the equipment ledger.
// It draws arrow-key menus, collects record fields line by line, and hands
// everything to the equipment service. It holds no business rules.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/message"

	"github.com/pkordes/decom-ledger/internal/domain"
	"github.com/pkordes/decom-ledger/internal/i18n"
)

// EquipmentServicer defines the business operations the console depends on.
// Defining it here, in the consumer, lets tests drive the console with any
// implementation.
type EquipmentServicer interface {
	SaveRecord(ctx context.Context, e domain.Equipment) (domain.Equipment, error)
	UpdateRecord(ctx context.Context, e domain.Equipment) (domain.Equipment, error)
	DeleteRecord(ctx context.Context, id int) (bool, error)
	GetRecord(ctx context.Context, id int) (domain.Equipment, error)
	ListRecords(ctx context.Context) ([]domain.Equipment, error)
}

// Exporter writes the given records somewhere and returns where.
type Exporter interface {
	Export(ctx context.Context, records []domain.Equipment) (string, error)
}

var mainMenu = []string{i18n.MsgAdd, i18n.MsgView, i18n.MsgEdit, i18n.MsgDelete, i18n.MsgExport, i18n.MsgExit}

const (
	actionAdd = iota
	actionView
	actionEdit
	actionDelete
	actionExport
	actionExit
)

var kindMenu = []string{i18n.MsgKindByTime, i18n.MsgKindByReason}

// App is one interactive session.
type App struct {
	svc       EquipmentServicer
	exporter  Exporter
	term      Terminal
	in        *bufio.Reader
	p         *message.Printer
	log       *slog.Logger
	highlight *color.Color
}

// New constructs an App reading and drawing on t.
func New(svc EquipmentServicer, exporter Exporter, t Terminal, p *message.Printer, log *slog.Logger) *App {
	return &App{
		svc:       svc,
		exporter:  exporter,
		term:      t,
		in:        bufio.NewReader(t),
		p:         p,
		log:       log,
		highlight: color.New(color.FgRed),
	}
}

// Run shows the main menu until the operator chooses Exit, input ends, or
// Ctrl-C is pressed; all three return nil. Validation failures are shown
// and re-prompted, never returned. Any other error ends the session.
func (a *App) Run(ctx context.Context) error {
	for {
		choice, err := a.choose(i18n.MsgMainMenu, mainMenu)
		if err != nil {
			return a.finish(err)
		}

		switch choice {
		case actionAdd:
			err = a.add(ctx)
		case actionView:
			err = a.view(ctx)
		case actionEdit:
			err = a.edit(ctx)
		case actionDelete:
			err = a.delete(ctx)
		case actionExport:
			err = a.export(ctx)
		case actionExit:
			a.term.Clear()
			a.println(a.tr(i18n.MsgExit))
			a.log.Info("session ended")
			return nil
		}
		if err != nil {
			return a.finish(err)
		}
	}
}

// finish maps end-of-input and Ctrl-C to a clean exit.
func (a *App) finish(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		a.log.Info("session ended", "reason", "end of input")
		return nil
	case errors.Is(err, ErrInterrupted):
		a.log.Info("session ended", "reason", "interrupted")
		return nil
	default:
		a.log.Error("session failed", "error", err)
		return err
	}
}

// --- actions ----------------------------------------------------------------

func (a *App) add(ctx context.Context) error {
	choice, err := a.choose(i18n.MsgKindMenu, kindMenu)
	if err != nil {
		return err
	}
	kind := domain.KindByTime
	if choice == 1 {
		kind = domain.KindByReason
	}

	var notice string
	for {
		a.term.Clear()
		if notice != "" {
			a.println(notice)
		}

		e, err := a.readForm(kind)
		if err != nil {
			return err
		}

		saved, err := a.svc.SaveRecord(ctx, e)
		if errors.Is(err, domain.ErrValidation) {
			a.log.Warn("record rejected", "op", "save", "error", err)
			notice = a.tr(validationText(err))
			continue
		}
		if err != nil {
			return err
		}

		a.log.Info("record saved", "id", saved.ID, "kind", saved.Kind.String())
		return nil
	}
}

func (a *App) view(ctx context.Context) error {
	records, err := a.svc.ListRecords(ctx)
	if err != nil {
		return err
	}

	a.term.Clear()
	a.println(a.tr(i18n.MsgTotal, len(records)))
	for _, e := range records {
		a.println(a.formatRecord(e))
	}

	_, err = a.readLine()
	return err
}

func (a *App) edit(ctx context.Context) error {
	var notice string
	for {
		id, err := a.askID(notice)
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}
		if id < 0 {
			notice = a.tr(i18n.MsgInvalidID)
			continue
		}

		current, err := a.svc.GetRecord(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			notice = a.tr(i18n.MsgInvalidID)
			continue
		}
		if err != nil {
			return err
		}

		return a.editRecord(ctx, current)
	}
}

// editRecord re-reads every field of current, keeping its identifier and variant.
func (a *App) editRecord(ctx context.Context, current domain.Equipment) error {
	var notice string
	for {
		a.term.Clear()
		if notice != "" {
			a.println(notice)
		}

		e, err := a.readForm(current.Kind)
		if err != nil {
			return err
		}
		e.ID = current.ID

		_, err = a.svc.UpdateRecord(ctx, e)
		if errors.Is(err, domain.ErrValidation) {
			a.log.Warn("record rejected", "op", "update", "id", e.ID, "error", err)
			notice = a.tr(validationText(err))
			continue
		}
		if err != nil {
			return err
		}

		a.log.Info("record updated", "id", e.ID)
		return nil
	}
}

func (a *App) delete(ctx context.Context) error {
	var notice string
	for {
		id, err := a.askID(notice)
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}
		if id < 0 {
			notice = a.tr(i18n.MsgInvalidID)
			continue
		}

		a.term.Clear()
		a.println(a.tr(i18n.MsgConfirmDel, id))
		answer, err := a.readLine()
		if err != nil {
			return err
		}

		switch strings.TrimSpace(answer) {
		case "0":
			return nil
		case "1":
			removed, err := a.svc.DeleteRecord(ctx, id)
			if err != nil {
				return err
			}
			if !removed {
				notice = a.tr(i18n.MsgInvalidID)
				continue
			}
			a.log.Info("record deleted", "id", id)
			a.term.Clear()
			a.println(a.tr(i18n.MsgDeleted))
			_, err = a.readLine()
			return err
		default:
			notice = ""
		}
	}
}

func (a *App) export(ctx context.Context) error {
	records, err := a.svc.ListRecords(ctx)
	if err != nil {
		return err
	}

	a.term.Clear()
	path, err := a.exporter.Export(ctx, records)
	if err != nil {
		a.log.Error("export failed", "error", err)
		a.println(a.tr(i18n.MsgExportFailed, err))
	} else {
		a.log.Info("export written", "path", path, "records", len(records))
		a.println(a.tr(i18n.MsgExported, len(records), path))
	}

	_, err = a.readLine()
	return err
}

// --- input helpers ----------------------------------------------------------

// choose draws title and items and lets the operator pick one with the arrow
// keys. The selection wraps at both ends.
func (a *App) choose(title string, items []string) (int, error) {
	selected := 0
	for {
		a.term.Clear()
		a.println(a.tr(title))
		for i, item := range items {
			fmt.Fprint(a.term, "> ")
			if i == selected {
				a.highlight.Fprintln(a.term, a.tr(item))
			} else {
				a.println(a.tr(item))
			}
		}

		k, err := a.readKeyRaw()
		if err != nil {
			return 0, err
		}
		switch k {
		case keyUp:
			selected = (selected - 1 + len(items)) % len(items)
		case keyDown:
			selected = (selected + 1) % len(items)
		case keyEnter:
			return selected, nil
		case keyInterrupt:
			return 0, ErrInterrupted
		}
	}
}

// readKeyRaw reads one key with the terminal in raw mode for just that read.
func (a *App) readKeyRaw() (key, error) {
	restore, err := a.term.MakeRaw()
	if err != nil {
		return keyOther, err
	}
	defer restore()
	return readKey(a.in)
}

// readForm prompts for every field of the given variant, in on-screen order.
func (a *App) readForm(kind domain.Kind) (domain.Equipment, error) {
	labels := []string{i18n.MsgName, i18n.MsgSerial, i18n.MsgRegistered, i18n.MsgLastMaintenance, i18n.MsgDecommissioned}
	if kind == domain.KindByReason {
		labels = append(labels, i18n.MsgReason)
	}

	values := make([]string, len(labels))
	for i, label := range labels {
		v, err := a.prompt(label)
		if err != nil {
			return domain.Equipment{}, err
		}
		values[i] = v
	}

	switch kind {
	case domain.KindByTime:
		return domain.NewByTime(values[0], values[1], values[2], values[3], values[4]), nil
	case domain.KindByReason:
		return domain.NewByReason(values[0], values[1], values[2], values[3], values[4], values[5]), nil
	default:
		return domain.Equipment{}, fmt.Errorf("console: no form for %s", kind)
	}
}

// askID prompts for a record identifier. It returns 0 when the operator wants
// to go back and -1 when the input is not a number.
func (a *App) askID(notice string) (int, error) {
	a.term.Clear()
	a.println(a.tr(i18n.MsgEnterID))
	if notice != "" {
		a.println(notice)
	}

	line, err := a.readLine()
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || id < 0 {
		return -1, nil
	}
	return id, nil
}

func (a *App) prompt(label string) (string, error) {
	a.println(a.tr(label))
	return a.readLine()
}

// readLine prints the input marker and reads one line without its terminator.
// A final line without a newline is returned; io.EOF comes on the next call.
func (a *App) readLine() (string, error) {
	fmt.Fprint(a.term, "> ")
	line, err := a.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// --- output helpers ---------------------------------------------------------

func (a *App) tr(key string, args ...any) string {
	return a.p.Sprintf(key, args...)
}

func (a *App) println(s string) {
	fmt.Fprintln(a.term, s)
}

// formatRecord renders one line of the record list.
func (a *App) formatRecord(e domain.Equipment) string {
	var label string
	switch e.Kind {
	case domain.KindByTime:
		label = a.tr(i18n.MsgLabelByTime)
	case domain.KindByReason:
		label = a.tr(i18n.MsgLabelReason)
	default:
		label = e.Kind.String()
	}

	fields := []string{
		fmt.Sprintf("id: %d", e.ID),
		label,
		e.Name,
		e.SerialNumber,
		e.RegistrationDate,
		e.LastMaintenanceDate,
		e.DecommissionDate,
	}
	if e.Kind == domain.KindByReason {
		fields = append(fields, e.Reason)
	}
	return strings.Join(fields, " | ")
}
