package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

const formDateLayout = "2006-01-02"

const (
	formFieldTitle = iota
	formFieldAmount
	formFieldDate
	formFieldCategory
	formFieldPayment
	formFieldDescription
	formFieldCount
)

var (
	errFormTitleRequired  = errors.New("title is required")
	errFormBadAmount      = errors.New("amount must be a number, e.g. 12.50")
	errFormBadDate        = errors.New("date must be YYYY-MM-DD")
	errFormAmountNegative = errors.New("amount cannot be negative")
)

// expenseForm is the create/edit input screen. The same form serves both
// flows; editing keeps the original record's id and sync flag untouched
// until the engine rewrites them.
type expenseForm struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	original   models.Expense
	errMsg     string
	submitting bool
}

func newExpenseForm(existing *models.Expense) expenseForm {
	placeholders := [formFieldCount]string{
		"groceries",
		"12.50",
		formDateLayout,
		"food",
		"cash / card / transfer / other",
		"optional note",
	}

	inputs := make([]textinput.Model, formFieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Width = 40
		inputs[i] = in
	}
	inputs[formFieldTitle].Focus()

	f := expenseForm{inputs: inputs}

	if existing != nil {
		f.editing = true
		f.original = *existing
		f.inputs[formFieldTitle].SetValue(existing.Title)
		f.inputs[formFieldAmount].SetValue(existing.Amount.String())
		f.inputs[formFieldDate].SetValue(existing.Date.Format(formDateLayout))
		f.inputs[formFieldCategory].SetValue(existing.Category)
		f.inputs[formFieldPayment].SetValue(existing.PaymentMethod)
		f.inputs[formFieldDescription].SetValue(existing.Description)
	} else {
		f.inputs[formFieldDate].SetValue(time.Now().Format(formDateLayout))
		f.inputs[formFieldPayment].SetValue(models.DefaultPaymentMethod)
	}

	return f
}

func (f expenseForm) update(msg tea.Msg) (expenseForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.inputs[f.focus].Blur()
			f.focus = (f.focus + 1) % len(f.inputs)
			f.inputs[f.focus].Focus()
			return f, nil
		case "shift+tab", "up":
			f.inputs[f.focus].Blur()
			f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
			f.inputs[f.focus].Focus()
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// expense assembles the record from the field values. Field-level checks
// here only cover what cannot reach the engine as a typed value; the
// engine's validator has the final word.
func (f expenseForm) expense() (models.Expense, error) {
	title := strings.TrimSpace(f.inputs[formFieldTitle].Value())
	if title == "" {
		return models.Expense{}, errFormTitleRequired
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(f.inputs[formFieldAmount].Value()))
	if err != nil {
		return models.Expense{}, errFormBadAmount
	}
	if amount.IsNegative() {
		return models.Expense{}, errFormAmountNegative
	}

	date, err := time.Parse(formDateLayout, strings.TrimSpace(f.inputs[formFieldDate].Value()))
	if err != nil {
		return models.Expense{}, errFormBadDate
	}

	expense := models.Expense{
		Title:         title,
		Amount:        amount,
		Date:          date,
		Category:      strings.TrimSpace(f.inputs[formFieldCategory].Value()),
		PaymentMethod: strings.TrimSpace(f.inputs[formFieldPayment].Value()),
		Description:   strings.TrimSpace(f.inputs[formFieldDescription].Value()),
	}
	if expense.PaymentMethod == "" {
		expense.PaymentMethod = models.DefaultPaymentMethod
	}

	if f.editing {
		expense.ID = f.original.ID
	}

	return expense, nil
}

func (f expenseForm) view(pal palette) string {
	title := "NEW EXPENSE"
	if f.editing {
		title = "EDIT EXPENSE"
	}

	labels := [formFieldCount]string{
		"Title      ",
		"Amount     ",
		"Date       ",
		"Category   ",
		"Payment    ",
		"Note       ",
	}

	out := ""
	for i, in := range f.inputs {
		out += labels[i] + ": [ " + in.View() + " ]\n"
	}

	if f.submitting {
		out += "\nSaving...\n"
	}
	if f.errMsg != "" {
		out += "\n" + pal.errMsg.Render("Error: "+f.errMsg) + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "tab: next field │ shift+tab: previous field │ enter: save │ esc: cancel")
}
