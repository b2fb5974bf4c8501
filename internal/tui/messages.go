package tui

import (
	"github.com/MKhiriev/go-expense-keeper/models"
)

type expensesLoadedMsg struct {
	items []models.Expense
	err   error
}

type expenseSavedMsg struct {
	err error
}

type expenseDeletedMsg struct {
	err error
}

type syncDoneMsg struct {
	err error
}

type syncStatusMsg struct {
	event models.SyncStatusEvent
}

type themeSavedMsg struct {
	dark bool
	err  error
}

type copiedMsg struct {
	err error
}
