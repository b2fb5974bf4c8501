// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/models"
)

type expenseRepository struct {
	*DB
}

// NewExpenseRepository returns the SQLite-backed implementation of
// [ExpenseRepository].
func NewExpenseRepository(db *DB) ExpenseRepository {
	return &expenseRepository{DB: db}
}

func (r *expenseRepository) Put(ctx context.Context, expense models.Expense) error {
	log := logger.FromContext(ctx)

	doc, err := json.Marshal(expense.Document())
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.Put").Msg("error encoding expense document")
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	result, err := r.DB.ExecContext(ctx, putExpenseQuery,
		expense.ID, string(doc), expense.Date.UTC().UnixNano(), expense.Synced)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.Put").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.Put").Msg("error getting number of affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Error().Str("func", "expenseRepository.Put").Msg("no rows were affected")
		return ErrExpenseNotSaved
	}

	return nil
}

func (r *expenseRepository) Get(ctx context.Context, id string) (models.Expense, error) {
	log := logger.FromContext(ctx)

	var (
		doc    string
		synced bool
	)
	err := r.DB.QueryRowContext(ctx, getExpenseQuery, id).Scan(&doc, &synced)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Expense{}, ErrExpenseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.Get").Msg("error scanning row")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	expense, err := decodeExpenseRow(doc, synced)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.Get").Msg("error decoding expense document")
		return models.Expense{}, err
	}

	return expense, nil
}

func (r *expenseRepository) GetAll(ctx context.Context) ([]models.Expense, error) {
	return r.queryExpenses(ctx, "expenseRepository.GetAll", getAllExpensesQuery)
}

func (r *expenseRepository) GetUnsynced(ctx context.Context) ([]models.Expense, error) {
	return r.queryExpenses(ctx, "expenseRepository.GetUnsynced", getUnsyncedQuery)
}

func (r *expenseRepository) MarkSynced(ctx context.Context, id string, synced bool) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, markExpenseSyncedQuery, synced, id)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.MarkSynced").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.MarkSynced").Msg("error getting number of affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	// deleting an id that is already gone is a no-op, not an error
	if _, err := r.DB.ExecContext(ctx, deleteExpenseQuery, id); err != nil {
		log.Err(err).Str("func", "expenseRepository.Delete").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *expenseRepository) Contains(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.DB.QueryRowContext(ctx, containsExpenseQuery, id).Scan(&exists); err != nil {
		log.Err(err).Str("func", "expenseRepository.Contains").Msg("error scanning row")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return exists, nil
}

func (r *expenseRepository) queryExpenses(ctx context.Context, funcName string, query string) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var (
			doc    string
			synced bool
		)
		if err := rows.Scan(&doc, &synced); err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		expense, err := decodeExpenseRow(doc, synced)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error decoding expense document")
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return expenses, nil
}

// decodeExpenseRow turns one stored row back into a domain record. The
// synced column wins over whatever flag the serialized document carries.
func decodeExpenseRow(doc string, synced bool) (models.Expense, error) {
	var document models.ExpenseDocument
	if err := json.Unmarshal([]byte(doc), &document); err != nil {
		return models.Expense{}, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}

	expense, err := document.Expense()
	if err != nil {
		return models.Expense{}, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}
	expense.Synced = synced

	return expense, nil
}
