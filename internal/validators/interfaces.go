// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the business-rule checks applied to expense
// records before they reach a store.
//
// The [Validator] interface is deliberately generic: the sync engine on the
// client and the document service on the server both run the same
// [ExpenseValidator] against whichever representation they hold, optionally
// restricted to the fields a partial operation touches.
package validators

import "context"

// Validator validates arbitrary input values. Implementations may perform
// structural validation, semantic checks, cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
