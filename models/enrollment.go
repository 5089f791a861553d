// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Enrollment is a user's registration record for the event. A user has at
// most one enrollment, and an enrollment owns at most one ticket.
type Enrollment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Birthday  time.Time `json:"birthday"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
