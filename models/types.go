// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Role constants carried in JWT claims
const (
	RoleAdmin       = "admin"
	RoleParticipant = "participant"
)

// Request types

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ParticipantLoginRequest struct {
	Code string `json:"code"`
}

type CreateParticipantRequest struct {
	Name string `json:"name"`
}

type UpdateInstructionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
	// OrderIndex is accepted only so attempts to change it can be rejected
	// explicitly; the rotation key of an existing instruction is immutable.
	OrderIndex *int `json:"order_index,omitempty"`
}

// Response types

type AdminLoginResponse struct {
	Token string       `json:"token"`
	Admin AdminProfile `json:"admin"`
}

type AdminProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type ParticipantLoginResponse struct {
	Token       string             `json:"token"`
	Participant ParticipantProfile `json:"participant"`
}

type ParticipantProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TodayInstructionResponse struct {
	TodayIndex  int              `json:"today_index"`
	Instruction InstructionToday `json:"instruction"`
}

// InstructionToday is today's catalog entry annotated with the caller's
// own completion flags for the current day.
type InstructionToday struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	OrderIndex   int    `json:"order_index"`
	WatchedFully bool   `json:"watched_fully"`
	Accepted     bool   `json:"accepted"`
}

type ProgressResponse struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Logs []ProgressEntry `json:"logs"`
}

type DashboardResponse struct {
	TodayIndex       int              `json:"today_index"`
	TodayInstruction *Instruction     `json:"today_instruction"`
	Participants     []DashboardEntry `json:"participants"`
}

type DeleteParticipantResponse struct {
	Success bool `json:"success"`
}

// Domain types

type Participant struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	EntryCode string     `json:"entry_code"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type Instruction struct {
	ID          string `json:"id"`
	OrderIndex  int    `json:"order_index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
}

// WatchEvent is the one durable record per (participant, instruction, day).
type WatchEvent struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participant_id"`
	InstructionID string    `json:"instruction_id"`
	WatchedFully  bool      `json:"watched_fully"`
	Accepted      bool      `json:"accepted"`
	Day           string    `json:"day"` // YYYY-MM-DD, UTC
	WatchedAt     time.Time `json:"watched_at"`
}

// ProgressEntry is a watch event joined with its instruction for history views.
type ProgressEntry struct {
	ID               string    `json:"id"`
	InstructionID    string    `json:"instruction_id"`
	InstructionTitle string    `json:"instruction_title"`
	OrderIndex       int       `json:"order_index"`
	WatchedFully     bool      `json:"watched_fully"`
	Accepted         bool      `json:"accepted"`
	Day              string    `json:"day"`
	WatchedAt        time.Time `json:"watched_at"`
}

// DashboardEntry is one active participant's completion state for today.
type DashboardEntry struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EntryCode      string `json:"entry_code"`
	CompletedToday bool   `json:"completed_today"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
