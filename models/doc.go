// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AdminLoginRequest: email, password
  - ParticipantLoginRequest: code (6-character entry code)
  - CreateParticipantRequest: name
  - UpdateInstructionRequest: title, description, video_url

# Response Types

Types for JSON responses:

  - AdminLoginResponse: token, admin profile
  - ParticipantLoginResponse: token, participant profile
  - TodayInstructionResponse: today_index, instruction with own flags
  - ProgressResponse: participant identity plus watch history
  - DashboardResponse: today's instruction and per-participant completion
  - DeleteParticipantResponse: success
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Participant: enrolled person with unique entry code and soft-delete marker
  - Instruction: catalog entry keyed by its immutable order_index (1..N)
  - WatchEvent: one record per (participant, instruction, day)
  - ProgressEntry: watch event joined with instruction metadata
  - DashboardEntry: a participant's completion state for the current day

# Constants

Roles carried in tokens:

	RoleAdmin       = "admin"
	RoleParticipant = "participant"
*/
package models
