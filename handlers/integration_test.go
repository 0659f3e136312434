// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/daily-briefing/models"
	"github.com/danielhkuo/daily-briefing/testutil"
)

// TestFullComplianceWorkflow tests the complete end-to-end workflow:
// 1. Admin logs in
// 2. Admin enrolls two participants
// 3. Participants log in with their entry codes
// 4. Participants fetch today's instruction
// 5. One participant completes it
// 6. Dashboard reflects exactly one completion
// 7. Participant history shows the event
// 8. Admin soft-deletes a participant and the roster shrinks
func TestFullComplianceWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	authHandler := NewAuthHandler(db, cfg)
	insHandler := NewInstructionHandler(db, cfg)
	adminHandler := NewAdminHandler(db, cfg)

	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	insHandler.now = func() time.Time { return fixed }
	adminHandler.now = func() time.Time { return fixed }

	testutil.SeedTestCatalog(t, db, 12)
	testutil.CreateTestAdmin(t, db, "admin@test.com", "admin123")

	// Step 1: Admin logs in
	req := testutil.MakeRequest("POST", "/api/admin/login",
		models.AdminLoginRequest{Email: "admin@test.com", Password: "admin123"}, nil)
	w := httptest.NewRecorder()
	authHandler.AdminLogin(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 1 - Admin login failed: %d - %s", w.Code, w.Body.String())
	}

	var loginResp models.AdminLoginResponse
	json.NewDecoder(w.Body).Decode(&loginResp)
	adminAuth := map[string]string{"Authorization": "Bearer " + loginResp.Token}
	t.Logf("Step 1 - Admin logged in: %s", loginResp.Admin.ID)

	// Step 2: Enroll two participants
	names := []string{"Alice", "Bob"}
	codes := make([]string, 0, len(names))
	participantIDs := make([]string, 0, len(names))

	for _, name := range names {
		req := testutil.MakeRequest("POST", "/api/admin/participants",
			models.CreateParticipantRequest{Name: name}, adminAuth)
		w := httptest.NewRecorder()
		testutil.RequireAdmin(adminHandler.CreateParticipant)(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Step 2 - Enroll '%s' failed: %d - %s", name, w.Code, w.Body.String())
		}

		var p models.Participant
		json.NewDecoder(w.Body).Decode(&p)
		codes = append(codes, p.EntryCode)
		participantIDs = append(participantIDs, p.ID)
	}
	t.Logf("Step 2 - Enrolled %d participants", len(codes))

	// Step 3: Participants log in with their codes
	tokens := make([]string, 0, len(codes))
	for i, code := range codes {
		req := testutil.MakeRequest("POST", "/api/auth/login",
			models.ParticipantLoginRequest{Code: code}, nil)
		w := httptest.NewRecorder()
		authHandler.ParticipantLogin(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Step 3 - Login for %s failed: %d - %s", names[i], w.Code, w.Body.String())
		}

		var resp models.ParticipantLoginResponse
		json.NewDecoder(w.Body).Decode(&resp)
		tokens = append(tokens, resp.Token)
	}
	t.Logf("Step 3 - All participants logged in")

	// Step 4: Both fetch today's instruction; flags start false
	var todayID string
	for i, token := range tokens {
		req := testutil.MakeRequest("GET", "/api/instructions/today", nil, map[string]string{
			"Authorization": "Bearer " + token,
		})
		w := httptest.NewRecorder()
		testutil.RequireParticipant(insHandler.Today)(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Step 4 - Today for %s failed: %d - %s", names[i], w.Code, w.Body.String())
		}

		var resp models.TodayInstructionResponse
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Instruction.WatchedFully || resp.Instruction.Accepted {
			t.Fatalf("Step 4 - Expected fresh flags for %s", names[i])
		}
		todayID = resp.Instruction.ID
	}
	t.Logf("Step 4 - Today's instruction: %s", todayID)

	// Step 5: Alice completes it
	req = testutil.MakeRequest("POST", "/api/instructions/"+todayID+"/complete", nil, map[string]string{
		"Authorization": "Bearer " + tokens[0],
	})
	req.SetPathValue("id", todayID)
	w = httptest.NewRecorder()
	testutil.RequireParticipant(insHandler.Complete)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Complete failed: %d - %s", w.Code, w.Body.String())
	}
	t.Logf("Step 5 - Alice completed today's instruction")

	// Step 6: Dashboard shows one completion
	req = testutil.MakeRequest("GET", "/api/admin/dashboard", nil, adminAuth)
	w = httptest.NewRecorder()
	testutil.RequireAdmin(adminHandler.Dashboard)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 6 - Dashboard failed: %d - %s", w.Code, w.Body.String())
	}

	var dash models.DashboardResponse
	json.NewDecoder(w.Body).Decode(&dash)

	completedCount := 0
	for _, p := range dash.Participants {
		if p.CompletedToday {
			completedCount++
			if p.ID != participantIDs[0] {
				t.Errorf("Step 6 - Expected Alice to be the completion, got %s", p.Name)
			}
		}
	}
	if completedCount != 1 {
		t.Fatalf("Step 6 - Expected exactly 1 completion, got %d", completedCount)
	}
	t.Logf("Step 6 - Dashboard shows 1 of %d completed", len(dash.Participants))

	// Step 7: Alice's own history shows the event
	req = testutil.MakeRequest("GET", "/api/me/progress", nil, map[string]string{
		"Authorization": "Bearer " + tokens[0],
	})
	w = httptest.NewRecorder()
	testutil.RequireParticipant(insHandler.MyProgress)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 7 - Progress failed: %d - %s", w.Code, w.Body.String())
	}

	var progress models.ProgressResponse
	json.NewDecoder(w.Body).Decode(&progress)
	if len(progress.Logs) != 1 {
		t.Fatalf("Step 7 - Expected 1 history entry, got %d", len(progress.Logs))
	}
	if progress.Logs[0].InstructionID != todayID {
		t.Errorf("Step 7 - History entry references %s, expected %s", progress.Logs[0].InstructionID, todayID)
	}
	t.Logf("Step 7 - History confirmed")

	// Step 8: Soft-delete Bob; roster shrinks, history stays reachable
	req = testutil.MakeRequest("DELETE", "/api/admin/participants/"+participantIDs[1], nil, adminAuth)
	req.SetPathValue("id", participantIDs[1])
	w = httptest.NewRecorder()
	testutil.RequireAdmin(adminHandler.DeleteParticipant)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 8 - Delete failed: %d - %s", w.Code, w.Body.String())
	}

	req = testutil.MakeRequest("GET", "/api/admin/participants", nil, adminAuth)
	w = httptest.NewRecorder()
	testutil.RequireAdmin(adminHandler.ListParticipants)(w, req)

	var roster []models.Participant
	json.NewDecoder(w.Body).Decode(&roster)
	if len(roster) != 1 || roster[0].ID != participantIDs[0] {
		t.Fatalf("Step 8 - Expected only Alice on the roster, got %d entries", len(roster))
	}

	// Bob can no longer log in
	req = testutil.MakeRequest("POST", "/api/auth/login",
		models.ParticipantLoginRequest{Code: codes[1]}, nil)
	w = httptest.NewRecorder()
	authHandler.ParticipantLogin(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Step 8 - Expected deleted participant login to fail, got %d", w.Code)
	}
	t.Logf("Step 8 - Soft deletion confirmed")
}
