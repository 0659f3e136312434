// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielhkuo/daily-briefing/auth"
)

// seedInstruction is one catalog entry in the fixed daily rotation.
type seedInstruction struct {
	OrderIndex  int
	Title       string
	Description string
	VideoURL    string
}

var instructionData = []seedInstruction{
	{
		OrderIndex:  1,
		Title:       "Workplace Hazard Awareness",
		Description: "Identifying and mitigating common workplace hazards. Learn to recognize potential dangers before they become incidents.",
		VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
	},
	{
		OrderIndex:  2,
		Title:       "Emergency Evacuation Procedures",
		Description: "Step-by-step evacuation routes and assembly points. Know exactly what to do when the alarm sounds.",
		VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
	},
	{
		OrderIndex:  3,
		Title:       "Personal Protective Equipment",
		Description: "Correct usage and maintenance of PPE. Proper equipment is your last line of defense — use it right.",
		VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/Sintel.mp4",
	},
	{
		OrderIndex:  4,
		Title:       "Fire Safety & Extinguisher Use",
		Description: "How to operate fire extinguishers and when to evacuate. Remember PASS: Pull, Aim, Squeeze, Sweep.",
		VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
	},
	{
		OrderIndex:  5,
		Title:       "Manual Handling & Lifting",
		Description: "Safe lifting techniques to prevent musculoskeletal injuries. Bend your knees, not your back.",
		VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/SubaruOutbackOnStreetAndDirt.mp4",
	},
	{
		OrderIndex:  6,
		Title:       "Chemical Safety & COSHH",
		Description: "Safe storage, handling, and disposal of hazardous substances. Always check the SDS before use.",
		VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/VolkswagenGTIReview.mp4",
	},
	{
		OrderIndex:  7,
		Title:       "Electrical Safety Fundamentals",
		Description: "Recognizing electrical hazards and safe working practices around live equipment.",
		VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/WeAreGoingOnBullrun.mp4",
	},
	{
		OrderIndex:  8,
		Title:       "Working at Height",
		Description: "Ladder safety, harness checks, and fall prevention measures. Falls remain the leading cause of workplace fatalities.",
		VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
	},
	{
		OrderIndex:  9,
		Title:       "First Aid Essentials",
		Description: "Basic first aid response for cuts, burns, and medical emergencies. Every second counts in an emergency.",
		VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
	},
	{
		OrderIndex:  10,
		Title:       "Noise & Vibration Control",
		Description: "Protecting yourself from occupational hearing loss and hand-arm vibration syndrome.",
		VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
	},
	{
		OrderIndex:  11,
		Title:       "Lone Working Safety",
		Description: "Procedures and check-ins for employees working alone. Communication and awareness are essential.",
		VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
	},
	{
		OrderIndex:  12,
		Title:       "Incident Reporting & Near Misses",
		Description: "How and why to report every incident, no matter how minor. Near misses are accidents waiting to happen.",
		VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerMeltdowns.mp4",
	},
}

// Seed creates the admin account (if absent) and upserts the 12-entry
// instruction catalog. Safe to call on every startup: titles, descriptions,
// and video URLs of existing entries are refreshed, but order_index is
// never touched - it is the rotation key.
func Seed(db *sql.DB, adminEmail, adminPassword string) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM admin_account WHERE email = $1)`, adminEmail).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}

	if !exists {
		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return err
		}
		_, err = db.Exec(`
			INSERT INTO admin_account (id, email, password_hash)
			VALUES ($1, $2, $3)
		`, uuid.NewString(), adminEmail, hash)
		if err != nil {
			return fmt.Errorf("failed to create admin account: %w", err)
		}
		slog.Info("admin account created", "email", adminEmail)
	}

	for _, ins := range instructionData {
		_, err := db.Exec(`
			INSERT INTO instruction (id, order_index, title, description, video_url)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (order_index) DO UPDATE
			SET title = EXCLUDED.title,
			    description = EXCLUDED.description,
			    video_url = EXCLUDED.video_url
		`, uuid.NewString(), ins.OrderIndex, ins.Title, ins.Description, ins.VideoURL)
		if err != nil {
			return fmt.Errorf("failed to seed instruction %d: %w", ins.OrderIndex, err)
		}
	}

	slog.Info("instruction catalog seeded", "count", len(instructionData))
	return nil
}
