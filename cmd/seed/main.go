package main

import (
	"log"
	"os"
	"path/filepath"

	"career-companion-be/internal/config"

	"github.com/fatih/color"
)

// Seeds the data directory with starter CSVs so the service answers something
// useful out of the box. Existing files are left alone.

var seeds = map[string]string{
	"careers.csv": `career,description,skills,subjects
Doctor,Diagnoses and treats patients in hospitals and clinics,Biology;Empathy;Attention to detail,Biology;Chemistry;Physics
Software Engineer,Designs and builds software systems,Programming;Problem solving;Teamwork,Mathematics;Computer Science
Chartered Accountant,Audits accounts and advises on finance and tax,Numeracy;Integrity;Analysis,Accountancy;Economics;Mathematics
Data Scientist,Turns raw data into decisions with statistics and ML,Statistics;Python;Communication,Mathematics;Computer Science;Statistics
Pilot,Flies commercial or cargo aircraft,Focus;Spatial awareness;Calm under pressure,Physics;Mathematics
`,
	"courses.csv": `course,description,skills,subjects
MBBS,Bachelor of Medicine and Bachelor of Surgery; gateway to clinical practice,Clinical reasoning;Anatomy,Biology;Chemistry
B.Tech Computer Science,Four-year engineering degree in computing,Programming;Algorithms,Mathematics;Physics
B.Com,Bachelor of Commerce covering accounting and finance,Accounting;Business math,Accountancy;Economics
BSc Statistics,Undergraduate statistics with programming electives,Statistics;R;Python,Mathematics
`,
	"pathways.csv": `career,steps
Doctor,Class 12 with PCB then NEET then MBBS then internship then specialization via NEET-PG
Software Engineer,Class 12 with PCM then JEE or state CET then B.Tech CS then internships then junior developer roles
Chartered Accountant,Class 12 Commerce then CA Foundation then Intermediate then Articleship then CA Final
Data Scientist,Class 12 with PCM then BSc Statistics or B.Tech then projects and Kaggle then analyst then data scientist
`,
}

func main() {
	cfg := config.Load()

	paths := map[string]string{
		"careers.csv":  cfg.Data.CareersPath,
		"courses.csv":  cfg.Data.CoursesPath,
		"pathways.csv": cfg.Data.PathwaysPath,
	}

	for name, path := range paths {
		if _, err := os.Stat(path); err == nil {
			color.Yellow("skip %s (already exists)", path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			log.Fatalf("mkdir for %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(seeds[name]), 0644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		color.Green("seeded %s", path)
	}
}
