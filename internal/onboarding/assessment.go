package onboarding

import (
	"strings"
	"time"

	"github.com/givenmalebe/phonics-sub000/internal/validate"
)

// SkillFlag is a yes/no/not-assessed mark for one phonics skill.
type SkillFlag string

const (
	FlagYes SkillFlag = "yes"
	FlagNo  SkillFlag = "no"
	FlagNA  SkillFlag = "n/a"
)

// Default values applied to optional assessment fields left blank.
const (
	defaultSessionRating = 10
	defaultStudentRating = 8
	noneSentinel         = "None"
	naSentinel           = "N/A"
)

// Assessment is the session-level record captured at step 3.
type Assessment struct {
	LessonTitle string `json:"lesson_title"`
	LevelTag    string `json:"level_tag"`

	// Rating is the 1-10 lesson rating.
	Rating int `json:"rating" validate:"min=1,max=10"`

	// Skill flags observed during the session.
	Blending            SkillFlag `json:"blending" validate:"oneof=yes no n/a"`
	Segmenting          SkillFlag `json:"segmenting" validate:"oneof=yes no n/a"`
	PhonemeManipulation SkillFlag `json:"phoneme_manipulation" validate:"oneof=yes no n/a"`
	SoundPattern        SkillFlag `json:"sound_pattern" validate:"oneof=yes no n/a"`
	Spelling            SkillFlag `json:"spelling" validate:"oneof=yes no n/a"`
	HighFrequencyWords  SkillFlag `json:"high_frequency_words" validate:"oneof=yes no n/a"`
	SentenceCreation    SkillFlag `json:"sentence_creation" validate:"oneof=yes no n/a"`
	PairedReading       SkillFlag `json:"paired_reading" validate:"oneof=yes no n/a"`

	BookTitle         string `json:"book_title"`
	PageNumber        string `json:"page_number"`
	ChallengingSounds string `json:"challenging_sounds"`
	Comments          string `json:"comments"`

	// Derived at submit time from the originating slot and the clock.
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	FinishTime string `json:"finish_time"`

	// Notes holds one per-student record, captured only for group
	// sessions with more than one participant.
	Notes []StudentNote `json:"notes,omitempty"`
}

// StudentNote is the per-student capture for multi-participant group
// sessions.
type StudentNote struct {
	StudentName string `json:"student_name"`
	Challenges  string `json:"challenges"`
	Rating      int    `json:"rating" validate:"min=1,max=10"`
	Notes       string `json:"notes"`
}

// applyDefaults fills optional fields the tutor left blank.
func (a *Assessment) applyDefaults() {
	flags := []*SkillFlag{
		&a.Blending, &a.Segmenting, &a.PhonemeManipulation, &a.SoundPattern,
		&a.Spelling, &a.HighFrequencyWords, &a.SentenceCreation, &a.PairedReading,
	}
	for _, f := range flags {
		if *f == "" {
			*f = FlagNA
		}
	}
	if a.Rating == 0 {
		a.Rating = defaultSessionRating
	}
	if a.BookTitle == "" {
		a.BookTitle = naSentinel
	}
	if a.PageNumber == "" {
		a.PageNumber = naSentinel
	}
	if a.ChallengingSounds == "" {
		a.ChallengingSounds = noneSentinel
	}
	if a.Comments == "" {
		a.Comments = noneSentinel
	}
	for i := range a.Notes {
		n := &a.Notes[i]
		if n.Rating == 0 {
			n.Rating = defaultStudentRating
		}
		if n.Challenges == "" {
			n.Challenges = noneSentinel
		}
		if n.Notes == "" {
			n.Notes = noneSentinel
		}
	}
}

// deriveTiming fills date, start and finish from the slot's time range.
func (a *Assessment) deriveTiming(timeRange string, now time.Time) {
	a.Date = now.Format("2006-01-02")
	start, end, ok := strings.Cut(timeRange, "-")
	if ok {
		a.StartTime = strings.TrimSpace(start)
		a.FinishTime = strings.TrimSpace(end)
	} else {
		a.StartTime = strings.TrimSpace(timeRange)
	}
}

// validateAssessment checks ranges after defaulting.
func (a *Assessment) validateAssessment() error {
	if err := validate.Struct(a); err != nil {
		return err
	}
	for i := range a.Notes {
		if err := validate.Struct(&a.Notes[i]); err != nil {
			return err
		}
	}
	return nil
}
