package grading

import (
	"fmt"
	"log"

	quizModels "lms/models/quiz"
)

// ReconcileReport summarizes one batch reconciliation pass.
// Inspected = Corrected + Unchanged + Errored always holds.
type ReconcileReport struct {
	Inspected int `json:"inspected"`
	Corrected int `json:"corrected"`
	Unchanged int `json:"unchanged"`
	Errored   int `json:"errored"`
}

// ReconcileAll recomputes every grade record that retains a submission and
// overwrites stored scores that have drifted from the current question data.
// Each record is processed independently: an unparseable submission or a
// missing question set counts as errored and the batch moves on. Running the
// job twice without intervening question edits corrects nothing on the
// second pass.
func (s *Service) ReconcileAll() (ReconcileReport, error) {
	var report ReconcileReport

	var grades []quizModels.Grade
	err := s.db.Where("answers IS NOT NULL AND is_deleted = ?", false).Find(&grades).Error
	if err != nil {
		return report, err
	}

	// Question sets are shared across records of the same assessment
	questionCache := make(map[string][]quizModels.Question)

	for _, grade := range grades {
		report.Inspected++

		cacheKey := fmt.Sprintf("%s:%d", grade.AssessmentType, grade.AssessmentID)
		questions, cached := questionCache[cacheKey]
		if !cached {
			questions, err = s.QuestionsFor(grade.AssessmentType, grade.AssessmentID)
			if err != nil {
				log.Printf("reconcile: grade %d: failed to load questions: %v", grade.ID, err)
				report.Errored++
				continue
			}
			questionCache[cacheKey] = questions
		}

		if len(questions) == 0 {
			log.Printf("reconcile: grade %d: no questions for %s %d", grade.ID, grade.AssessmentType, grade.AssessmentID)
			report.Errored++
			continue
		}

		sub, err := ParseSubmission([]byte(grade.Answers))
		if err != nil {
			log.Printf("reconcile: grade %d: %v", grade.ID, err)
			report.Errored++
			continue
		}

		earned, maxScore, percentage := Score(questions, sub)
		if earned == grade.Earned && maxScore == grade.MaxScore && percentage == grade.Percentage {
			report.Unchanged++
			continue
		}

		// Each correction is its own transaction; only score fields move
		err = s.db.Model(&quizModels.Grade{}).Where("id = ?", grade.ID).
			Updates(map[string]interface{}{
				"earned":     earned,
				"max_score":  maxScore,
				"percentage": percentage,
			}).Error
		if err != nil {
			log.Printf("reconcile: grade %d: update failed: %v", grade.ID, err)
			report.Errored++
			continue
		}

		log.Printf("reconcile: grade %d corrected: %d/%d (%d%%) -> %d/%d (%d%%)",
			grade.ID, grade.Earned, grade.MaxScore, grade.Percentage, earned, maxScore, percentage)
		report.Corrected++
	}

	return report, nil
}
